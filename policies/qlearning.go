package policies

import (
	"time"

	"github.com/marl-lab/gridwalk/types"
	"golang.org/x/exp/rand"
)

// QLearningPolicy is epsilon-greedy tabular q-learning over the
// environment rewards
type QLearningPolicy struct {
	qTable  *QTable
	alpha   float64
	gamma   float64
	epsilon float64
	rand    *rand.Rand
}

var _ types.Policy = &QLearningPolicy{}
var _ types.Recorder = &QLearningPolicy{}

func NewQLearningPolicy(alpha, gamma, epsilon float64) *QLearningPolicy {
	return &QLearningPolicy{
		qTable:  NewQTable(),
		alpha:   alpha,
		gamma:   gamma,
		epsilon: epsilon,
		rand:    rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
	}
}

func (q *QLearningPolicy) Reset() {
	q.qTable = NewQTable()
}

func (q *QLearningPolicy) Record(path string) error {
	return q.qTable.Record(path)
}

// QTable exposes the learnt values for checkpointing and exploration
func (q *QLearningPolicy) QTable() *QTable {
	return q.qTable
}

func (q *QLearningPolicy) NextAction(step int, state types.State, actions []types.Action) (types.Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	if q.rand.Float64() < q.epsilon {
		i := q.rand.Intn(len(actions))
		return actions[i], true
	}

	actionsMap := make(map[string]types.Action)
	availableActions := make([]string, len(actions))
	for i, a := range actions {
		aHash := a.Hash()
		actionsMap[aHash] = a
		availableActions[i] = aHash
	}
	maxAction, _ := q.qTable.MaxAmong(state.Hash(), availableActions, 0)
	if maxAction == "" {
		return nil, false
	}
	return actionsMap[maxAction], true
}

func (q *QLearningPolicy) Update(step int, state types.State, action types.Action, nextState types.State, reward float64) {
	stateHash := state.Hash()
	actionHash := action.Hash()
	nextStateHash := nextState.Hash()

	nextStateVal := float64(0)
	// terminal states keep a zero value
	if len(nextState.Actions()) > 0 {
		_, nextStateVal = q.qTable.Max(nextStateHash, 0)
	}
	curVal := q.qTable.Get(stateHash, actionHash, 0)

	newVal := (1-q.alpha)*curVal + q.alpha*(reward+q.gamma*nextStateVal)
	q.qTable.Set(stateHash, actionHash, newVal)
}

func (q *QLearningPolicy) UpdateIteration(_ int, _ *types.Trace) {
}
