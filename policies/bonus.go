package policies

import (
	"time"

	"github.com/marl-lab/gridwalk/types"
	"golang.org/x/exp/rand"
)

// BonusPolicyGreedy explores with an exploration bonus: the value of
// a pair decays with 1/visits. Updates happen backwards over the
// whole trace at the end of each episode.
type BonusPolicyGreedy struct {
	qTable   *QTable
	alpha    float64
	discount float64
	visits   *QTable
	epsilon  float64
	rand     *rand.Rand

	max bool
}

var _ types.Policy = &BonusPolicyGreedy{}
var _ types.Recorder = &BonusPolicyGreedy{}

func NewBonusPolicyGreedy(alpha, discount, epsilon float64, max bool) *BonusPolicyGreedy {
	return &BonusPolicyGreedy{
		qTable:   NewQTable(),
		alpha:    alpha,
		discount: discount,
		visits:   NewQTable(),
		epsilon:  epsilon,
		rand:     rand.New(rand.NewSource(uint64(time.Now().UnixNano()))),
		max:      max,
	}
}

func (b *BonusPolicyGreedy) Record(path string) error {
	return b.qTable.Record(path)
}

func (b *BonusPolicyGreedy) QTable() *QTable {
	return b.qTable
}

func (b *BonusPolicyGreedy) Reset() {
	b.qTable = NewQTable()
	b.visits = NewQTable()
}

func (b *BonusPolicyGreedy) NextAction(step int, state types.State, actions []types.Action) (types.Action, bool) {
	if len(actions) == 0 {
		return nil, false
	}
	if b.rand.Float64() < b.epsilon {
		i := b.rand.Intn(len(actions))
		return actions[i], true
	}

	actionsMap := make(map[string]types.Action)
	availableActions := make([]string, len(actions))
	for i, a := range actions {
		aHash := a.Hash()
		actionsMap[aHash] = a
		availableActions[i] = aHash
	}
	maxAction, _ := b.qTable.MaxAmong(state.Hash(), availableActions, 1)
	if maxAction == "" {
		return nil, false
	}
	return actionsMap[maxAction], true
}

func (b *BonusPolicyGreedy) Update(_ int, _ types.State, _ types.Action, _ types.State, _ float64) {
}

func (b *BonusPolicyGreedy) updateInternal(state types.State, action types.Action, nextState types.State, last bool) {
	stateHash := state.Hash()
	actionHash := action.Hash()
	nextStateHash := nextState.Hash()
	t := b.visits.Get(stateHash, actionHash, 0) + 1
	b.visits.Set(stateHash, actionHash, t)

	nextStateVal := 0.0
	// the value beyond the end of the episode is zero
	if !last {
		_, nextStateVal = b.qTable.Max(nextStateHash, 1)
	}
	curVal := b.qTable.Get(stateHash, actionHash, 1)

	newVal := 0.0
	if b.max {
		newVal = (1-b.alpha)*curVal + b.alpha*maxFloat(1/t, b.discount*nextStateVal)
	} else {
		newVal = (1-b.alpha)*curVal + b.alpha*(1/t+b.discount*nextStateVal)
	}

	b.qTable.Set(stateHash, actionHash, newVal)
}

func (b *BonusPolicyGreedy) UpdateIteration(iteration int, trace *types.Trace) {
	lastIndex := trace.Len() - 1

	// going backwards over the episode
	for i := lastIndex; i > -1; i-- {
		state, action, nextState, ok := trace.Get(i)
		if ok {
			b.updateInternal(state, action, nextState, i == lastIndex)
		}
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
