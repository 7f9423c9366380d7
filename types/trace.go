package types

import (
	"encoding/json"
	"fmt"
)

// Trace of an episode as tuples (state, action, nextState, reward)
type Trace struct {
	states     []State
	actions    []Action
	nextStates []State
	rewards    []float64
}

func NewTrace() *Trace {
	return &Trace{
		states:     make([]State, 0),
		actions:    make([]Action, 0),
		nextStates: make([]State, 0),
		rewards:    make([]float64, 0),
	}
}

func (t *Trace) Append(step int, state State, action Action, nextState State, reward float64) {
	t.states = append(t.states, state)
	t.actions = append(t.actions, action)
	t.nextStates = append(t.nextStates, nextState)
	t.rewards = append(t.rewards, reward)
}

func (t *Trace) Len() int {
	return len(t.states)
}

func (t *Trace) Get(i int) (State, Action, State, bool) {
	if i >= len(t.states) {
		return nil, nil, nil, false
	}
	return t.states[i], t.actions[i], t.nextStates[i], true
}

// Reward of the i-th step
func (t *Trace) Reward(i int) float64 {
	if i >= len(t.rewards) {
		return 0
	}
	return t.rewards[i]
}

// Return is the total reward accumulated over the episode
func (t *Trace) Return() float64 {
	total := float64(0)
	for _, r := range t.rewards {
		total += r
	}
	return total
}

func (t *Trace) Last() (State, Action, State, bool) {
	if len(t.states) < 1 {
		return nil, nil, nil, false
	}
	lastIndex := len(t.states) - 1
	return t.states[lastIndex], t.actions[lastIndex], t.nextStates[lastIndex], true
}

func (t *Trace) Slice(from, to int) *Trace {
	slicedTrace := NewTrace()
	for i := from; i < to; i++ {
		slicedTrace.Append(i-from, t.states[i], t.actions[i], t.nextStates[i], t.rewards[i])
	}
	return slicedTrace
}

func (t *Trace) GetPrefix(i int) (*Trace, bool) {
	if i > len(t.states) {
		return nil, false
	}
	return &Trace{
		states:     t.states[0:i],
		actions:    t.actions[0:i],
		nextStates: t.nextStates[0:i],
		rewards:    t.rewards[0:i],
	}, true
}

// TraceElem is the serialized form of a state or action
type TraceElem struct {
	Key  string `json:"key"`
	Repr string `json:"repr"`
}

type traceJSON struct {
	States     []TraceElem `json:"states"`
	Actions    []TraceElem `json:"actions"`
	NextStates []TraceElem `json:"next_states"`
	Rewards    []float64   `json:"rewards"`
}

func elemOf(v interface {
	Hash() string
}) TraceElem {
	repr := v.Hash()
	if s, ok := v.(fmt.Stringer); ok {
		repr = s.String()
	}
	return TraceElem{Key: v.Hash(), Repr: repr}
}

func (t *Trace) MarshalJSON() ([]byte, error) {
	out := traceJSON{
		States:     make([]TraceElem, len(t.states)),
		Actions:    make([]TraceElem, len(t.actions)),
		NextStates: make([]TraceElem, len(t.nextStates)),
		Rewards:    t.rewards,
	}
	for i := range t.states {
		out.States[i] = elemOf(t.states[i])
		out.Actions[i] = elemOf(t.actions[i])
		out.NextStates[i] = elemOf(t.nextStates[i])
	}
	return json.Marshal(out)
}
