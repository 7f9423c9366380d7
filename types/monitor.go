package types

var (
	InitState string = "init"
)

// Transitions of a Monitor are labelled with a MonitorCondition
// MonitorCondition is a predicate on the transition (state, action, nextState)
type MonitorCondition func(State, Action, State) bool

// Not operator on the MonitorCondition
func (m MonitorCondition) Not() MonitorCondition {
	return func(s State, a Action, ns State) bool {
		return !m(s, a, ns)
	}
}

// Or operator between MonitorCondition's
func (m MonitorCondition) Or(other MonitorCondition) MonitorCondition {
	return func(s State, a Action, ns State) bool {
		return m(s, a, ns) || other(s, a, ns)
	}
}

// And operator between MonitorCondition's
func (m MonitorCondition) And(other MonitorCondition) MonitorCondition {
	return func(s State, a Action, ns State) bool {
		return m(s, a, ns) && other(s, a, ns)
	}
}

type monitorTransition struct {
	cond MonitorCondition
	next string
}

// MonitorState is a state in the state machine (Monitor)
// Use MonitorBuilder to create monitor states (do not instantiate directly)
type MonitorState struct {
	Success bool
	Name    string
	// transitions are evaluated in the order they were added
	transitions []monitorTransition
}

// Monitor is a state machine simulated over episode traces
// Used to recognize events such as a walker reaching a goal
type Monitor struct {
	states map[string]*MonitorState
}

// Creates a new Monitor with a default initial state
func NewMonitor() *Monitor {
	m := &Monitor{
		states: make(map[string]*MonitorState),
	}
	m.states[InitState] = &MonitorState{
		Name:        InitState,
		Success:     false,
		transitions: make([]monitorTransition, 0),
	}
	return m
}

// Checks if a trace satisfies the monitor
// Simulates the monitor and returns the prefix
// that results in a transition to a success state
func (m *Monitor) Check(t *Trace) (*Trace, bool) {
	curState := m.states[InitState]
	if curState.Success {
		return NewTrace(), true
	}
	for i := 0; i < t.Len(); i++ {
		s, a, ns, _ := t.Get(i)
		for _, tr := range curState.transitions {
			if tr.cond(s, a, ns) {
				curState = m.states[tr.next]
				break
			}
		}
		if curState.Success {
			return t.GetPrefix(i + 1)
		}
	}
	return nil, false
}

// Returns a MonitorBuilder to construct the remainder of the state machine
// Initialized at the initial state
func (m *Monitor) Build() *MonitorBuilder {
	return &MonitorBuilder{
		monitor:  m,
		curState: m.states[InitState],
	}
}

// Encodes a Builder pattern to create the state machine
// The builder is indexed at a particular state of the state machine (Monitor)
type MonitorBuilder struct {
	monitor  *Monitor
	curState *MonitorState
}

// On defines a transition from the current state based on the condition to the next state
// returns a new builder instance that is indexed at the next state.
// To construct a chain of states one can call b.On().On().On()...
// If `next` is not part of the state machine it is newly created,
// otherwise the existing state is indexed
func (m *MonitorBuilder) On(cond MonitorCondition, next string) *MonitorBuilder {
	nextState, ok := m.monitor.states[next]
	if !ok {
		nextState = &MonitorState{
			Name:        next,
			Success:     false,
			transitions: make([]monitorTransition, 0),
		}
		m.monitor.states[next] = nextState
	}
	m.curState.transitions = append(m.curState.transitions, monitorTransition{cond: cond, next: next})
	return &MonitorBuilder{
		monitor:  m.monitor,
		curState: nextState,
	}
}

// Mark the corresponding state indexed at this builder instance as a success state
func (m *MonitorBuilder) MarkSuccess() *MonitorBuilder {
	m.curState.Success = true
	return m
}
