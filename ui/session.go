package ui

import (
	"fmt"
	"sync"

	"github.com/marl-lab/gridwalk/policies"
	"github.com/marl-lab/gridwalk/types"
)

// Mode of an interactive session
type Mode int

const (
	// Autonomous: the agent moves whenever the human does nothing
	Autonomous Mode = iota
	// Demonstration: the agent is frozen, only the human moves
	Demonstration
	// Participation: the human entered the game; reached automatically
	// on the first human move out of Autonomous
	Participation
)

func (m Mode) String() string {
	switch m {
	case Autonomous:
		return "Autonomous"
	case Demonstration:
		return "Demonstration"
	case Participation:
		return "Participation"
	}
	return "Unknown"
}

// Decider is the agent side of an interactive session
type Decider interface {
	Decide(types.State) (types.Action, bool)
}

// PolicyDecider drives the session with a policy
type PolicyDecider struct {
	policy types.Policy
	step   int
}

var _ Decider = &PolicyDecider{}

func NewPolicyDecider(policy types.Policy) *PolicyDecider {
	return &PolicyDecider{policy: policy}
}

func (p *PolicyDecider) Decide(state types.State) (types.Action, bool) {
	actions := state.Actions()
	if len(actions) == 0 {
		return nil, false
	}
	a, ok := p.policy.NextAction(p.step, state, actions)
	if ok {
		p.step += 1
	}
	return a, ok
}

// GreedyDecider follows the best action of a stored q table
type GreedyDecider struct {
	qTable *policies.QTable
}

var _ Decider = &GreedyDecider{}

func NewGreedyDecider(q *policies.QTable) *GreedyDecider {
	return &GreedyDecider{qTable: q}
}

func (g *GreedyDecider) Decide(state types.State) (types.Action, bool) {
	actions := state.Actions()
	if len(actions) == 0 {
		return nil, false
	}
	actionsMap := make(map[string]types.Action)
	available := make([]string, len(actions))
	for i, a := range actions {
		actionsMap[a.Hash()] = a
		available[i] = a.Hash()
	}
	best, _ := g.qTable.MaxAmong(state.Hash(), available, 0)
	if best == "" {
		return nil, false
	}
	return actionsMap[best], true
}

// Session is one interactive game: an environment, a reward function
// keeping score, an optional agent and the current mode.
// Safe for concurrent use, the watch server and the terminal loop can
// share one session.
type Session struct {
	mu sync.Mutex

	env    types.Environment
	reward types.RewardFunc
	render func(types.State) string
	agent  Decider

	mode  Mode
	state types.State
	score float64
	steps int
}

// NewSession starts a session at the environment's initial state.
// Without an agent the session is pinned to Demonstration.
func NewSession(env types.Environment, reward types.RewardFunc, render func(types.State) string, agent Decider) *Session {
	if reward == nil {
		reward = types.NoReward()
	}
	mode := Autonomous
	if agent == nil {
		mode = Demonstration
	}
	return &Session{
		env:    env,
		reward: reward,
		render: render,
		agent:  agent,
		mode:   mode,
		state:  env.Reset(),
	}
}

func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

func (s *Session) Score() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.score
}

func (s *Session) Steps() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.steps
}

func (s *Session) State() types.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Terminal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Actions()) == 0
}

// Render draws the current board
func (s *Session) Render() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.render == nil {
		return s.state.Hash() + "\n"
	}
	return s.render(s.state)
}

// ToggleMode switches between Autonomous and Demonstration.
// From Participation it returns to Autonomous.
func (s *Session) ToggleMode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.agent == nil {
		return s.mode
	}
	if s.mode == Autonomous {
		s.mode = Demonstration
	} else {
		s.mode = Autonomous
	}
	return s.mode
}

func (s *Session) apply(a types.Action) {
	ns := s.env.Step(a)
	s.score += s.reward(s.state, a, ns)
	s.state = ns
	s.steps += 1
}

// HumanAct applies the action with the given hash.
// A human move out of Autonomous enters Participation.
func (s *Session) HumanAct(actionHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	actions := s.state.Actions()
	if len(actions) == 0 {
		return fmt.Errorf("the game is over")
	}
	for _, a := range actions {
		if a.Hash() == actionHash {
			if s.mode == Autonomous {
				s.mode = Participation
			}
			s.apply(a)
			return nil
		}
	}
	return fmt.Errorf("no action %q in the current state", actionHash)
}

// AgentAct lets the agent move. Only moves in Autonomous mode;
// reports whether a step was taken.
func (s *Session) AgentAct() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.agent == nil || s.mode != Autonomous {
		return false, nil
	}
	if len(s.state.Actions()) == 0 {
		return false, fmt.Errorf("the game is over")
	}
	a, ok := s.agent.Decide(s.state)
	if !ok {
		return false, fmt.Errorf("the agent has no action to offer")
	}
	s.apply(a)
	return true, nil
}

// ActionHashes lists the actions available in the current state
func (s *Session) ActionHashes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	actions := s.state.Actions()
	hashes := make([]string, len(actions))
	for i, a := range actions {
		hashes[i] = a.Hash()
	}
	return hashes
}
