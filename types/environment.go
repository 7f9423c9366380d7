package types

// Environment is the state transition engine that agents interact with
type Environment interface {
	// Reset called at the start of each episode
	Reset() State
	// Step applies the action and returns the resulting state
	Step(Action) State
}

// State of the world that policies observe
type State interface {
	// Indexed by the Hash
	// Should be deterministic
	Hash() string
	// Actions possible from the state
	// A state with no actions is terminal
	Actions() []Action
}

// An Action that a policy can take
type Action interface {
	// Index of the action
	// Should be deterministic
	Hash() string
}

// RewardFunc pays a scalar reward for a transition
type RewardFunc func(State, Action, State) float64

// NoReward pays nothing on every transition
func NoReward() RewardFunc {
	return func(State, Action, State) float64 {
		return 0
	}
}

// Combine sums the rewards of the given functions
func Combine(funcs ...RewardFunc) RewardFunc {
	return func(s State, a Action, ns State) float64 {
		total := float64(0)
		for _, f := range funcs {
			total += f(s, a, ns)
		}
		return total
	}
}

type StateAbstractor func(State) string

// HashAbstractor abstracts a state to its own hash
func HashAbstractor() StateAbstractor {
	return func(s State) string {
		return s.Hash()
	}
}
