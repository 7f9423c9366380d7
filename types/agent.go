package types

type AgentConfig struct {
	Episodes    int
	Horizon     int
	Policy      Policy
	Environment Environment
	// Reward paid to the policy on every transition
	// Defaults to NoReward
	Reward RewardFunc
}

// RL Agent configured with the corresponding
// policy, environment and reward function
type Agent struct {
	config      *AgentConfig
	policy      Policy
	environment Environment
	reward      RewardFunc
}

// Instantiates a new Agent
func NewAgent(config *AgentConfig) *Agent {
	reward := config.Reward
	if reward == nil {
		reward = NoReward()
	}
	return &Agent{
		config:      config,
		policy:      config.Policy,
		environment: config.Environment,
		reward:      reward,
	}
}

// RunEpisode runs a single episode of at most Horizon steps
// and returns the resulting trace. The episode ends early when
// a terminal state is reached or the policy has no action to offer.
func (a *Agent) RunEpisode(episode int) *Trace {
	state := a.environment.Reset()
	trace := NewTrace()
	actions := state.Actions()

	for i := 0; i < a.config.Horizon; i++ {
		if len(actions) == 0 {
			break
		}
		nextAction, ok := a.policy.NextAction(i, state, actions)
		if !ok {
			break
		}
		nextState := a.environment.Step(nextAction)
		reward := a.reward(state, nextAction, nextState)
		a.policy.Update(i, state, nextAction, nextState, reward)

		trace.Append(i, state, nextAction, nextState, reward)
		state = nextState
		actions = nextState.Actions()
	}
	a.policy.UpdateIteration(episode, trace)

	return trace
}
