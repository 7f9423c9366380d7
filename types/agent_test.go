package types

import "testing"

func TestAgentRunsToTerminal(t *testing.T) {
	env := newLineEnv(5, 2)
	policy := &scriptedPolicy{direction: "right"}
	agent := NewAgent(&AgentConfig{
		Episodes:    1,
		Horizon:     10,
		Policy:      policy,
		Environment: env,
		Reward:      rightEndReward(5, 10),
	})

	trace := agent.RunEpisode(0)
	if trace.Len() != 2 {
		t.Fatalf("expected the episode to end after 2 steps, got %d", trace.Len())
	}
	if trace.Return() != 10 {
		t.Errorf("expected return 10, got %f", trace.Return())
	}
	if policy.updates != 2 {
		t.Errorf("expected 2 policy updates, got %d", policy.updates)
	}
	if policy.iterations != 1 {
		t.Errorf("expected 1 iteration update, got %d", policy.iterations)
	}
	if _, _, ns, _ := trace.Last(); ns.Hash() != "4" {
		t.Errorf("expected the episode to end at 4, got %s", ns.Hash())
	}
}

func TestAgentHonorsHorizon(t *testing.T) {
	agent := NewAgent(&AgentConfig{
		Episodes:    1,
		Horizon:     5,
		Policy:      &scriptedPolicy{direction: "right"},
		Environment: newLineEnv(50, 25),
	})
	trace := agent.RunEpisode(0)
	if trace.Len() != 5 {
		t.Errorf("expected the horizon to cut the episode at 5 steps, got %d", trace.Len())
	}
}

func TestAgentDefaultsToNoReward(t *testing.T) {
	agent := NewAgent(&AgentConfig{
		Episodes:    1,
		Horizon:     10,
		Policy:      &scriptedPolicy{direction: "right"},
		Environment: newLineEnv(5, 2),
	})
	trace := agent.RunEpisode(0)
	if trace.Return() != 0 {
		t.Errorf("expected no reward, got %f", trace.Return())
	}
}

func TestAgentStopsWhenPolicyHasNoAction(t *testing.T) {
	policy := &scriptedPolicy{direction: "up"}
	agent := NewAgent(&AgentConfig{
		Episodes:    1,
		Horizon:     10,
		Policy:      policy,
		Environment: newLineEnv(5, 2),
	})
	trace := agent.RunEpisode(0)
	if trace.Len() != 0 {
		t.Errorf("expected an empty trace, got %d steps", trace.Len())
	}
	if policy.iterations != 1 {
		t.Errorf("expected the iteration update to still fire, got %d", policy.iterations)
	}
}
