package ui

import (
	"testing"

	"github.com/marl-lab/gridwalk/environments"
	"github.com/marl-lab/gridwalk/policies"
	"github.com/marl-lab/gridwalk/types"
)

func chainSession(t *testing.T, art string, agent Decider) *Session {
	t.Helper()
	env, err := environments.NewChainWalk(art)
	if err != nil {
		t.Fatalf("failed to build the chain: %s", err)
	}
	return NewSession(env, env.GoalReward(), env.Renderer(), agent)
}

func rightGreedy(state string) *GreedyDecider {
	q := policies.NewQTable()
	q.Set(state, "P:Right", 1)
	return NewGreedyDecider(q)
}

func TestSessionModes(t *testing.T) {
	session := chainSession(t, ".P..", rightGreedy("P(0,1)"))
	if session.Mode() != Autonomous {
		t.Fatalf("expected the session to start Autonomous, got %s", session.Mode())
	}

	// a human move enters Participation
	if err := session.HumanAct("P:Right"); err != nil {
		t.Fatalf("failed to act: %s", err)
	}
	if session.Mode() != Participation {
		t.Errorf("expected Participation after a human move, got %s", session.Mode())
	}

	if session.ToggleMode() != Autonomous {
		t.Errorf("expected the toggle to return to Autonomous")
	}
	if session.ToggleMode() != Demonstration {
		t.Errorf("expected the toggle to reach Demonstration")
	}

	// the agent is frozen in Demonstration
	moved, err := session.AgentAct()
	if err != nil || moved {
		t.Errorf("expected the agent to stay frozen, moved=%t err=%v", moved, err)
	}
}

func TestSessionAgentPlays(t *testing.T) {
	session := chainSession(t, ".P.", rightGreedy("P(0,1)"))
	moved, err := session.AgentAct()
	if err != nil || !moved {
		t.Fatalf("expected the agent to move, moved=%t err=%v", moved, err)
	}
	if !session.Terminal() {
		t.Errorf("expected the game to be over")
	}
	if session.Score() != environments.RightEndReward {
		t.Errorf("expected the score %f, got %f", environments.RightEndReward, session.Score())
	}
	if session.Steps() != 1 {
		t.Errorf("expected 1 step, got %d", session.Steps())
	}
	if _, err := session.AgentAct(); err == nil {
		t.Errorf("expected acting after the end to fail")
	}
}

func TestSessionWithoutAgent(t *testing.T) {
	session := chainSession(t, ".P..", nil)
	if session.Mode() != Demonstration {
		t.Errorf("expected a session without agent to start in Demonstration")
	}
	if session.ToggleMode() != Demonstration {
		t.Errorf("expected the mode to stay pinned to Demonstration")
	}
	if moved, err := session.AgentAct(); moved || err != nil {
		t.Errorf("expected no agent move, moved=%t err=%v", moved, err)
	}
	if err := session.HumanAct("P:Right"); err != nil {
		t.Errorf("expected the human to still move: %s", err)
	}
	if session.Mode() != Demonstration {
		t.Errorf("expected the human move to keep the mode, got %s", session.Mode())
	}
}

func TestSessionRejectsUnknownAction(t *testing.T) {
	session := chainSession(t, ".P..", nil)
	if err := session.HumanAct("P:Up"); err == nil {
		t.Errorf("expected an unavailable action to be rejected")
	}
	if session.Steps() != 0 {
		t.Errorf("expected no step to be taken, got %d", session.Steps())
	}
}

func TestPolicyDecider(t *testing.T) {
	env, err := environments.NewChainWalk(".P.")
	if err != nil {
		t.Fatalf("failed to build the chain: %s", err)
	}
	decider := NewPolicyDecider(types.NewRandomPolicy())
	state := env.Reset()
	a, ok := decider.Decide(state)
	if !ok || a == nil {
		t.Fatalf("expected the policy to pick an action")
	}

	terminal := env.Step(a)
	for len(terminal.Actions()) > 0 {
		next, ok := decider.Decide(terminal)
		if !ok {
			t.Fatalf("expected an action in a non terminal state")
		}
		terminal = env.Step(next)
	}
	if _, ok := decider.Decide(terminal); ok {
		t.Errorf("expected no action in a terminal state")
	}
}
