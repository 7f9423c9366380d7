package environments

import (
	"testing"

	"github.com/marl-lab/gridwalk/types"
)

// step finds the action with the given hash and applies it
func step(t *testing.T, w *World, state types.State, actionHash string) (types.Action, types.State) {
	t.Helper()
	for _, a := range state.Actions() {
		if a.Hash() == actionHash {
			return a, w.Step(a)
		}
	}
	t.Fatalf("no action %s in state %s", actionHash, state.Hash())
	return nil, nil
}

func TestDefaultChainWalk(t *testing.T) {
	w := DefaultChainWalk()
	if w.Height != 1 || w.Width != 22 {
		t.Errorf("expected a 1x22 board, got %dx%d", w.Height, w.Width)
	}
	if reward, ok := w.GoalAt(Cell{I: 0, J: 0}); !ok || reward != LeftEndReward {
		t.Errorf("expected the left end to pay %f", LeftEndReward)
	}
	if reward, ok := w.GoalAt(Cell{I: 0, J: 21}); !ok || reward != RightEndReward {
		t.Errorf("expected the right end to pay %f", RightEndReward)
	}
	state := w.Reset()
	if state.Hash() != "P(0,2)" {
		t.Errorf("expected the walker to start at (0,2), got %s", state.Hash())
	}
	if len(state.Actions()) != 3 {
		t.Errorf("expected the moves Stay, Left and Right, got %d", len(state.Actions()))
	}
}

func TestChainWalkEndsAreTerminal(t *testing.T) {
	w, err := NewChainWalk(".P.")
	if err != nil {
		t.Fatalf("failed to build the chain: %s", err)
	}
	reward := w.GoalReward()

	state := w.Reset()
	a, ns := step(t, w, state, "P:Right")
	if got := reward(state, a, ns); got != RightEndReward {
		t.Errorf("expected the right end to pay %f, got %f", RightEndReward, got)
	}
	if len(ns.Actions()) != 0 {
		t.Errorf("expected the right end to be terminal")
	}

	state = w.Reset()
	a, ns = step(t, w, state, "P:Left")
	if got := reward(state, a, ns); got != LeftEndReward {
		t.Errorf("expected the left end to pay %f, got %f", LeftEndReward, got)
	}
	if len(ns.Actions()) != 0 {
		t.Errorf("expected the left end to be terminal")
	}
}

func TestChainWalkErrors(t *testing.T) {
	cases := []struct {
		name string
		art  string
	}{
		{name: "too short", art: ".P"},
		{name: "walls", art: ".P.#."},
		{name: "two walkers", art: ".P.Q."},
		{name: "no walker", art: "....."},
		{name: "walker on an end", art: "P...."},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := NewChainWalk(c.art); err == nil {
				t.Errorf("expected art %q to be rejected", c.art)
			}
		})
	}
}

func TestReachedRightEnd(t *testing.T) {
	w, err := NewChainWalk(".P.")
	if err != nil {
		t.Fatalf("failed to build the chain: %s", err)
	}
	monitor := ReachedRightEnd(w)

	state := w.Reset()
	a, ns := step(t, w, state, "P:Right")
	trace := types.NewTrace()
	trace.Append(0, state, a, ns, RightEndReward)
	if _, ok := monitor.Check(trace); !ok {
		t.Errorf("expected the monitor to recognize the right end")
	}

	state = w.Reset()
	a, ns = step(t, w, state, "P:Left")
	trace = types.NewTrace()
	trace.Append(0, state, a, ns, LeftEndReward)
	if _, ok := monitor.Check(trace); ok {
		t.Errorf("expected the monitor to reject the left end")
	}
}
