package environments

import (
	"testing"

	"github.com/marl-lab/gridwalk/types"
)

func jm(moves ...Move) *JointMove {
	return &JointMove{Moves: moves}
}

func position(t *testing.T, s types.State, name string) Cell {
	t.Helper()
	ws, ok := s.(*WorldState)
	if !ok {
		t.Fatalf("expected a world state, got %T", s)
	}
	p, ok := ws.Position(name)
	if !ok {
		t.Fatalf("no walker %s in state %s", name, s.Hash())
	}
	return p
}

func TestWorldMovementIsClamped(t *testing.T) {
	w := NewWorld(2, 2)
	w.AddWall(Cell{I: 0, J: 0})
	if err := w.AddWalker("P", Cell{I: 1, J: 0}); err != nil {
		t.Fatalf("failed to add the walker: %s", err)
	}
	w.Reset()

	ns := w.Step(jm(Move{Walker: "P", Direction: Up}))
	if !position(t, ns, "P").Eq(Cell{I: 1, J: 0}) {
		t.Errorf("expected the wall to block the move, got %s", ns.Hash())
	}
	ns = w.Step(jm(Move{Walker: "P", Direction: Left}))
	if !position(t, ns, "P").Eq(Cell{I: 1, J: 0}) {
		t.Errorf("expected the edge to block the move, got %s", ns.Hash())
	}
	ns = w.Step(jm(Move{Walker: "P", Direction: Right}))
	if !position(t, ns, "P").Eq(Cell{I: 1, J: 1}) {
		t.Errorf("expected the walker to move right, got %s", ns.Hash())
	}
}

func TestWorldCollisions(t *testing.T) {
	w := NewWorld(1, 3)
	w.AddWalker("P", Cell{I: 0, J: 0})
	w.AddWalker("Q", Cell{I: 0, J: 1})
	state := w.Reset()

	// P can only stay, Q can stay or step right
	if actions := state.Actions(); len(actions) != 2 {
		t.Errorf("expected 2 joint actions, got %d", len(actions))
	}

	// P is resolved first and Q has not moved away yet
	ns := w.Step(jm(
		Move{Walker: "P", Direction: Right},
		Move{Walker: "Q", Direction: Right},
	))
	if !position(t, ns, "P").Eq(Cell{I: 0, J: 0}) {
		t.Errorf("expected P to be blocked, got %s", ns.Hash())
	}
	if !position(t, ns, "Q").Eq(Cell{I: 0, J: 2}) {
		t.Errorf("expected Q to move right, got %s", ns.Hash())
	}
}

func TestWorldDoors(t *testing.T) {
	w := NewWorld(1, 4)
	w.AddDoor(Door{From: Cell{I: 0, J: 2}, To: Cell{I: 0, J: 0}})
	w.AddWalker("P", Cell{I: 0, J: 1})
	w.Reset()

	ns := w.Step(jm(Move{Walker: "P", Direction: Right}))
	if !position(t, ns, "P").Eq(Cell{I: 0, J: 0}) {
		t.Errorf("expected the door to teleport P, got %s", ns.Hash())
	}
}

func TestWorldDoorBlockedByWalker(t *testing.T) {
	w := NewWorld(1, 4)
	w.AddDoor(Door{From: Cell{I: 0, J: 2}, To: Cell{I: 0, J: 0}})
	w.AddWalker("P", Cell{I: 0, J: 1})
	w.AddWalker("Q", Cell{I: 0, J: 0})
	w.Reset()

	ns := w.Step(jm(
		Move{Walker: "P", Direction: Right},
		Move{Walker: "Q", Direction: Stay},
	))
	if !position(t, ns, "P").Eq(Cell{I: 0, J: 2}) {
		t.Errorf("expected P to stay on the occupied door, got %s", ns.Hash())
	}
}

func TestWorldGoalsAreTerminal(t *testing.T) {
	w := NewWorld(1, 3)
	w.SetGoal(Cell{I: 0, J: 2}, 7)
	w.AddWalker("P", Cell{I: 0, J: 0})
	reward := w.GoalReward()

	state := w.Reset()
	mid := w.Step(jm(Move{Walker: "P", Direction: Right}))
	if reward(state, nil, mid) != 0 {
		t.Errorf("expected no reward away from the goal")
	}
	ns := w.Step(jm(Move{Walker: "P", Direction: Right}))
	if got := reward(mid, nil, ns); got != 7 {
		t.Errorf("expected the goal to pay 7, got %f", got)
	}
	if len(ns.Actions()) != 0 {
		t.Errorf("expected the goal state to be terminal")
	}
	if !ns.(*WorldState).Terminal() {
		t.Errorf("expected the goal state to report terminal")
	}
}

func TestWorldJointActions(t *testing.T) {
	w := NewWorld(1, 5)
	w.AddWalker("P", Cell{I: 0, J: 1})
	w.AddWalker("Q", Cell{I: 0, J: 3})
	state := w.Reset()

	actions := state.Actions()
	if len(actions) != 9 {
		t.Fatalf("expected 3x3 joint actions, got %d", len(actions))
	}
	found := false
	for _, a := range actions {
		if a.Hash() == "P:Left|Q:Right" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the joint action P:Left|Q:Right to be available")
	}
}

func TestWorldRender(t *testing.T) {
	w, err := FromArt([]string{"#P*"}, 7)
	if err != nil {
		t.Fatalf("failed to parse art: %s", err)
	}
	state := w.Reset()
	if got := w.Renderer()(state); got != "#P*\n" {
		t.Errorf("unexpected rendering %q", got)
	}
}

func TestWorldMonitorConditions(t *testing.T) {
	w := NewWorld(1, 3)
	w.SetGoal(Cell{I: 0, J: 2}, 7)
	w.AddWalker("P", Cell{I: 0, J: 1})
	state := w.Reset()
	ns := w.Step(jm(Move{Walker: "P", Direction: Right}))

	if !WalkerAt("P", Cell{I: 0, J: 2})(state, nil, ns) {
		t.Errorf("expected WalkerAt to recognize the position")
	}
	if WalkerAt("P", Cell{I: 0, J: 0})(state, nil, ns) {
		t.Errorf("expected WalkerAt to reject a different position")
	}
	if !AtAnyGoal(w)(state, nil, ns) {
		t.Errorf("expected AtAnyGoal to recognize the goal")
	}
}
