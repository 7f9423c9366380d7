package environments

import (
	"fmt"
	"strings"

	"github.com/marl-lab/gridwalk/types"
)

// Rewards of the classic chain walk: a small prize at the near end,
// a large one at the far end. Both ends terminate the episode.
const (
	LeftEndReward  = 1.0
	RightEndReward = 100.0
)

// DefaultChainArt is the original chain walk board: the walker starts
// two cells from the small prize and twenty from the large one.
const DefaultChainArt = "..P..................."

// NewChainWalk builds a chain walk from a single row of art.
// Both end cells become terminal goals regardless of what the art
// shows there, paying LeftEndReward and RightEndReward.
func NewChainWalk(art string) (*World, error) {
	if len(art) < 3 {
		return nil, fmt.Errorf("chain art too short: %q", art)
	}
	if strings.ContainsAny(art, "#") {
		return nil, fmt.Errorf("chain art cannot contain walls")
	}
	w, err := FromArt([]string{art}, 0)
	if err != nil {
		return nil, err
	}
	if len(w.names) != 1 {
		return nil, fmt.Errorf("chain walk needs exactly one walker, got %d", len(w.names))
	}
	if w.starts[0].J == 0 || w.starts[0].J == w.Width-1 {
		return nil, fmt.Errorf("walker cannot start on an end cell")
	}
	w.SetGoal(Cell{I: 0, J: 0}, LeftEndReward)
	w.SetGoal(Cell{I: 0, J: w.Width - 1}, RightEndReward)
	return w, nil
}

// DefaultChainWalk builds the original 22 cell chain walk
func DefaultChainWalk() *World {
	w, err := NewChainWalk(DefaultChainArt)
	if err != nil {
		panic(err)
	}
	return w
}

// ReachedRightEnd recognizes episodes where the walker claimed
// the large prize
func ReachedRightEnd(w *World) *types.Monitor {
	monitor := types.NewMonitor()
	name := w.Walkers()[0]
	monitor.Build().
		On(WalkerAt(name, Cell{I: 0, J: w.Width - 1}), "RightEnd").
		MarkSuccess()
	return monitor
}
