package environments

import (
	"fmt"
	"sort"
	"strings"

	"github.com/marl-lab/gridwalk/types"
	"github.com/marl-lab/gridwalk/util"
)

// Cell on the board, I is the row and J the column
type Cell struct {
	I int
	J int
}

func (c Cell) Eq(other Cell) bool {
	return c.I == other.I && c.J == other.J
}

// Door teleports a walker that steps on From to To
type Door struct {
	From Cell
	To   Cell
}

// World is a grid board walked by one or more walkers.
// Walls block movement, goal cells pay a reward and end the episode.
// The joint state is the ordered tuple of walker positions and the
// joint action moves every walker at once.
type World struct {
	Height int
	Width  int

	walls map[Cell]bool
	goals map[Cell]float64
	doors map[Cell]Cell

	names  []string
	starts []Cell

	cur *WorldState
}

var _ types.Environment = &World{}

func NewWorld(height, width int) *World {
	return &World{
		Height: height,
		Width:  width,
		walls:  make(map[Cell]bool),
		goals:  make(map[Cell]float64),
		doors:  make(map[Cell]Cell),
		names:  make([]string, 0),
		starts: make([]Cell, 0),
	}
}

func (w *World) inBounds(c Cell) bool {
	return c.I >= 0 && c.I < w.Height && c.J >= 0 && c.J < w.Width
}

func (w *World) AddWall(c Cell) *World {
	w.walls[c] = true
	return w
}

// SetGoal marks the cell as a terminal goal paying the given reward
func (w *World) SetGoal(c Cell, reward float64) *World {
	w.goals[c] = reward
	return w
}

func (w *World) AddDoor(d Door) *World {
	w.doors[d.From] = d.To
	return w
}

// AddWalker places a named walker at its starting cell
// Walkers act in the order they were added
func (w *World) AddWalker(name string, start Cell) error {
	if !w.inBounds(start) {
		return fmt.Errorf("walker %s starts out of bounds at (%d,%d)", name, start.I, start.J)
	}
	if w.walls[start] {
		return fmt.Errorf("walker %s starts inside a wall at (%d,%d)", name, start.I, start.J)
	}
	for i, n := range w.names {
		if n == name {
			return fmt.Errorf("duplicate walker name %s", name)
		}
		if w.starts[i].Eq(start) {
			return fmt.Errorf("walkers %s and %s start on the same cell", n, name)
		}
	}
	w.names = append(w.names, name)
	w.starts = append(w.starts, start)
	return nil
}

func (w *World) Walkers() []string {
	names := make([]string, len(w.names))
	copy(names, w.names)
	return names
}

// GoalAt returns the reward of the goal on the cell, if any
func (w *World) GoalAt(c Cell) (float64, bool) {
	r, ok := w.goals[c]
	return r, ok
}

// Goals returns the goal cells sorted by row then column
func (w *World) Goals() []Cell {
	cells := make([]Cell, 0, len(w.goals))
	for c := range w.goals {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(a, b int) bool {
		if cells[a].I != cells[b].I {
			return cells[a].I < cells[b].I
		}
		return cells[a].J < cells[b].J
	})
	return cells
}

func (w *World) Reset() types.State {
	positions := make([]Cell, len(w.starts))
	copy(positions, w.starts)
	w.cur = &WorldState{
		Positions: positions,
		Names:     w.names,
		world:     w,
	}
	return w.cur
}

// terminal when any walker stands on a goal cell
func (w *World) terminal(s *WorldState) bool {
	for _, p := range s.Positions {
		if _, ok := w.goals[p]; ok {
			return true
		}
	}
	return false
}

func (w *World) moveTarget(from Cell, direction string) Cell {
	target := from
	switch direction {
	case Up:
		target.I = from.I - 1
	case Down:
		target.I = from.I + 1
	case Left:
		target.J = from.J - 1
	case Right:
		target.J = from.J + 1
	case Stay:
	}
	if !w.inBounds(target) || w.walls[target] {
		return from
	}
	return target
}

// Step applies one movement per walker, in walker order.
// A walker moving into a cell occupied by another walker stays in place.
// Stepping on a door teleports to the door target if it is free.
func (w *World) Step(a types.Action) types.State {
	jm := a.(*JointMove)
	positions := make([]Cell, len(w.cur.Positions))
	copy(positions, w.cur.Positions)

	occupied := func(c Cell, self int) bool {
		for i, p := range positions {
			if i != self && p.Eq(c) {
				return true
			}
		}
		return false
	}

	for i := range positions {
		direction := Stay
		if i < len(jm.Moves) {
			direction = jm.Moves[i].Direction
		}
		target := w.moveTarget(positions[i], direction)
		if occupied(target, i) {
			continue
		}
		if to, ok := w.doors[target]; ok && w.inBounds(to) && !w.walls[to] && !occupied(to, i) {
			target = to
		}
		positions[i] = target
	}

	w.cur = &WorldState{
		Positions: positions,
		Names:     w.names,
		world:     w,
	}
	return w.cur
}

// GoalReward pays the goal value for every walker that stands
// on a goal cell in the next state
func (w *World) GoalReward() types.RewardFunc {
	return func(_ types.State, _ types.Action, ns types.State) float64 {
		next, ok := ns.(*WorldState)
		if !ok {
			return 0
		}
		total := float64(0)
		for _, p := range next.Positions {
			if r, ok := w.goals[p]; ok {
				total += r
			}
		}
		return total
	}
}

// Render draws the board with walls, goals and walker letters
func (w *World) Render(s *WorldState) string {
	var b strings.Builder
	for i := 0; i < w.Height; i++ {
		for j := 0; j < w.Width; j++ {
			c := Cell{I: i, J: j}
			ch := "."
			if w.walls[c] {
				ch = "#"
			} else if _, ok := w.goals[c]; ok {
				ch = "*"
			}
			for k, p := range s.Positions {
				if p.Eq(c) {
					ch = s.Names[k][:1]
				}
			}
			b.WriteString(ch)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Renderer adapts Render to plain states for the interactive surfaces
func (w *World) Renderer() func(types.State) string {
	return func(s types.State) string {
		ws, ok := s.(*WorldState)
		if !ok {
			return s.Hash()
		}
		return w.Render(ws)
	}
}

// WorldState is the joint state of all walkers
type WorldState struct {
	Positions []Cell
	Names     []string

	world *World
}

var _ types.State = &WorldState{}

func (s *WorldState) Hash() string {
	parts := make([]string, len(s.Positions))
	for i, p := range s.Positions {
		parts[i] = fmt.Sprintf("%s(%d,%d)", s.Names[i], p.I, p.J)
	}
	return strings.Join(parts, " ")
}

func (s *WorldState) String() string {
	return s.Hash()
}

// Terminal reports whether the episode ended on this state
func (s *WorldState) Terminal() bool {
	return s.world.terminal(s)
}

// Actions enumerates the joint moves: the cartesian product of
// the legal moves of every walker. A terminal state has none.
func (s *WorldState) Actions() []types.Action {
	if s.world.terminal(s) {
		return nil
	}
	perWalker := make([][]Move, len(s.Positions))
	for i, p := range s.Positions {
		moves := []Move{{Walker: s.Names[i], Direction: Stay}}
		for _, direction := range []string{Up, Down, Left, Right} {
			target := s.world.moveTarget(p, direction)
			if target.Eq(p) {
				continue
			}
			blocked := false
			for k, other := range s.Positions {
				if k != i && other.Eq(target) {
					blocked = true
					break
				}
			}
			if !blocked {
				moves = append(moves, Move{Walker: s.Names[i], Direction: direction})
			}
		}
		perWalker[i] = moves
	}

	joint := util.Cartesian(perWalker)
	actions := make([]types.Action, len(joint))
	for i, moves := range joint {
		actions[i] = &JointMove{Moves: moves}
	}
	return actions
}

// Position of the named walker
func (s *WorldState) Position(name string) (Cell, bool) {
	for i, n := range s.Names {
		if n == name {
			return s.Positions[i], true
		}
	}
	return Cell{}, false
}

// Movement directions
const (
	Up    = "Up"
	Down  = "Down"
	Left  = "Left"
	Right = "Right"
	Stay  = "Stay"
)

// Move of a single walker
type Move struct {
	Walker    string
	Direction string
}

// JointMove moves every walker at once, in walker order
type JointMove struct {
	Moves []Move
}

var _ types.Action = &JointMove{}

func (m *JointMove) Hash() string {
	parts := make([]string, len(m.Moves))
	for i, mv := range m.Moves {
		parts[i] = mv.Walker + ":" + mv.Direction
	}
	return strings.Join(parts, "|")
}

func (m *JointMove) String() string {
	return m.Hash()
}

// WalkerAt is a monitor condition satisfied when the named walker
// reaches the cell
func WalkerAt(name string, c Cell) types.MonitorCondition {
	return func(_ types.State, _ types.Action, ns types.State) bool {
		next, ok := ns.(*WorldState)
		if !ok {
			return false
		}
		p, ok := next.Position(name)
		return ok && p.Eq(c)
	}
}

// AtAnyGoal is a monitor condition satisfied when any walker
// stands on a goal cell
func AtAnyGoal(w *World) types.MonitorCondition {
	return func(_ types.State, _ types.Action, ns types.State) bool {
		next, ok := ns.(*WorldState)
		if !ok {
			return false
		}
		for _, p := range next.Positions {
			if _, ok := w.goals[p]; ok {
				return true
			}
		}
		return false
	}
}
