package environments

import (
	"fmt"
)

// FromArt builds a world out of rows of ascii art.
// '.' and ' ' are floor, '#' is a wall, '*' is a goal cell paying
// goalReward, and any uppercase letter places a walker of that name.
// All rows must have the same width and at least one walker must be
// present. Walkers are added in reading order.
func FromArt(rows []string, goalReward float64, doors ...Door) (*World, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty art")
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("art row %d has width %d, expected %d", i, len(row), width)
		}
	}

	w := NewWorld(len(rows), width)
	for i, row := range rows {
		for j := 0; j < width; j++ {
			c := Cell{I: i, J: j}
			switch ch := row[j]; {
			case ch == '.' || ch == ' ':
			case ch == '#':
				w.AddWall(c)
			case ch == '*':
				w.SetGoal(c, goalReward)
			case ch >= 'A' && ch <= 'Z':
				if err := w.AddWalker(string(ch), c); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("unknown art character %q at (%d,%d)", ch, i, j)
			}
		}
	}
	if len(w.names) == 0 {
		return nil, fmt.Errorf("art places no walkers")
	}
	for _, d := range doors {
		if !w.inBounds(d.From) || !w.inBounds(d.To) {
			return nil, fmt.Errorf("door (%d,%d)->(%d,%d) out of bounds", d.From.I, d.From.J, d.To.I, d.To.J)
		}
		w.AddDoor(d)
	}
	return w, nil
}
