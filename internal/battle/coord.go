// Package battle contains the pure Battleship game core: boards, fleet
// placement, shot resolution and the turn state machine. It has no external
// dependencies (especially no Bubble Tea) to keep game logic testable.
package battle

import "fmt"

// GridSize is the side length of each player's board.
const GridSize = 10

// Coord represents a cell on the board. Row increases downward,
// Col increases to the right; both are in [0, GridSize).
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns the coordinate in classic Battleship notation, e.g. "B4".
func (c Coord) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
	}
	return fmt.Sprintf("%c%d", 'A'+rune(c.Row), c.Col)
}

// Add returns a new Coord offset by (dRow, dCol).
func (c Coord) Add(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// InBounds returns true if the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

// Neighbors returns the orthogonally adjacent coordinates that are in bounds.
func (c Coord) Neighbors() []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		n := c.Add(d[0], d[1])
		if n.InBounds() {
			out = append(out, n)
		}
	}
	return out
}

// Less orders coordinates by row, then column. Used for deterministic
// iteration and tie-breaking.
func (c Coord) Less(other Coord) bool {
	if c.Row != other.Row {
		return c.Row < other.Row
	}
	return c.Col < other.Col
}
