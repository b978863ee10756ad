package tui

import (
	"github.com/vovakirdan/tui-battleship/internal/battle"
	"github.com/vovakirdan/tui-battleship/internal/core"
)

// Board layout constants. Every grid cell is two characters wide so the
// boards read roughly square in a terminal.
const (
	cellW      = 2
	gridW      = battle.GridSize*cellW + 1 // interior plus row labels
	boardGap   = 4
	headerRows = 2 // title and column header
)

// Cell glyphs.
const (
	runeWater  = '~'
	runeShip   = '▣'
	runeHit    = 'X'
	runeMiss   = '·'
	runeCursor = '+'
)

// boardLayout records where a board was drawn so mouse clicks can be
// mapped back to cells.
type boardLayout struct {
	grid core.Rect // interior cell area, row 0/col 0 at top-left
}

// cellAt maps a screen position to a board coordinate.
func (l boardLayout) cellAt(x, y int) (battle.Coord, bool) {
	if !l.grid.Contains(x, y) {
		return battle.Coord{}, false
	}
	return battle.C(y-l.grid.Y, (x-l.grid.X)/cellW), true
}

// drawBoard renders one board at the given origin. With reveal set, own
// ships are shown; otherwise only shot outcomes are visible. cursor, when
// non-nil, highlights the targeted cell.
func drawBoard(s *core.Screen, x, y int, title string, b *battle.Board, reveal bool, cursor *battle.Coord) boardLayout {
	s.DrawTextColored(x, y, title, core.ColorBrightGreen)

	// Column header
	for col := 0; col < battle.GridSize; col++ {
		s.SetColored(x+2+col*cellW, y+1, rune('0'+col), core.ColorGray)
	}

	grid := core.NewRect(x+2, y+headerRows, battle.GridSize*cellW, battle.GridSize)
	for row := 0; row < battle.GridSize; row++ {
		s.SetColored(x, y+headerRows+row, rune('A'+row), core.ColorGray)
		for col := 0; col < battle.GridSize; col++ {
			c := battle.C(row, col)
			r, color := cellGlyph(b, c, reveal)
			if cursor != nil && *cursor == c {
				if r == runeWater {
					r = runeCursor
				}
				color = core.ColorBrightYellow
			}
			s.SetColored(grid.X+col*cellW, grid.Y+row, r, color)
		}
	}
	return boardLayout{grid: grid}
}

// cellGlyph picks the rune and color for one cell.
func cellGlyph(b *battle.Board, c battle.Coord, reveal bool) (rune, core.Color) {
	switch b.ShotAt(c) {
	case battle.CellHit:
		ship := b.ShipAt(c)
		if ship != nil && ship.Sunk() {
			return runeHit, core.ColorRed
		}
		return runeHit, core.ColorBrightRed
	case battle.CellMiss:
		return runeMiss, core.ColorCyan
	}
	if reveal && b.ShipAt(c) != nil {
		return runeShip, core.ColorWhite
	}
	return runeWater, core.ColorBlue
}

// boardHeight is the number of screen rows one board occupies.
func boardHeight() int {
	return headerRows + battle.GridSize
}

// minScreenW is the narrowest screen that fits both boards side by side.
func minScreenW() int {
	return 2*gridW + boardGap + 2
}
