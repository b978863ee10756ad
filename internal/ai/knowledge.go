// Package ai implements the computer opponents: a knowledge model over
// observed shot outcomes, a placement-counting heatmap, and move selection
// strategies from uniform random up to alpha-beta search. Opponents never
// read the defender's board; everything here works off ShotResults alone.
package ai

import (
	"errors"

	"github.com/vovakirdan/tui-battleship/internal/battle"
)

// ErrNoCandidates is returned when an opponent is asked to move with no
// unknown cells remaining. The turn controller ends the game on AllSunk
// first, so hitting this indicates a caller bug.
var ErrNoCandidates = errors.New("ai: no unknown cells remain")

// Knowledge is one side's view of the opposing board: only what prior
// shots revealed. Cells of ships reported sunk are tracked separately so
// placement counting can exclude them.
type Knowledge struct {
	cells     [battle.GridSize][battle.GridSize]battle.CellState
	sunk      [battle.GridSize][battle.GridSize]bool
	remaining []int // sizes of opposing ships not yet sunk
	unknown   int
}

// NewKnowledge returns a fully unknown view with the standard fleet still
// afloat.
func NewKnowledge() *Knowledge {
	return &Knowledge{
		remaining: append([]int(nil), battle.FleetSizes[:]...),
		unknown:   battle.GridSize * battle.GridSize,
	}
}

// At returns the recorded state of a cell.
func (k *Knowledge) At(c battle.Coord) battle.CellState {
	return k.cells[c.Row][c.Col]
}

// Remaining returns the sizes of opposing ships believed still afloat.
func (k *Knowledge) Remaining() []int {
	return k.remaining
}

// UnknownCount returns the number of cells not yet fired upon.
func (k *Knowledge) UnknownCount() int {
	return k.unknown
}

// AllUnknown reports whether no outcome has been recorded yet.
func (k *Knowledge) AllUnknown() bool {
	return k.unknown == battle.GridSize*battle.GridSize
}

// HasUnresolvedHit reports whether any hit cell is not yet accounted for
// by a sunk ship.
func (k *Knowledge) HasUnresolvedHit() bool {
	for r := 0; r < battle.GridSize; r++ {
		for c := 0; c < battle.GridSize; c++ {
			if k.cells[r][c] == battle.CellHit && !k.sunk[r][c] {
				return true
			}
		}
	}
	return false
}

// Record folds a shot outcome into the view. AlreadyShot is a no-op. When
// a ship is reported sunk, its cells are marked resolved and one matching
// length is removed from the remaining fleet.
func (k *Knowledge) Record(res battle.ShotResult) {
	switch res.Outcome {
	case battle.OutcomeMiss:
		k.mark(res.Coord, battle.CellMiss)
	case battle.OutcomeHit:
		k.mark(res.Coord, battle.CellHit)
	case battle.OutcomeHitAndSunk, battle.OutcomeAllSunk:
		k.mark(res.Coord, battle.CellHit)
		if res.SunkShip != nil {
			for _, c := range res.SunkShip.Cells {
				k.sunk[c.Row][c.Col] = true
			}
			k.removeRemaining(res.SunkShip.Size)
		}
	}
}

// mark sets a cell state, maintaining the unknown counter. Used by Record
// and by search simulation.
func (k *Knowledge) mark(c battle.Coord, s battle.CellState) {
	if k.cells[c.Row][c.Col] == battle.CellUnknown && s != battle.CellUnknown {
		k.unknown--
	}
	k.cells[c.Row][c.Col] = s
}

// removeRemaining drops one ship of the given size, if tracked.
func (k *Knowledge) removeRemaining(size int) {
	for i, s := range k.remaining {
		if s == size {
			k.remaining = append(k.remaining[:i], k.remaining[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy for search simulation.
func (k *Knowledge) Clone() *Knowledge {
	dup := *k
	dup.remaining = append([]int(nil), k.remaining...)
	return &dup
}

// unknownCoords returns all unknown cells in row-major order.
func (k *Knowledge) unknownCoords() []battle.Coord {
	out := make([]battle.Coord, 0, k.unknown)
	for r := 0; r < battle.GridSize; r++ {
		for c := 0; c < battle.GridSize; c++ {
			if k.cells[r][c] == battle.CellUnknown {
				out = append(out, battle.C(r, c))
			}
		}
	}
	return out
}
