package battle

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the game core.
var (
	// ErrOutOfBounds is returned when a shot targets a coordinate outside
	// the board. The input layer should prevent this, but the core
	// validates regardless.
	ErrOutOfBounds = errors.New("battle: coordinate out of bounds")

	// ErrGameOver is returned when a shot is submitted after the game
	// reached a terminal phase.
	ErrGameOver = errors.New("battle: game is over")

	// ErrWrongTurn is returned when a shot is submitted by the side whose
	// turn it is not.
	ErrWrongTurn = errors.New("battle: not this side's turn")

	// ErrNotInSetup is returned when a setup-only operation (reroll,
	// board replacement) is attempted after the game started.
	ErrNotInSetup = errors.New("battle: game already started")

	// ErrNotStarted is returned when a shot is submitted while the game
	// is still in setup.
	ErrNotStarted = errors.New("battle: game not started")
)

// PlacementError reports that random fleet placement failed to find a
// valid position for a ship within the attempt budget. Practically
// unreachable on a 10x10 grid with the standard fleet, but the contract
// exists so constrained-retry behavior stays testable.
type PlacementError struct {
	Size     int
	Attempts int
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("battle: no valid placement for ship of size %d after %d attempts", e.Size, e.Attempts)
}

// ValidationError contains details about a fleet invariant violation in an
// externally supplied board.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("battle: [%s] %s", e.Code, e.Message)
}
