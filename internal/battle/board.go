package battle

// CellState is the attacker's knowledge of a single cell on the opponent's
// board. Every cell starts Unknown.
type CellState uint8

const (
	CellUnknown CellState = iota
	CellMiss
	CellHit
)

// String returns a human-readable name for the cell state.
func (s CellState) String() string {
	switch s {
	case CellUnknown:
		return "unknown"
	case CellMiss:
		return "miss"
	case CellHit:
		return "hit"
	default:
		return "invalid"
	}
}

// FleetSizes is the standard fleet: Carrier, Battleship, Cruiser,
// Submarine, Destroyer. Two ships share size 3 and are distinguished by ID.
var FleetSizes = [5]int{5, 4, 3, 3, 2}

// shipNames maps fleet slot index to the classic ship name.
var shipNames = [5]string{"Carrier", "Battleship", "Cruiser", "Submarine", "Destroyer"}

// Ship is a single vessel: an ordered run of contiguous cells, all
// horizontal or all vertical.
type Ship struct {
	ID    int
	Name  string
	Size  int
	Cells []Coord
	hits  int
}

// Sunk returns true once every cell of the ship has been hit.
func (s *Ship) Sunk() bool {
	return s.hits >= s.Size
}

// Hits returns the number of struck cells.
func (s *Ship) Hits() int {
	return s.hits
}

// Outcome classifies the result of a single shot.
type Outcome uint8

const (
	// OutcomeAlreadyShot means the cell was fired upon before. The board
	// is not mutated and the shot must not consume a turn.
	OutcomeAlreadyShot Outcome = iota
	OutcomeMiss
	OutcomeHit
	// OutcomeHitAndSunk means the shot struck the last unhit cell of a ship.
	OutcomeHitAndSunk
	// OutcomeAllSunk means the shot sank the last surviving ship.
	OutcomeAllSunk
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case OutcomeAlreadyShot:
		return "already shot"
	case OutcomeMiss:
		return "miss"
	case OutcomeHit:
		return "hit"
	case OutcomeHitAndSunk:
		return "hit and sunk"
	case OutcomeAllSunk:
		return "all sunk"
	default:
		return "invalid"
	}
}

// IsHit reports whether the shot struck a ship.
func (o Outcome) IsHit() bool {
	return o == OutcomeHit || o == OutcomeHitAndSunk || o == OutcomeAllSunk
}

// ShotResult is returned by Board.Fire. SunkShip is set only for
// OutcomeHitAndSunk and OutcomeAllSunk.
type ShotResult struct {
	Coord    Coord
	Outcome  Outcome
	SunkShip *Ship
}

// SunkSize returns the size of the ship sunk by this shot, or 0.
func (r ShotResult) SunkSize() int {
	if r.SunkShip == nil {
		return 0
	}
	return r.SunkShip.Size
}

// Board owns one player's fleet and the shot record as seen by the
// opponent. Invariant: a cell is CellHit iff it belongs to a ship and was
// fired upon, CellMiss iff fired upon and empty.
type Board struct {
	ships []*Ship
	// occupancy maps each cell to a fleet slot index, -1 when empty.
	occupancy [GridSize][GridSize]int8
	shots     [GridSize][GridSize]CellState
}

// NewBoard returns an empty board with no ships placed.
func NewBoard() *Board {
	b := &Board{}
	for r := range b.occupancy {
		for c := range b.occupancy[r] {
			b.occupancy[r][c] = -1
		}
	}
	return b
}

// Ships returns the fleet. Callers must not mutate the returned ships.
func (b *Board) Ships() []*Ship {
	return b.ships
}

// ShotAt returns the attacker-visible state of a cell. Out-of-bounds
// coordinates read as CellUnknown.
func (b *Board) ShotAt(c Coord) CellState {
	if !c.InBounds() {
		return CellUnknown
	}
	return b.shots[c.Row][c.Col]
}

// ShipAt returns the ship occupying a cell, or nil. This is ground truth
// owned by the board; AI code must never call it on the opponent's board.
func (b *Board) ShipAt(c Coord) *Ship {
	if !c.InBounds() {
		return nil
	}
	idx := b.occupancy[c.Row][c.Col]
	if idx < 0 {
		return nil
	}
	return b.ships[idx]
}

// AllSunk returns true when every ship of a non-empty fleet is sunk.
func (b *Board) AllSunk() bool {
	if len(b.ships) == 0 {
		return false
	}
	for _, s := range b.ships {
		if !s.Sunk() {
			return false
		}
	}
	return true
}

// RemainingSizes returns the sizes of ships not yet sunk.
func (b *Board) RemainingSizes() []int {
	var sizes []int
	for _, s := range b.ships {
		if !s.Sunk() {
			sizes = append(sizes, s.Size)
		}
	}
	return sizes
}

// canPlace reports whether a ship of the given size fits at the origin
// without leaving the board or overlapping another ship.
func (b *Board) canPlace(origin Coord, size int, horizontal bool) bool {
	for i := 0; i < size; i++ {
		c := shipCell(origin, i, horizontal)
		if !c.InBounds() || b.occupancy[c.Row][c.Col] >= 0 {
			return false
		}
	}
	return true
}

// placeShip adds a ship to the fleet. Returns false without mutating the
// board if the placement is invalid.
func (b *Board) placeShip(id int, name string, origin Coord, size int, horizontal bool) bool {
	if !b.canPlace(origin, size, horizontal) {
		return false
	}
	cells := make([]Coord, size)
	for i := 0; i < size; i++ {
		cells[i] = shipCell(origin, i, horizontal)
	}
	idx := int8(len(b.ships))
	for _, c := range cells {
		b.occupancy[c.Row][c.Col] = idx
	}
	b.ships = append(b.ships, &Ship{ID: id, Name: name, Size: size, Cells: cells})
	return true
}

// shipCell returns the i-th cell of a ship anchored at origin.
func shipCell(origin Coord, i int, horizontal bool) Coord {
	if horizontal {
		return origin.Add(0, i)
	}
	return origin.Add(i, 0)
}

// Fire applies a shot to the board and returns the outcome. Repeated shots
// at the same cell return OutcomeAlreadyShot without mutating anything.
// The mutation is validate-then-apply: no partial state is observable.
func (b *Board) Fire(c Coord) (ShotResult, error) {
	if !c.InBounds() {
		return ShotResult{}, ErrOutOfBounds
	}
	if b.shots[c.Row][c.Col] != CellUnknown {
		return ShotResult{Coord: c, Outcome: OutcomeAlreadyShot}, nil
	}

	ship := b.ShipAt(c)
	if ship == nil {
		b.shots[c.Row][c.Col] = CellMiss
		return ShotResult{Coord: c, Outcome: OutcomeMiss}, nil
	}

	b.shots[c.Row][c.Col] = CellHit
	ship.hits++
	if !ship.Sunk() {
		return ShotResult{Coord: c, Outcome: OutcomeHit}, nil
	}
	if b.AllSunk() {
		return ShotResult{Coord: c, Outcome: OutcomeAllSunk, SunkShip: ship}, nil
	}
	return ShotResult{Coord: c, Outcome: OutcomeHitAndSunk, SunkShip: ship}, nil
}
