package battle

import (
	"math/rand"
	"sort"
	"strconv"
)

// maxPlacementAttempts bounds the random search per ship before falling
// back to a deterministic scan.
const maxPlacementAttempts = 1000

// Placement describes one ship position for manually supplied boards.
type Placement struct {
	Row        int
	Col        int
	Size       int
	Horizontal bool
}

// PlaceFleet builds a board with the standard fleet placed uniformly at
// random among valid non-overlapping positions. The rng is injected so
// placement is reproducible in tests.
func PlaceFleet(rng *rand.Rand) (*Board, error) {
	b := NewBoard()
	for id, size := range FleetSizes {
		if err := placeRandom(b, rng, id, shipNames[id], size); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// placeRandom tries random positions for one ship, then scans
// deterministically before giving up.
func placeRandom(b *Board, rng *rand.Rand, id int, name string, size int) error {
	for attempt := 0; attempt < maxPlacementAttempts; attempt++ {
		horizontal := rng.Intn(2) == 0
		var origin Coord
		if horizontal {
			origin = C(rng.Intn(GridSize), rng.Intn(GridSize-size+1))
		} else {
			origin = C(rng.Intn(GridSize-size+1), rng.Intn(GridSize))
		}
		if b.placeShip(id, name, origin, size, horizontal) {
			return nil
		}
	}
	// Random search exhausted; scan every position before failing.
	for r := 0; r < GridSize; r++ {
		for c := 0; c < GridSize; c++ {
			if b.placeShip(id, name, C(r, c), size, true) || b.placeShip(id, name, C(r, c), size, false) {
				return nil
			}
		}
	}
	return &PlacementError{Size: size, Attempts: maxPlacementAttempts}
}

// NewBoardFromPlacements builds a board from explicit ship positions, for
// manual placement. The result is validated against the fleet invariant.
func NewBoardFromPlacements(placements []Placement) (*Board, error) {
	b := NewBoard()
	for id, p := range placements {
		name := "Ship"
		if id < len(shipNames) {
			name = shipNames[id]
		}
		if !b.placeShip(id, name, C(p.Row, p.Col), p.Size, p.Horizontal) {
			return nil, &ValidationError{
				Code:    "invalid_placement",
				Message: "ship of size " + strconv.Itoa(p.Size) + " does not fit at " + C(p.Row, p.Col).String(),
			}
		}
	}
	if err := ValidateFleet(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ValidateFleet checks the fleet invariant: exactly one ship each of sizes
// 5, 4 and 2, two of size 3, no overlaps, everything in bounds. Overlap and
// bounds are enforced structurally by placeShip, but externally supplied
// boards are re-checked regardless of source.
func ValidateFleet(b *Board) error {
	want := append([]int(nil), FleetSizes[:]...)
	var got []int
	seen := make(map[Coord]bool)
	for _, s := range b.Ships() {
		got = append(got, s.Size)
		if len(s.Cells) != s.Size {
			return &ValidationError{Code: "bad_ship", Message: s.Name + " cell count does not match its size"}
		}
		for i, c := range s.Cells {
			if !c.InBounds() {
				return &ValidationError{Code: "out_of_bounds", Message: s.Name + " extends outside the grid"}
			}
			if seen[c] {
				return &ValidationError{Code: "overlap", Message: "two ships share cell " + c.String()}
			}
			seen[c] = true
			if i > 0 && !contiguous(s.Cells[i-1], c) {
				return &ValidationError{Code: "not_contiguous", Message: s.Name + " cells are not contiguous"}
			}
		}
		if s.Size >= 2 && !straight(s.Cells) {
			return &ValidationError{Code: "not_straight", Message: s.Name + " is neither horizontal nor vertical"}
		}
	}
	sort.Ints(want)
	sort.Ints(got)
	if len(got) != len(want) {
		return &ValidationError{Code: "fleet_size", Message: "fleet must have exactly " + strconv.Itoa(len(want)) + " ships"}
	}
	for i := range want {
		if got[i] != want[i] {
			return &ValidationError{Code: "fleet_sizes", Message: "fleet ship sizes must be {5,4,3,3,2}"}
		}
	}
	return nil
}

// contiguous reports whether b directly follows a along a row or column.
func contiguous(a, b Coord) bool {
	dr, dc := b.Row-a.Row, b.Col-a.Col
	return (dr == 0 && (dc == 1 || dc == -1)) || (dc == 0 && (dr == 1 || dr == -1))
}

// straight reports whether all cells share a row or share a column.
func straight(cells []Coord) bool {
	sameRow, sameCol := true, true
	for _, c := range cells[1:] {
		if c.Row != cells[0].Row {
			sameRow = false
		}
		if c.Col != cells[0].Col {
			sameCol = false
		}
	}
	return sameRow || sameCol
}
