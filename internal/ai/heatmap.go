package ai

import (
	"sort"

	"github.com/vovakirdan/tui-battleship/internal/battle"
)

// Weights tunes the heatmap heuristic.
type Weights struct {
	// AdjacencyBonus is added to unknown cells orthogonally adjacent to an
	// unresolved hit, to focus targeting.
	AdjacencyBonus int
	// ParityDamping scales the heat of off-parity cells while hunting
	// (no unresolved hits). With a minimum surviving ship of length 2,
	// every ship covers at least one on-parity cell, so off-parity cells
	// can be deprioritized without losing coverage.
	ParityDamping float64
}

// Heatmap holds, per cell, the number of surviving-ship placements that
// would cover it, consistent with everything known so far.
type Heatmap [battle.GridSize][battle.GridSize]int

// Total returns the sum of all cell weights.
func (h *Heatmap) Total() int {
	total := 0
	for r := range h {
		for c := range h[r] {
			total += h[r][c]
		}
	}
	return total
}

// Max returns the largest cell weight.
func (h *Heatmap) Max() int {
	best := 0
	for r := range h {
		for c := range h[r] {
			if h[r][c] > best {
				best = h[r][c]
			}
		}
	}
	return best
}

// At returns the weight of a cell.
func (h *Heatmap) At(c battle.Coord) int {
	return h[c.Row][c.Col]
}

// orientation of a hit cluster, inferred once it has two colinear cells.
type orientation uint8

const (
	orientNone orientation = iota
	orientHorizontal
	orientVertical
)

// cluster is a 4-connected component of unresolved hit cells.
type cluster struct {
	cells  map[battle.Coord]bool
	orient orientation
}

// BuildHeatmap computes the placement-count heuristic over a knowledge
// view: for every surviving ship length, every in-bounds placement that
// avoids misses and sunk cells and is consistent with the hit clusters
// contributes one point to each cell it covers.
func BuildHeatmap(k *Knowledge, w Weights) Heatmap {
	var heat Heatmap
	clusters := hitClusters(k)

	for _, size := range k.remaining {
		for r := 0; r < battle.GridSize; r++ {
			for c := 0; c <= battle.GridSize-size; c++ {
				countPlacement(&heat, k, clusters, battle.C(r, c), size, true)
			}
		}
		for r := 0; r <= battle.GridSize-size; r++ {
			for c := 0; c < battle.GridSize; c++ {
				countPlacement(&heat, k, clusters, battle.C(r, c), size, false)
			}
		}
	}

	// Bias unknown neighbors of unresolved hits upward: ships are
	// contiguous, so the rest of a wounded ship is orthogonally adjacent.
	for r := 0; r < battle.GridSize; r++ {
		for c := 0; c < battle.GridSize; c++ {
			cell := battle.C(r, c)
			if k.At(cell) != battle.CellHit || k.sunk[r][c] {
				continue
			}
			for _, n := range cell.Neighbors() {
				if k.At(n) == battle.CellUnknown {
					heat[n.Row][n.Col] += w.AdjacencyBonus
				}
			}
		}
	}

	if !k.HasUnresolvedHit() && len(k.remaining) > 0 && minInt(k.remaining) >= 2 {
		for r := 0; r < battle.GridSize; r++ {
			for c := 0; c < battle.GridSize; c++ {
				if (r+c)%2 == 1 {
					heat[r][c] = int(float64(heat[r][c]) * w.ParityDamping)
				}
			}
		}
	}

	return heat
}

// countPlacement adds one point to every cell of the placement if it is
// consistent with the knowledge view and the hit clusters.
func countPlacement(heat *Heatmap, k *Knowledge, clusters []cluster, origin battle.Coord, size int, horizontal bool) {
	cells := placementCells(origin, size, horizontal)
	for _, c := range cells {
		if k.At(c) == battle.CellMiss || k.sunk[c.Row][c.Col] {
			return
		}
	}
	if !consistentWithClusters(cells, clusters, size, horizontal) {
		return
	}
	for _, c := range cells {
		heat[c.Row][c.Col]++
	}
}

// placementCells returns the cells a ship would occupy.
func placementCells(origin battle.Coord, size int, horizontal bool) []battle.Coord {
	cells := make([]battle.Coord, size)
	for i := 0; i < size; i++ {
		if horizontal {
			cells[i] = origin.Add(0, i)
		} else {
			cells[i] = origin.Add(i, 0)
		}
	}
	return cells
}

// consistentWithClusters enforces the cluster rules: a placement may
// intersect at most one cluster, must fully cover any cluster it touches,
// must match the cluster's orientation when known, and cannot touch a
// cluster longer than itself.
func consistentWithClusters(cells []battle.Coord, clusters []cluster, size int, horizontal bool) bool {
	cellSet := make(map[battle.Coord]bool, len(cells))
	for _, c := range cells {
		cellSet[c] = true
	}
	intersected := 0
	for _, cl := range clusters {
		touches := false
		covered := true
		for c := range cl.cells {
			if cellSet[c] {
				touches = true
			} else {
				covered = false
			}
		}
		if !touches {
			continue
		}
		if len(cl.cells) > size || !covered {
			return false
		}
		if cl.orient == orientHorizontal && !horizontal {
			return false
		}
		if cl.orient == orientVertical && horizontal {
			return false
		}
		intersected++
		if intersected > 1 {
			return false
		}
	}
	return true
}

// hitClusters finds 4-connected components of unresolved hit cells and
// infers their orientation where two or more cells are colinear.
func hitClusters(k *Knowledge) []cluster {
	var visited [battle.GridSize][battle.GridSize]bool
	var out []cluster

	for r := 0; r < battle.GridSize; r++ {
		for c := 0; c < battle.GridSize; c++ {
			start := battle.C(r, c)
			if visited[r][c] || !unresolvedHit(k, start) {
				continue
			}
			comp := map[battle.Coord]bool{}
			stack := []battle.Coord{start}
			visited[r][c] = true
			for len(stack) > 0 {
				cur := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				comp[cur] = true
				for _, n := range cur.Neighbors() {
					if !visited[n.Row][n.Col] && unresolvedHit(k, n) {
						visited[n.Row][n.Col] = true
						stack = append(stack, n)
					}
				}
			}
			out = append(out, cluster{cells: comp, orient: clusterOrientation(comp)})
		}
	}
	return out
}

func unresolvedHit(k *Knowledge, c battle.Coord) bool {
	return k.At(c) == battle.CellHit && !k.sunk[c.Row][c.Col]
}

func clusterOrientation(comp map[battle.Coord]bool) orientation {
	if len(comp) < 2 {
		return orientNone
	}
	sameRow, sameCol := true, true
	var first battle.Coord
	seeded := false
	for c := range comp {
		if !seeded {
			first, seeded = c, true
			continue
		}
		if c.Row != first.Row {
			sameRow = false
		}
		if c.Col != first.Col {
			sameCol = false
		}
	}
	switch {
	case sameRow:
		return orientHorizontal
	case sameCol:
		return orientVertical
	default:
		return orientNone
	}
}

// targetCandidates returns the cells worth shooting while a wounded ship
// is on the board: extension cells along an oriented cluster's line, or
// all unknown orthogonal neighbors of an ambiguous one. Sorted by row then
// column for determinism.
func targetCandidates(k *Knowledge) []battle.Coord {
	seen := map[battle.Coord]bool{}
	var cand []battle.Coord
	add := func(c battle.Coord) {
		if !c.InBounds() {
			return
		}
		if !seen[c] && k.At(c) == battle.CellUnknown {
			seen[c] = true
			cand = append(cand, c)
		}
	}

	for _, cl := range hitClusters(k) {
		if cl.orient == orientNone {
			for c := range cl.cells {
				for _, n := range c.Neighbors() {
					add(n)
				}
			}
			continue
		}
		minC, maxC := clusterExtent(cl.cells)
		if cl.orient == orientHorizontal {
			add(minC.Add(0, -1))
			add(maxC.Add(0, 1))
		} else {
			add(minC.Add(-1, 0))
			add(maxC.Add(1, 0))
		}
	}

	sort.Slice(cand, func(i, j int) bool { return cand[i].Less(cand[j]) })
	return cand
}

// clusterExtent returns the lowest and highest cells of a cluster in
// row-major order.
func clusterExtent(cells map[battle.Coord]bool) (battle.Coord, battle.Coord) {
	var lo, hi battle.Coord
	seeded := false
	for c := range cells {
		if !seeded {
			lo, hi, seeded = c, c, true
			continue
		}
		if c.Less(lo) {
			lo = c
		}
		if hi.Less(c) {
			hi = c
		}
	}
	return lo, hi
}

// topCandidates returns up to limit unknown cells ordered by descending
// heat, ties broken by row then column. Zero-heat cells are kept only when
// nothing scores.
func topCandidates(heat *Heatmap, k *Knowledge, limit int) []battle.Coord {
	unknown := k.unknownCoords()
	sort.SliceStable(unknown, func(i, j int) bool {
		hi, hj := heat.At(unknown[i]), heat.At(unknown[j])
		if hi != hj {
			return hi > hj
		}
		return unknown[i].Less(unknown[j])
	})
	if limit > len(unknown) {
		limit = len(unknown)
	}
	// The sort puts scored cells first; keep only those unless none score.
	scored := 0
	for scored < limit && heat.At(unknown[scored]) > 0 {
		scored++
	}
	if scored > 0 {
		return unknown[:scored]
	}
	return unknown[:limit]
}

func minInt(xs []int) int {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}
