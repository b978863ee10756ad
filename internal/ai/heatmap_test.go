package ai

import (
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/battle"
)

var testWeights = Weights{AdjacencyBonus: 3, ParityDamping: 0.25}

func TestHeatmapCenterHotterThanCorner(t *testing.T) {
	heat := BuildHeatmap(NewKnowledge(), testWeights)

	center := heat.At(battle.C(4, 4))
	corner := heat.At(battle.C(0, 0))
	if center <= corner {
		t.Errorf("center heat %d <= corner heat %d; more placements cross the center", center, corner)
	}
	if heat.Total() <= 0 {
		t.Error("empty-board heatmap has no weight at all")
	}
}

func TestHeatmapHitBoostsNeighbors(t *testing.T) {
	k := NewKnowledge()
	k.Record(battle.ShotResult{Coord: battle.C(3, 3), Outcome: battle.OutcomeHit})

	heat := BuildHeatmap(k, testWeights)
	far := heat.At(battle.C(9, 9))
	for _, n := range battle.C(3, 3).Neighbors() {
		if heat.At(n) <= far {
			t.Errorf("neighbor %v heat %d <= far cell heat %d", n, heat.At(n), far)
		}
	}
}

func TestHeatmapMissExcluded(t *testing.T) {
	k := NewKnowledge()
	k.Record(battle.ShotResult{Coord: battle.C(5, 5), Outcome: battle.OutcomeMiss})

	heat := BuildHeatmap(k, testWeights)
	if heat.At(battle.C(5, 5)) != 0 {
		t.Errorf("miss cell heat = %d, expected 0", heat.At(battle.C(5, 5)))
	}
}

func TestHeatmapSunkCellsExcluded(t *testing.T) {
	k := NewKnowledge()
	ship := &battle.Ship{
		ID:    4,
		Name:  "Destroyer",
		Size:  2,
		Cells: []battle.Coord{battle.C(8, 0), battle.C(8, 1)},
	}
	k.Record(battle.ShotResult{Coord: battle.C(8, 0), Outcome: battle.OutcomeHit})
	k.Record(battle.ShotResult{Coord: battle.C(8, 1), Outcome: battle.OutcomeHitAndSunk, SunkShip: ship})

	heat := BuildHeatmap(k, testWeights)
	if heat.At(battle.C(8, 0)) != 0 || heat.At(battle.C(8, 1)) != 0 {
		t.Errorf("sunk cells carry heat: %d, %d", heat.At(battle.C(8, 0)), heat.At(battle.C(8, 1)))
	}
}

func TestHeatmapParityDamping(t *testing.T) {
	k := NewKnowledge()
	undamped := BuildHeatmap(k, Weights{AdjacencyBonus: 3, ParityDamping: 1.0})
	damped := BuildHeatmap(k, testWeights)

	offParity := battle.C(0, 1)
	onParity := battle.C(0, 0)
	if damped.At(offParity) >= undamped.At(offParity) {
		t.Errorf("off-parity heat not damped: %d >= %d", damped.At(offParity), undamped.At(offParity))
	}
	if damped.At(onParity) != undamped.At(onParity) {
		t.Errorf("on-parity heat changed: %d != %d", damped.At(onParity), undamped.At(onParity))
	}
}

func TestHeatmapNoDampingWhileTargeting(t *testing.T) {
	k := NewKnowledge()
	k.Record(battle.ShotResult{Coord: battle.C(3, 3), Outcome: battle.OutcomeHit})

	heat := BuildHeatmap(k, Weights{AdjacencyBonus: 0, ParityDamping: 0})
	// With damping active, a zero factor would wipe off-parity cells.
	// An unresolved hit must disable it entirely.
	if heat.At(battle.C(0, 1)) == 0 {
		t.Error("off-parity cell zeroed while an unresolved hit exists")
	}
}

func TestTargetCandidatesSingleHit(t *testing.T) {
	k := NewKnowledge()
	k.Record(battle.ShotResult{Coord: battle.C(3, 3), Outcome: battle.OutcomeHit})

	cands := targetCandidates(k)
	want := []battle.Coord{battle.C(2, 3), battle.C(3, 2), battle.C(3, 4), battle.C(4, 3)}
	if len(cands) != len(want) {
		t.Fatalf("targetCandidates = %v, expected %v", cands, want)
	}
	for i := range want {
		if cands[i] != want[i] {
			t.Errorf("candidate %d = %v, expected %v", i, cands[i], want[i])
		}
	}
}

func TestTargetCandidatesOrientedCluster(t *testing.T) {
	k := NewKnowledge()
	k.Record(battle.ShotResult{Coord: battle.C(3, 3), Outcome: battle.OutcomeHit})
	k.Record(battle.ShotResult{Coord: battle.C(3, 4), Outcome: battle.OutcomeHit})

	cands := targetCandidates(k)
	want := []battle.Coord{battle.C(3, 2), battle.C(3, 5)}
	if len(cands) != len(want) {
		t.Fatalf("targetCandidates = %v, expected line extensions %v", cands, want)
	}
	for i := range want {
		if cands[i] != want[i] {
			t.Errorf("candidate %d = %v, expected %v", i, cands[i], want[i])
		}
	}
}

func TestTargetCandidatesClusterAtEdge(t *testing.T) {
	tests := []struct {
		name string
		hits []battle.Coord
		want []battle.Coord
	}{
		{
			name: "horizontal at left edge",
			hits: []battle.Coord{battle.C(0, 0), battle.C(0, 1)},
			want: []battle.Coord{battle.C(0, 2)},
		},
		{
			name: "vertical at bottom edge",
			hits: []battle.Coord{battle.C(8, 5), battle.C(9, 5)},
			want: []battle.Coord{battle.C(7, 5)},
		},
		{
			name: "horizontal at right edge",
			hits: []battle.Coord{battle.C(4, 8), battle.C(4, 9)},
			want: []battle.Coord{battle.C(4, 7)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := NewKnowledge()
			for _, h := range tt.hits {
				k.Record(battle.ShotResult{Coord: h, Outcome: battle.OutcomeHit})
			}

			cands := targetCandidates(k)
			if len(cands) != len(tt.want) {
				t.Fatalf("targetCandidates = %v, expected %v", cands, tt.want)
			}
			for i := range tt.want {
				if cands[i] != tt.want[i] {
					t.Errorf("candidate %d = %v, expected %v", i, cands[i], tt.want[i])
				}
			}
		})
	}
}

func TestTargetCandidatesSkipKnownCells(t *testing.T) {
	k := NewKnowledge()
	k.Record(battle.ShotResult{Coord: battle.C(3, 3), Outcome: battle.OutcomeHit})
	k.Record(battle.ShotResult{Coord: battle.C(3, 2), Outcome: battle.OutcomeMiss})

	for _, c := range targetCandidates(k) {
		if k.At(c) != battle.CellUnknown {
			t.Errorf("candidate %v is not unknown", c)
		}
	}
}

func TestTopCandidates(t *testing.T) {
	k := NewKnowledge()
	k.Record(battle.ShotResult{Coord: battle.C(0, 0), Outcome: battle.OutcomeMiss})

	heat := BuildHeatmap(k, testWeights)
	cands := topCandidates(&heat, k, 8)

	if len(cands) == 0 || len(cands) > 8 {
		t.Fatalf("topCandidates returned %d cells, expected 1..8", len(cands))
	}
	for i, c := range cands {
		if k.At(c) != battle.CellUnknown {
			t.Errorf("candidate %v is not unknown", c)
		}
		if i > 0 && heat.At(cands[i-1]) < heat.At(c) {
			t.Errorf("candidates not in descending heat order at %d", i)
		}
	}
}

func TestClusterOrientationRejectsPlacements(t *testing.T) {
	k := NewKnowledge()
	k.Record(battle.ShotResult{Coord: battle.C(3, 3), Outcome: battle.OutcomeHit})
	k.Record(battle.ShotResult{Coord: battle.C(3, 4), Outcome: battle.OutcomeHit})

	clusters := hitClusters(k)
	if len(clusters) != 1 {
		t.Fatalf("hitClusters found %d clusters, expected 1", len(clusters))
	}
	if clusters[0].orient != orientHorizontal {
		t.Fatalf("cluster orientation = %v, expected horizontal", clusters[0].orient)
	}

	// A vertical placement through one hit cannot cover the whole cluster.
	vertical := placementCells(battle.C(2, 3), 3, false)
	if consistentWithClusters(vertical, clusters, 3, false) {
		t.Error("vertical placement through a horizontal cluster accepted")
	}

	// A horizontal placement covering both hits is fine.
	horizontal := placementCells(battle.C(3, 2), 4, true)
	if !consistentWithClusters(horizontal, clusters, 4, true) {
		t.Error("horizontal placement covering the cluster rejected")
	}

	// A placement that touches the cluster without covering it is rejected.
	partial := placementCells(battle.C(3, 4), 2, true)
	if consistentWithClusters(partial, clusters, 2, true) {
		t.Error("placement covering only part of the cluster accepted")
	}
}

func TestPlacementShorterThanCluster(t *testing.T) {
	k := NewKnowledge()
	for _, c := range []battle.Coord{battle.C(3, 3), battle.C(3, 4), battle.C(3, 5)} {
		k.Record(battle.ShotResult{Coord: c, Outcome: battle.OutcomeHit})
	}
	clusters := hitClusters(k)

	short := placementCells(battle.C(3, 3), 2, true)
	if consistentWithClusters(short, clusters, 2, true) {
		t.Error("size-2 placement touching a size-3 cluster accepted")
	}
	exact := placementCells(battle.C(3, 3), 3, true)
	if !consistentWithClusters(exact, clusters, 3, true) {
		t.Error("size-3 placement covering a size-3 cluster rejected")
	}
}
