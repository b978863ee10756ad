package ai

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-battleship/internal/battle"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

func init() {
	registry.Register("random", func() registry.Opponent {
		return NewRandom()
	})
	registry.Register("hunter", func() registry.Opponent {
		return NewHunter()
	})
}

// Random fires uniformly at random among unknown cells. The baseline
// opponent from the rules sheet.
type Random struct {
	rng  *rand.Rand
	know *Knowledge
}

// NewRandom returns a new baseline opponent.
func NewRandom() *Random {
	r := &Random{}
	r.Reset(registry.Options{})
	return r
}

// ID returns the opponent identifier.
func (r *Random) ID() string { return "random" }

// Name returns the display name.
func (r *Random) Name() string { return "Deckhand (random)" }

// Reset clears accumulated knowledge.
func (r *Random) Reset(opts registry.Options) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r.rng = rand.New(rand.NewSource(seed))
	r.know = NewKnowledge()
}

// Observe records the outcome of our own shot.
func (r *Random) Observe(res battle.ShotResult) {
	r.know.Record(res)
}

// ObserveIncoming is ignored; the baseline does not model its exposure.
func (r *Random) ObserveIncoming(battle.ShotResult) {}

// SelectShot picks a uniformly random unknown cell.
func (r *Random) SelectShot() (battle.Coord, error) {
	unknown := r.know.unknownCoords()
	if len(unknown) == 0 {
		return battle.Coord{}, ErrNoCandidates
	}
	return unknown[r.rng.Intn(len(unknown))], nil
}

// Hunter is the one-ply opponent: it shoots the hottest cell of the
// placement heatmap, chasing cluster extensions first, with no lookahead.
type Hunter struct {
	rng  *rand.Rand
	know *Knowledge
	w    Weights
}

// NewHunter returns a new heatmap-greedy opponent.
func NewHunter() *Hunter {
	h := &Hunter{}
	h.Reset(registry.Options{})
	return h
}

// ID returns the opponent identifier.
func (h *Hunter) ID() string { return "hunter" }

// Name returns the display name.
func (h *Hunter) Name() string { return "Gunner (heatmap greedy)" }

// Reset clears accumulated knowledge and applies option defaults.
func (h *Hunter) Reset(opts registry.Options) {
	if opts.AdjacencyBonus <= 0 {
		opts.AdjacencyBonus = defaultAdjacencyBonus
	}
	if opts.ParityDamping <= 0 {
		opts.ParityDamping = defaultParityDamping
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	h.rng = rand.New(rand.NewSource(seed))
	h.know = NewKnowledge()
	h.w = Weights{AdjacencyBonus: opts.AdjacencyBonus, ParityDamping: opts.ParityDamping}
}

// Observe records the outcome of our own shot.
func (h *Hunter) Observe(res battle.ShotResult) {
	h.know.Record(res)
}

// ObserveIncoming is ignored; the greedy opponent does not look ahead.
func (h *Hunter) ObserveIncoming(battle.ShotResult) {}

// SelectShot returns the hottest unknown cell, ties broken by row then
// column. A fully unknown view degenerates to a uniform random choice.
func (h *Hunter) SelectShot() (battle.Coord, error) {
	if h.know.UnknownCount() == 0 {
		return battle.Coord{}, ErrNoCandidates
	}
	if h.know.AllUnknown() {
		unknown := h.know.unknownCoords()
		return unknown[h.rng.Intn(len(unknown))], nil
	}

	heat := BuildHeatmap(h.know, h.w)
	cands := targetCandidates(h.know)
	if len(cands) == 0 {
		cands = topCandidates(&heat, h.know, 1)
	}
	best := cands[0]
	for _, c := range cands[1:] {
		if heat.At(c) > heat.At(best) {
			best = c
		}
	}
	return best, nil
}
