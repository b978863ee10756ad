package ai

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-battleship/internal/battle"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

// Default search tuning, applied when Options leave a field zero.
const (
	defaultDepth          = 2
	defaultTopK           = 8
	defaultAdjacencyBonus = 3
	defaultParityDamping  = 0.25
)

func init() {
	registry.Register("minimax", func() registry.Opponent {
		return NewMinimax()
	})
}

// Minimax is the full-strength opponent: heatmap-guided alpha-beta search
// over candidate shots, with the opponent ply modeled as counter-exposure
// on our own board.
type Minimax struct {
	rng      *rand.Rand
	know     *Knowledge // our view of the human's board
	selfView *Knowledge // the human's view of our board
	opts     registry.Options
}

// NewMinimax returns an unconfigured engine; Reset must be called before
// the first SelectShot.
func NewMinimax() *Minimax {
	m := &Minimax{}
	m.Reset(registry.Options{})
	return m
}

// ID returns the opponent identifier.
func (m *Minimax) ID() string { return "minimax" }

// Name returns the display name.
func (m *Minimax) Name() string { return "Admiral (alpha-beta search)" }

// Reset clears accumulated knowledge and applies option defaults.
func (m *Minimax) Reset(opts registry.Options) {
	if opts.Depth <= 0 {
		opts.Depth = defaultDepth
	}
	if opts.TopK <= 0 {
		opts.TopK = defaultTopK
	}
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
	m.opts = opts
	m.rng = rand.New(rand.NewSource(seed))
	m.know = NewKnowledge()
	m.selfView = NewKnowledge()
}

// Observe records the outcome of our own shot.
func (m *Minimax) Observe(res battle.ShotResult) {
	m.know.Record(res)
}

// ObserveIncoming records a shot the human fired at our board.
func (m *Minimax) ObserveIncoming(res battle.ShotResult) {
	m.selfView.Record(res)
}

func (m *Minimax) weights() Weights {
	return Weights{AdjacencyBonus: m.opts.AdjacencyBonus, ParityDamping: m.opts.ParityDamping}
}

// SelectShot picks the next target. With zero information the choice is
// uniformly random; once any outcome is recorded, selection is the
// deterministic search value with row-then-column tie-breaking.
func (m *Minimax) SelectShot() (battle.Coord, error) {
	if m.know.UnknownCount() == 0 {
		return battle.Coord{}, ErrNoCandidates
	}
	if m.know.AllUnknown() {
		unknown := m.know.unknownCoords()
		return unknown[m.rng.Intn(len(unknown))], nil
	}

	w := m.weights()
	heat := BuildHeatmap(m.know, w)
	cands := targetCandidates(m.know)
	if len(cands) == 0 {
		cands = topCandidates(&heat, m.know, m.opts.TopK)
	}

	var deadline time.Time
	if m.opts.BudgetMs > 0 {
		deadline = time.Now().Add(time.Duration(m.opts.BudgetMs) * time.Millisecond)
	}

	s := &searcher{weights: w, topK: m.opts.TopK, prune: true}
	total := heat.Total()
	maxHeat := heat.Max()
	best := cands[0]
	bestValue := math.Inf(-1)
	alpha, beta := math.Inf(-1), math.Inf(1)

	for _, c := range cands {
		node := searchNode{att: m.know.Clone(), def: m.selfView.Clone()}
		gain := 0.0
		if total > 0 {
			gain = float64(heat.At(c)) / float64(total)
		}
		node.att.markExpected(c, heat.At(c), maxHeat)
		value := gain + s.search(node, m.opts.Depth-1, alpha, beta, false)
		if value > bestValue {
			bestValue = value
			best = c
		}
		if value > alpha {
			alpha = value
		}
		if !deadline.IsZero() && time.Now().After(deadline) {
			// Soft budget: fall back to the best value found so far.
			break
		}
	}
	return best, nil
}

// searchNode is the hidden-information stand-in for a game position: two
// knowledge views, never ground truth.
type searchNode struct {
	att *Knowledge // the searching side's view of the human board
	def *Knowledge // the human's view of the searching side's board
}

// markExpected records the modeled outcome of a simulated shot: cells at
// or above half the peak heat are assumed hits, the rest misses.
func (k *Knowledge) markExpected(c battle.Coord, heat, maxHeat int) {
	if maxHeat > 0 && heat*2 >= maxHeat {
		k.mark(c, battle.CellHit)
	} else {
		k.mark(c, battle.CellMiss)
	}
}

// searcher runs minimax over searchNodes. With prune set it applies
// alpha-beta cutoffs; without, it visits every branch. Both orders must
// produce identical values since pruning only skips branches that cannot
// affect the result.
type searcher struct {
	weights Weights
	topK    int
	prune   bool
}

// search returns the accumulated expected net gain from this node to the
// horizon. Max plies are our candidate shots scored by hit probability;
// min plies are the opponent's best counter-shot on our own board.
func (s *searcher) search(n searchNode, depth int, alpha, beta float64, maximizing bool) float64 {
	if depth <= 0 {
		return 0
	}

	view := n.att
	if !maximizing {
		view = n.def
	}
	if view.UnknownCount() == 0 {
		return 0
	}
	heat := BuildHeatmap(view, s.weights)
	total := heat.Total()
	maxHeat := heat.Max()
	cands := targetCandidates(view)
	if len(cands) == 0 {
		cands = topCandidates(&heat, view, s.topK)
	}

	if maximizing {
		value := math.Inf(-1)
		for _, c := range cands {
			child := searchNode{att: n.att.Clone(), def: n.def.Clone()}
			gain := 0.0
			if total > 0 {
				gain = float64(heat.At(c)) / float64(total)
			}
			child.att.markExpected(c, heat.At(c), maxHeat)
			v := gain + s.search(child, depth-1, alpha, beta, false)
			if v > value {
				value = v
			}
			if value > alpha {
				alpha = value
			}
			if s.prune && alpha >= beta {
				break
			}
		}
		return value
	}

	value := math.Inf(1)
	for _, c := range cands {
		child := searchNode{att: n.att.Clone(), def: n.def.Clone()}
		loss := 0.0
		if total > 0 {
			loss = float64(heat.At(c)) / float64(total)
		}
		child.def.markExpected(c, heat.At(c), maxHeat)
		v := -loss + s.search(child, depth-1, alpha, beta, true)
		if v < value {
			value = v
		}
		if value < beta {
			beta = value
		}
		if s.prune && alpha >= beta {
			break
		}
	}
	return value
}
