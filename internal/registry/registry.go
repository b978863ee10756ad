// Package registry provides a global registry for AI opponent factories.
// Opponents register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-battleship/internal/battle"
)

// Options tunes an opponent at reset time. Zero values fall back to the
// opponent's own defaults.
type Options struct {
	Seed int64 // RNG seed; 0 means the platform picks one

	// Search tuning, ignored by opponents that do not search.
	Depth          int     // Alpha-beta search depth
	TopK           int     // Candidate shots considered per ply
	AdjacencyBonus int     // Heat added next to unresolved hits
	ParityDamping  float64 // Off-parity weight while hunting, in [0,1]
	BudgetMs       int     // Soft wall-clock budget per move, 0 = unlimited
}

// Opponent is the interface all AI opponents implement. An opponent only
// ever sees shot outcomes, never the defender's board; that separation is
// the core fairness invariant.
type Opponent interface {
	// ID returns a unique identifier (e.g. "minimax"). Used for CLI
	// selection and match storage.
	ID() string

	// Name returns a human-readable name for display.
	Name() string

	// Reset clears all accumulated knowledge for a fresh game.
	Reset(opts Options)

	// SelectShot chooses the next target on the human's board, using only
	// previously observed outcomes.
	SelectShot() (battle.Coord, error)

	// Observe records the outcome of the opponent's own shot.
	Observe(res battle.ShotResult)

	// ObserveIncoming records a shot the human fired at the opponent's
	// board. Defenders legally see incoming shots; search-based opponents
	// use this to estimate their own exposure.
	ObserveIncoming(res battle.ShotResult)
}

// Info contains metadata about a registered opponent.
type Info struct {
	ID   string
	Name string
}

// Factory is a function that creates a new opponent instance.
type Factory func() Opponent

var (
	factories = make(map[string]Factory)
	names     = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds an opponent factory to the registry. Typically called from
// an opponent's init() function. Panics on duplicate IDs.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: opponent %q already registered", id))
	}

	factories[id] = f
	names[id] = f().Name()
}

// List returns information about all registered opponents, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Name: names[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new opponent by its ID.
func Create(id string) (Opponent, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown opponent %q", id)
	}

	return f(), nil
}

// Exists checks if an opponent with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
