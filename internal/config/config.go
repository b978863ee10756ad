// Package config provides YAML-based configuration loading and difficulty
// presets for the battleship platform.
package config

// BattleshipConfig contains all tunable parameters for a match.
type BattleshipConfig struct {
	AI AIConfig `yaml:"ai"`
}

// AIConfig tunes the computer opponent.
type AIConfig struct {
	// Opponent is the registered opponent ID: "random", "hunter", "minimax".
	Opponent string `yaml:"opponent"`
	// Depth is the alpha-beta search depth (minimax only).
	Depth int `yaml:"depth"`
	// TopK is the number of candidate shots considered per search ply.
	TopK int `yaml:"top_k"`
	// AdjacencyBonus is the heat added to cells next to unresolved hits.
	AdjacencyBonus int `yaml:"adjacency_bonus"`
	// ParityDamping scales off-parity cell heat while hunting, in [0,1].
	ParityDamping float64 `yaml:"parity_damping"`
	// BudgetMs is a soft wall-clock budget per move; 0 disables it.
	BudgetMs int `yaml:"budget_ms"`
	// MoveCooldownTicks delays AI shots so they read as deliberate.
	MoveCooldownTicks int `yaml:"move_cooldown_ticks"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset overrides the AI section for a named difficulty. Unknown
// presets leave the config untouched.
func ApplyPreset(cfg *BattleshipConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.AI.Opponent = "random"
	case DifficultyNormal:
		cfg.AI.Opponent = "hunter"
	case DifficultyHard:
		cfg.AI.Opponent = "minimax"
		cfg.AI.Depth = 3
	}
}
