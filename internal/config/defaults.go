package config

import (
	_ "embed"
)

//go:embed defaults/battleship.yaml
var defaultBattleshipYAML []byte

// DefaultBattleshipConfig returns the hardcoded default configuration,
// used when even the embedded YAML fails to parse.
func DefaultBattleshipConfig() BattleshipConfig {
	return BattleshipConfig{
		AI: AIConfig{
			Opponent:          "minimax",
			Depth:             2,
			TopK:              8,
			AdjacencyBonus:    3,
			ParityDamping:     0.25,
			BudgetMs:          0,
			MoveCooldownTicks: 20,
		},
	}
}
