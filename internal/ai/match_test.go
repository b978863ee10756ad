package ai

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/battle"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

// firstUnknown scans the enemy board for the next untried cell, standing
// in for a human player.
func firstUnknown(b *battle.Board) (battle.Coord, bool) {
	for r := 0; r < battle.GridSize; r++ {
		for c := 0; c < battle.GridSize; c++ {
			if b.ShotAt(battle.C(r, c)) == battle.CellUnknown {
				return battle.C(r, c), true
			}
		}
	}
	return battle.Coord{}, false
}

func TestMatchFullGame(t *testing.T) {
	game, err := battle.NewGame(rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	opp := NewMinimax()
	opp.Reset(registry.Options{Seed: 11})
	match := NewMatch(game, opp)

	if err := match.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	rounds := 0
	for !match.Phase().Terminal() {
		if rounds > 400 {
			t.Fatal("match did not terminate")
		}
		rounds++

		if match.Turn() == battle.TurnPlayer {
			c, ok := firstUnknown(game.EnemyBoard())
			if !ok {
				t.Fatal("player has no cells left but the game is not over")
			}
			if _, err := match.SubmitPlayerShot(c); err != nil {
				t.Fatalf("SubmitPlayerShot(%v): %v", c, err)
			}
		} else {
			if _, err := match.PlayAITurn(); err != nil {
				t.Fatalf("PlayAITurn: %v", err)
			}
		}
	}

	sum := match.Summary()
	if sum.OpponentID != "minimax" {
		t.Errorf("Summary.OpponentID = %q, expected minimax", sum.OpponentID)
	}
	switch match.Phase() {
	case battle.PhasePlayerWon:
		if sum.Winner != "player" {
			t.Errorf("Winner = %q with phase %v", sum.Winner, match.Phase())
		}
		if sum.AIShipsLost != 5 {
			t.Errorf("AIShipsLost = %d, expected 5 when the player wins", sum.AIShipsLost)
		}
	case battle.PhaseAIWon:
		if sum.Winner != "ai" {
			t.Errorf("Winner = %q with phase %v", sum.Winner, match.Phase())
		}
		if sum.PlayerShipsLost != 5 {
			t.Errorf("PlayerShipsLost = %d, expected 5 when the AI wins", sum.PlayerShipsLost)
		}
	}
	if sum.PlayerHits > sum.PlayerShots {
		t.Errorf("PlayerHits %d > PlayerShots %d", sum.PlayerHits, sum.PlayerShots)
	}
	if sum.AIHits > sum.AIShots {
		t.Errorf("AIHits %d > AIShots %d", sum.AIHits, sum.AIShots)
	}
	// Every ship cell of the losing side was hit; 17 cells in the fleet.
	if sum.Winner == "player" && sum.PlayerHits != 17 {
		t.Errorf("PlayerHits = %d, expected 17 to sink the fleet", sum.PlayerHits)
	}
}

func TestMatchRepeatShotCountsNothing(t *testing.T) {
	game, err := battle.NewGame(rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	opp := NewRandom()
	opp.Reset(registry.Options{Seed: 3})
	match := NewMatch(game, opp)
	if err := match.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	target := battle.C(0, 0)
	if _, err := match.SubmitPlayerShot(target); err != nil {
		t.Fatalf("SubmitPlayerShot: %v", err)
	}
	shots := match.playerShots

	// If the first shot missed it is now the AI's turn; a repeat attempt
	// is only legal while the player holds the turn.
	if match.Turn() != battle.TurnPlayer {
		return
	}
	res, err := match.SubmitPlayerShot(target)
	if err != nil {
		t.Fatalf("repeat SubmitPlayerShot: %v", err)
	}
	if res.Outcome != battle.OutcomeAlreadyShot {
		t.Fatalf("repeat outcome = %v, expected already shot", res.Outcome)
	}
	if match.playerShots != shots {
		t.Errorf("repeat shot incremented the shot counter: %d -> %d", shots, match.playerShots)
	}
}
