package ai

import (
	"time"

	"github.com/vovakirdan/tui-battleship/internal/battle"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

// Match wires a Game to an Opponent: it routes shots through the turn
// controller and feeds outcomes back to the opponent's knowledge model.
// The opponent never touches either board directly.
type Match struct {
	game *battle.Game
	opp  registry.Opponent

	playerShots     int
	playerHits      int
	aiShots         int
	aiHits          int
	playerShipsLost int
	aiShipsLost     int
	startedAt       time.Time
}

// Summary is what the match exposes to persistence: results only, never
// board internals.
type Summary struct {
	OpponentID      string
	Winner          string // "player" or "ai"
	PlayerShots     int
	PlayerHits      int
	AIShots         int
	AIHits          int
	PlayerShipsLost int
	AIShipsLost     int
	Duration        time.Duration
}

// NewMatch pairs a game with an opponent.
func NewMatch(game *battle.Game, opp registry.Opponent) *Match {
	return &Match{game: game, opp: opp}
}

// Game returns the underlying game for presentation reads.
func (m *Match) Game() *battle.Game {
	return m.game
}

// Opponent returns the AI side.
func (m *Match) Opponent() registry.Opponent {
	return m.opp
}

// Start begins the match.
func (m *Match) Start() error {
	if err := m.game.Start(); err != nil {
		return err
	}
	m.startedAt = time.Now()
	return nil
}

// Phase returns the current game phase.
func (m *Match) Phase() battle.Phase {
	return m.game.Phase()
}

// Turn returns the side to act next.
func (m *Match) Turn() battle.Turn {
	return m.game.Turn()
}

// SubmitPlayerShot resolves a human shot and informs the opponent of the
// incoming fire. AlreadyShot results count toward nothing.
func (m *Match) SubmitPlayerShot(c battle.Coord) (battle.ShotResult, error) {
	res, err := m.game.SubmitPlayerShot(c)
	if err != nil {
		return res, err
	}
	if res.Outcome == battle.OutcomeAlreadyShot {
		return res, nil
	}
	m.playerShots++
	if res.Outcome.IsHit() {
		m.playerHits++
	}
	if res.SunkShip != nil {
		m.aiShipsLost++
	}
	m.opp.ObserveIncoming(res)
	return res, nil
}

// PlayAITurn asks the opponent for one shot and resolves it. The caller
// keeps invoking it while the turn stays with the AI (extra turn on hit).
func (m *Match) PlayAITurn() (battle.ShotResult, error) {
	target, err := m.opp.SelectShot()
	if err != nil {
		return battle.ShotResult{}, err
	}
	res, err := m.game.SubmitAIShot(target)
	if err != nil {
		return res, err
	}
	m.opp.Observe(res)
	if res.Outcome != battle.OutcomeAlreadyShot {
		m.aiShots++
		if res.Outcome.IsHit() {
			m.aiHits++
		}
		if res.SunkShip != nil {
			m.playerShipsLost++
		}
	}
	return res, nil
}

// Summary builds the persistence record for a finished match. Valid only
// once the phase is terminal.
func (m *Match) Summary() Summary {
	winner := "player"
	if m.game.Phase() == battle.PhaseAIWon {
		winner = "ai"
	}
	duration := time.Duration(0)
	if !m.startedAt.IsZero() {
		duration = time.Since(m.startedAt)
	}
	return Summary{
		OpponentID:      m.opp.ID(),
		Winner:          winner,
		PlayerShots:     m.playerShots,
		PlayerHits:      m.playerHits,
		AIShots:         m.aiShots,
		AIHits:          m.aiHits,
		PlayerShipsLost: m.playerShipsLost,
		AIShipsLost:     m.aiShipsLost,
		Duration:        duration,
	}
}
