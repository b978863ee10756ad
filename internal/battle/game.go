package battle

import "math/rand"

// Turn identifies which side acts next.
type Turn uint8

const (
	TurnPlayer Turn = iota
	TurnAI
)

// String returns a human-readable name for the turn.
func (t Turn) String() string {
	if t == TurnAI {
		return "AI"
	}
	return "Player"
}

// Phase is the game lifecycle state.
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseInProgress
	PhasePlayerWon
	PhaseAIWon
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseInProgress:
		return "in progress"
	case PhasePlayerWon:
		return "player won"
	case PhaseAIWon:
		return "ai won"
	default:
		return "invalid"
	}
}

// Terminal reports whether the phase accepts no further shots.
func (p Phase) Terminal() bool {
	return p == PhasePlayerWon || p == PhaseAIWon
}

// Game is the turn state machine. It owns both boards and all mutation
// goes through its methods; the side granted the turn keeps it for as long
// as it keeps hitting.
type Game struct {
	player *Board // the human's fleet, fired upon by the AI
	enemy  *Board // the AI's fleet, fired upon by the human
	turn   Turn
	phase  Phase
	rng    *rand.Rand
}

// NewGame creates a game in the Setup phase with both fleets placed
// randomly using the injected rng.
func NewGame(rng *rand.Rand) (*Game, error) {
	g := &Game{rng: rng}
	if err := g.Reroll(); err != nil {
		return nil, err
	}
	return g, nil
}

// NewGameWithBoards creates a game from pre-built boards, for manual
// placement. Both boards are validated against the fleet invariant.
func NewGameWithBoards(player, enemy *Board) (*Game, error) {
	if err := ValidateFleet(player); err != nil {
		return nil, err
	}
	if err := ValidateFleet(enemy); err != nil {
		return nil, err
	}
	return &Game{player: player, enemy: enemy}, nil
}

// Reroll re-places both fleets. Only valid during Setup.
func (g *Game) Reroll() error {
	if g.phase != PhaseSetup {
		return ErrNotInSetup
	}
	player, err := PlaceFleet(g.rng)
	if err != nil {
		return err
	}
	enemy, err := PlaceFleet(g.rng)
	if err != nil {
		return err
	}
	g.player, g.enemy = player, enemy
	return nil
}

// Start begins the match. The player moves first.
func (g *Game) Start() error {
	if g.phase != PhaseSetup {
		return ErrNotInSetup
	}
	g.phase = PhaseInProgress
	g.turn = TurnPlayer
	return nil
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Turn returns the side that acts next. Meaningless once the phase is
// terminal.
func (g *Game) Turn() Turn {
	return g.turn
}

// PlayerBoard returns the human's board (own fleet, visible to its owner).
func (g *Game) PlayerBoard() *Board {
	return g.player
}

// EnemyBoard returns the AI's board. Presentation must only read shot
// state from it; ship positions stay hidden until hit.
func (g *Game) EnemyBoard() *Board {
	return g.enemy
}

// SubmitPlayerShot resolves a player shot against the AI board and
// advances the state machine. A hit keeps the turn, a miss yields it, and
// sinking the last ship ends the game. AlreadyShot consumes nothing.
func (g *Game) SubmitPlayerShot(c Coord) (ShotResult, error) {
	return g.submit(TurnPlayer, c)
}

// SubmitAIShot resolves an AI shot against the player board, with the same
// turn rules as SubmitPlayerShot.
func (g *Game) SubmitAIShot(c Coord) (ShotResult, error) {
	return g.submit(TurnAI, c)
}

func (g *Game) submit(side Turn, c Coord) (ShotResult, error) {
	if g.phase.Terminal() {
		return ShotResult{}, ErrGameOver
	}
	if g.phase != PhaseInProgress {
		return ShotResult{}, ErrNotStarted
	}
	if g.turn != side {
		return ShotResult{}, ErrWrongTurn
	}

	defender := g.enemy
	if side == TurnAI {
		defender = g.player
	}
	res, err := defender.Fire(c)
	if err != nil {
		return ShotResult{}, err
	}

	switch res.Outcome {
	case OutcomeAllSunk:
		if side == TurnPlayer {
			g.phase = PhasePlayerWon
		} else {
			g.phase = PhaseAIWon
		}
	case OutcomeMiss:
		g.turn = otherSide(side)
	case OutcomeAlreadyShot, OutcomeHit, OutcomeHitAndSunk:
		// Hits grant an extra turn; a repeated shot changes nothing.
	}
	return res, nil
}

func otherSide(t Turn) Turn {
	if t == TurnPlayer {
		return TurnAI
	}
	return TurnPlayer
}
