package tui

import (
	"fmt"
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-battleship/internal/ai"
	"github.com/vovakirdan/tui-battleship/internal/battle"
	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/registry"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

// Model is the Bubble Tea model for a battleship match.
type Model struct {
	match  *ai.Match
	screen *core.Screen
	store  *storage.Store
	cfg    core.RuntimeConfig
	appCfg config.BattleshipConfig
	keys   *KeyMapper
	rng    *rand.Rand

	cursor     battle.Coord
	cooldown   int // ticks until the next AI shot
	status     string
	saved      bool // match summary persisted for this game over
	quitting   bool
	tooSmall   bool
}

// NewModel creates a model with freshly placed fleets and a configured
// opponent.
func NewModel(store *storage.Store, cfg core.RuntimeConfig, appCfg config.BattleshipConfig) (Model, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	m := Model{
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		cfg:    cfg,
		appCfg: appCfg,
		keys:   NewKeyMapper(),
		rng:    rng,
		cursor: battle.C(4, 4),
	}
	if err := m.newMatch(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// newMatch builds a fresh game and opponent pair.
func (m *Model) newMatch() error {
	game, err := battle.NewGame(m.rng)
	if err != nil {
		return err
	}
	opp, err := registry.Create(m.appCfg.AI.Opponent)
	if err != nil {
		return err
	}
	opp.Reset(registry.Options{
		Seed:           m.rng.Int63(),
		Depth:          m.appCfg.AI.Depth,
		TopK:           m.appCfg.AI.TopK,
		AdjacencyBonus: m.appCfg.AI.AdjacencyBonus,
		ParityDamping:  m.appCfg.AI.ParityDamping,
		BudgetMs:       m.appCfg.AI.BudgetMs,
	})
	m.match = ai.NewMatch(game, opp)
	m.saved = false
	m.cooldown = 0
	m.status = "Press Enter to start. Press R to reroll your fleet."
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.tooSmall = msg.Width < minScreenW() || msg.Height < boardHeight()+4
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.match.Phase() {
	case battle.PhaseSetup:
		switch action {
		case core.ActionReroll:
			if err := m.match.Game().Reroll(); err == nil {
				m.status = "Fleet rerolled. Press Enter to start."
			}
		case core.ActionConfirm, core.ActionFire:
			if err := m.match.Start(); err == nil {
				m.status = "Your turn: target a cell on the enemy grid and fire."
			}
		}

	case battle.PhaseInProgress:
		switch action {
		case core.ActionUp:
			m.moveCursor(-1, 0)
		case core.ActionDown:
			m.moveCursor(1, 0)
		case core.ActionLeft:
			m.moveCursor(0, -1)
		case core.ActionRight:
			m.moveCursor(0, 1)
		case core.ActionFire, core.ActionConfirm:
			m.firePlayerShot(m.cursor)
		}

	case battle.PhasePlayerWon, battle.PhaseAIWon:
		if action == core.ActionRestart {
			if err := m.newMatch(); err != nil {
				m.status = fmt.Sprintf("restart failed: %v", err)
			}
		}
	}

	return m, nil
}

// handleMouse maps clicks on the enemy grid to shots.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.match.Phase() != battle.PhaseInProgress {
		return m, nil
	}
	if c, ok := m.enemyLayout().cellAt(msg.X, msg.Y); ok {
		m.cursor = c
		m.firePlayerShot(c)
	}
	return m, nil
}

// moveCursor shifts the targeting cursor, clamped to the grid.
func (m *Model) moveCursor(dRow, dCol int) {
	m.cursor = battle.C(
		core.Clamp(m.cursor.Row+dRow, 0, battle.GridSize-1),
		core.Clamp(m.cursor.Col+dCol, 0, battle.GridSize-1),
	)
}

// firePlayerShot submits a player shot and updates the status line.
// Cells already fired upon are refused before reaching the resolver, so a
// repeat never consumes the turn.
func (m *Model) firePlayerShot(c battle.Coord) {
	if m.match.Turn() != battle.TurnPlayer {
		return
	}
	if m.match.Game().EnemyBoard().ShotAt(c) != battle.CellUnknown {
		m.status = fmt.Sprintf("%s was already fired upon. Pick another cell.", c)
		return
	}
	res, err := m.match.SubmitPlayerShot(c)
	if err != nil {
		return
	}

	switch res.Outcome {
	case battle.OutcomeAllSunk:
		m.status = "You win! Press N for a new game."
	case battle.OutcomeHitAndSunk:
		m.status = fmt.Sprintf("You sank the enemy %s! Extra turn.", res.SunkShip.Name)
	case battle.OutcomeHit:
		m.status = "Hit! You get another shot."
	case battle.OutcomeMiss:
		m.status = "Miss. Enemy is thinking..."
		m.cooldown = m.aiCooldown()
	}
}

// handleTick drives the AI side and end-of-game persistence.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.match.Phase() == battle.PhaseInProgress && m.match.Turn() == battle.TurnAI {
		if m.cooldown > 0 {
			m.cooldown--
		} else {
			m.playAIShot()
		}
	}

	if m.match.Phase().Terminal() && !m.saved {
		m.saveMatch()
		m.saved = true
	}

	return m, tickCmd(m.cfg.TickRate)
}

// playAIShot resolves one AI shot and updates the status line.
func (m *Model) playAIShot() {
	res, err := m.match.PlayAITurn()
	if err != nil {
		m.status = fmt.Sprintf("AI error: %v", err)
		return
	}

	switch res.Outcome {
	case battle.OutcomeAllSunk:
		m.status = "The enemy sank your fleet. Press N for a new game."
	case battle.OutcomeHitAndSunk:
		m.status = fmt.Sprintf("Enemy sank your %s at %s and fires again...", res.SunkShip.Name, res.Coord)
		m.cooldown = m.aiCooldown()
	case battle.OutcomeHit:
		m.status = fmt.Sprintf("Enemy hit at %s and fires again...", res.Coord)
		m.cooldown = m.aiCooldown()
	case battle.OutcomeMiss:
		m.status = fmt.Sprintf("Enemy missed at %s. Your turn.", res.Coord)
	}
}

// boardOriginX returns the left edge of the side-by-side boards.
func (m Model) boardOriginX() int {
	return core.Max(0, (m.screen.Width()-(2*gridW+boardGap))/2)
}

// enemyLayout returns the screen region of the enemy grid interior, matching
// where View places it.
func (m Model) enemyLayout() boardLayout {
	x := m.boardOriginX() + gridW + boardGap
	return boardLayout{grid: core.NewRect(x+2, 1+headerRows, battle.GridSize*cellW, battle.GridSize)}
}

// aiCooldown returns the configured delay before an AI shot.
func (m *Model) aiCooldown() int {
	if m.appCfg.AI.MoveCooldownTicks > 0 {
		return m.appCfg.AI.MoveCooldownTicks
	}
	return 1
}

// saveMatch persists the finished match, best effort.
func (m *Model) saveMatch() {
	if m.store == nil {
		return
	}
	sum := m.match.Summary()
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveMatch(storage.MatchRecord{
		Opponent:        sum.OpponentID,
		Winner:          sum.Winner,
		PlayerShots:     sum.PlayerShots,
		PlayerHits:      sum.PlayerHits,
		AIShots:         sum.AIShots,
		AIHits:          sum.AIHits,
		PlayerShipsLost: sum.PlayerShipsLost,
		AIShipsLost:     sum.AIShipsLost,
		DurationSecs:    int(sum.Duration.Seconds()),
	})
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.screen.Clear()

	if m.tooSmall {
		m.screen.DrawTextCentered(m.screen.Height()/2, "Terminal too small for two boards")
		return RenderScreen(m.screen)
	}

	x0 := m.boardOriginX()
	game := m.match.Game()

	drawBoard(m.screen, x0, 1, "Your Fleet", game.PlayerBoard(), true, nil)
	var cursor *battle.Coord
	if game.Phase() == battle.PhaseInProgress && game.Turn() == battle.TurnPlayer {
		c := m.cursor
		cursor = &c
	}
	drawBoard(m.screen, x0+gridW+boardGap, 1, "Enemy Waters", game.EnemyBoard(), false, cursor)

	statusY := 1 + boardHeight() + 1
	m.screen.DrawText(x0, statusY, m.status)
	m.screen.DrawTextColored(x0, statusY+1, m.helpLine(), core.ColorGray)

	if game.Phase().Terminal() {
		banner := "Game Over - You win"
		if game.Phase() == battle.PhaseAIWon {
			banner = "Game Over - AI wins"
		}
		m.screen.DrawTextCentered(statusY+3, banner)
	}

	return RenderScreen(m.screen)
}

// helpLine returns the key hints for the current phase.
func (m Model) helpLine() string {
	switch m.match.Phase() {
	case battle.PhaseSetup:
		return "Enter: start  R: reroll fleet  Q: quit"
	case battle.PhaseInProgress:
		return "Arrows/WASD: aim  Space/Enter: fire  Click: fire  Q: quit"
	default:
		return "N: new game  Q: quit"
	}
}

// Run starts the Bubble Tea program for a local match.
func Run(store *storage.Store, cfg core.RuntimeConfig, appCfg config.BattleshipConfig) error {
	model, err := NewModel(store, cfg, appCfg)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Click-to-fire on the enemy grid
	)

	_, err = p.Run()
	return err
}
