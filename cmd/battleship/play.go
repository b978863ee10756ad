package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/registry"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagOpponent   string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a battleship match",
	Long: `Start a match against an AI opponent.

Controls:
  Arrows/WASD  - Move the targeting cursor
  Space/Enter  - Fire at the selected cell (or click with the mouse)
  R            - Reroll your fleet during setup
  N            - New game (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Random opponent, fires blindly
  normal - Heatmap hunter, tracks your hits
  hard   - Alpha-beta admiral, plans shots ahead

Examples:
  battleship play
  battleship play --difficulty hard
  battleship play --ai hunter
  battleship play --config ./my-battleship.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagOpponent, "ai", "", "Opponent ID (overrides config and difficulty)")
}

func runPlay(cmd *cobra.Command, args []string) {
	appCfg, err := config.LoadBattleship(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplyPreset(&appCfg, config.DifficultyPreset(flagDifficulty))
	}
	if flagOpponent != "" {
		appCfg.AI.Opponent = flagOpponent
	}

	if !registry.Exists(appCfg.AI.Opponent) {
		fmt.Fprintf(os.Stderr, "Error: unknown opponent %q\n", appCfg.AI.Opponent)
		fmt.Fprintln(os.Stderr, "Run 'battleship list' to see available opponents.")
		os.Exit(1)
	}

	// Get terminal size for the initial layout
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open match storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(store, cfg, appCfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
