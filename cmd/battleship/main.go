// battleship is a TUI battleship game played against an AI opponent.
//
// Usage:
//
//	battleship play              - Start a match in the terminal
//	battleship list              - List available AI opponents
//	battleship serve             - Start SSH server for remote play
//	battleship scores            - Show match history and statistics
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible fleets and AI play
//	--db <path>     - Set database path (default: ~/.battleship/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import opponents to register them
	_ "github.com/vovakirdan/tui-battleship/internal/ai"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "battleship",
	Short: "TUI Battleship - Sink the AI fleet from your terminal",
	Long: `Battleship is a terminal game against a computer admiral. Fleets are
placed at random, hits earn an extra shot, and the hardest opponent runs
an adversarial search over where your ships can still hide.

Available commands:
  list     - Show all available AI opponents
  play     - Start a match
  serve    - Start SSH server for remote play
  scores   - View match history

Examples:
  battleship play
  battleship play --difficulty hard
  battleship play --ai hunter --seed 42
  battleship serve --ssh :2222
  battleship scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.battleship/scores.db", "Path to match database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
