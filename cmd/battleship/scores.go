package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-battleship/internal/platform/tui"
	"github.com/vovakirdan/tui-battleship/internal/registry"
	"github.com/vovakirdan/tui-battleship/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores [opponent]",
	Short: "Show match history and statistics",
	Long: `Display recent matches and per-opponent statistics.

Without arguments, shows the ten most recent matches against any opponent
plus a summary per opponent. With an opponent ID, shows matches against
that opponent only.

Examples:
  battleship scores
  battleship scores minimax
  battleship scores --tui`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse match history interactively")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening match database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var matches []storage.MatchRecord
	if len(args) == 1 {
		opponent := args[0]
		if !registry.Exists(opponent) {
			fmt.Fprintf(os.Stderr, "Error: unknown opponent %q\n", opponent)
			fmt.Fprintln(os.Stderr, "Run 'battleship list' to see available opponents.")
			os.Exit(1)
		}
		matches, err = store.OpponentMatches(opponent, 10)
	} else {
		matches, err = store.RecentMatches(10)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving matches: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent matches")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Run 'battleship play' to start your record!")
		return
	}

	// Print header
	fmt.Printf("  %-6s  %-10s  %-6s  %-5s  %-5s  %s\n", "Result", "Opponent", "Shots", "Acc", "Sunk", "Date")
	fmt.Printf("  %-6s  %-10s  %-6s  %-5s  %-5s  %s\n", "------", "--------", "-----", "---", "----", "----")

	for _, rec := range matches {
		result := "LOSS"
		if rec.Winner == "player" {
			result = "WIN"
		}
		acc := "-"
		if rec.PlayerShots > 0 {
			acc = fmt.Sprintf("%d%%", rec.PlayerHits*100/rec.PlayerShots)
		}
		dateStr := rec.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-6s  %-10s  %-6d  %-5s  %-5d  %s\n",
			result, rec.Opponent, rec.PlayerShots, acc, rec.AIShipsLost, dateStr)
	}

	stats, err := store.AllStats()
	if err != nil || len(stats) == 0 {
		return
	}

	opponents := make([]string, 0, len(stats))
	for id := range stats {
		opponents = append(opponents, id)
	}
	sort.Strings(opponents)

	fmt.Println()
	fmt.Println("Per opponent:")
	for _, id := range opponents {
		s := stats[id]
		fmt.Printf("  %-10s  %d games, %d won, %d lost, %.0f%% accuracy\n",
			id, s.Games, s.PlayerWins, s.AIWins, s.Accuracy*100)
	}
}
