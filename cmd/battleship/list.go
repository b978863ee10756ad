package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-battleship/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available AI opponents",
	Long:  `Shows a list of all AI opponents registered in the game.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	opponents := registry.List()

	if len(opponents) == 0 {
		fmt.Println("No opponents available.")
		return
	}

	fmt.Println("Available opponents:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, o := range opponents {
		if len(o.ID) > maxIDLen {
			maxIDLen = len(o.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")

	// Print opponents
	for _, o := range opponents {
		fmt.Printf("  %-*s  %s\n", maxIDLen, o.ID, o.Name)
	}

	fmt.Println()
	fmt.Println("Run 'battleship play --ai <id>' to face an opponent.")
}
