package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tennis/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available modes",
	Long:  `Shows every registered game mode.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		if len(m.ID) > maxIDLen {
			maxIDLen = len(m.ID)
		}
	}

	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Players", "Description")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "-------", "-----------")

	for _, m := range modes {
		players := fmt.Sprint(m.Players)
		if m.Players == 0 {
			players = "demo"
		}
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, m.ID, players, m.Description)
	}

	fmt.Println()
	fmt.Println("Run 'tennis play <id>' to play a mode.")
}
