package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickrun/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game and its difficulty tiers.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	for _, g := range games {
		line := fmt.Sprintf("  %-*s  %s", maxIDLen, g.ID, g.Title)
		if len(g.Tiers) > 0 {
			line += fmt.Sprintf(" (difficulty: %s)", strings.Join(g.Tiers, ", "))
		}
		fmt.Println(line)
	}

	fmt.Println()
	fmt.Println("Run 'brickrun play <id>' to play a game.")
}
