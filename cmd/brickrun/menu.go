package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickrun/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the game picker menu",
	Long: `Start in interactive menu mode.

After a game you return to the menu to play again.

Controls:
  Up/Down/j/k    - Navigate menu
  Left/Right     - Change runner difficulty
  Enter/Space    - Select game
  Tab            - High scores
  Q              - Quit

Examples:
  brickrun menu
  brickrun menu --fps 30
  brickrun menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closer := newLogger(true)
	defer closer.Close()

	stores := openStores(logger)
	defer stores.Close()

	cfg := runtimeConfig(logger, stores.keeper)
	if err := tui.RunSession(stores.runs, cfg); err != nil {
		stores.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
