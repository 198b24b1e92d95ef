package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickrun/internal/platform/tui"
	"github.com/vovakirdan/brickrun/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right, A/D  - Move the paddle (mouse works too)
  Space/Up         - Launch or release balls, jump
  Enter            - Continue to the next level
  P                - Pause
  R                - Restart
  Ctrl+S           - Save a screenshot
  Esc/Q            - Quit

Runner difficulty tiers: easy, medium, hard, insane.

Examples:
  brickrun play breakout
  brickrun play runner --difficulty hard
  brickrun play breakout --config ./my-breakout.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Runner tier: easy, medium, hard, insane")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'brickrun list' to see available games.")
		os.Exit(1)
	}

	logger, closer := newLogger(true)
	defer closer.Close()

	stores := openStores(logger)
	defer stores.Close()

	cfg := runtimeConfig(logger, stores.keeper)
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty

	if err := tui.Run(game, stores.runs, cfg); err != nil {
		stores.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
