package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/brickrun/internal/core"
	"github.com/vovakirdan/brickrun/internal/registry"
	"github.com/vovakirdan/brickrun/internal/sim"
)

var (
	flagTicks         int
	flagSimDifficulty string
	flagAutopilot     bool
	flagSimConfig     string
	flagFormat        string
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless and print a summary",
	Long: `Run a game without a terminal for a fixed number of ticks.

Without --autopilot the game is started and then left alone. With it, a
simple pilot tracks the ball or jumps obstacles and restarts after each
loss. Best scores are kept in memory only.

Runs with the same --seed produce the same summary, including the world
hash.

Examples:
  brickrun sim breakout --ticks 10000 --autopilot
  brickrun sim runner --difficulty insane --seed 42 --autopilot`,
	Args: cobra.ExactArgs(1),
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Runner tier: easy, medium, hard, insane")
	simCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Steer the game and restart after losses")
	simCmd.Flags().StringVar(&flagSimConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or text")
}

func runSim(_ *cobra.Command, args []string) {
	game, err := registry.Create(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", args[0])
		os.Exit(1)
	}

	logger, closer := newLogger(false)
	defer closer.Close()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := core.RuntimeConfig{
		TickRate:   flagFPS,
		Seed:       seed,
		ConfigPath: flagSimConfig,
		Difficulty: flagSimDifficulty,
		Logger:     logger,
	}
	summary := sim.Run(game, cfg, sim.Options{Ticks: flagTicks, Autopilot: flagAutopilot})

	switch flagFormat {
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(summary); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		enc.Close()
	case "text":
		fmt.Printf("%s (%s) seed %d: %s after %d ticks, score %d, best %d, %d finished, hash %s\n",
			summary.Game, summary.Mode, summary.Seed, summary.Phase, summary.Ticks,
			summary.Score, summary.Best, len(summary.Sessions), summary.Hash)
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown format %q\n", flagFormat)
		os.Exit(1)
	}
}
