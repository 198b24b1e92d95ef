package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brickrun/internal/registry"
	"github.com/vovakirdan/brickrun/internal/storage"
)

var (
	flagLimit int
	flagStats bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs",
	Long: `Display the best runs for a mode, or for every mode when none is given.

Modes are "breakout" and "runner:<tier>".

Examples:
  brickrun scores
  brickrun scores breakout
  brickrun scores runner:hard --limit 20
  brickrun scores --stats`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

var scoresClearCmd = &cobra.Command{
	Use:   "clear <mode>",
	Short: "Delete the run history and best score of a mode",
	Args:  cobra.ExactArgs(1),
	Run:   runScoresClear,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show per mode")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show per-mode statistics instead of runs")
	scoresCmd.AddCommand(scoresClearCmd)
}

func openStoreOrExit() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func runScores(cmd *cobra.Command, args []string) {
	modes := registry.ScoreModes()
	if len(args) == 1 {
		idx := slices.IndexFunc(modes, func(m registry.ScoreMode) bool { return m.Key == args[0] })
		if idx < 0 {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", args[0])
			os.Exit(1)
		}
		modes = modes[idx : idx+1]
	}

	store := openStoreOrExit()
	defer store.Close()

	if flagStats {
		printStats(store, modes)
		return
	}

	for i, mode := range modes {
		if i > 0 {
			fmt.Println()
		}
		runs, err := store.TopRuns(mode.Key, flagLimit)
		if err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("High Scores - %s\n", mode.Label)
		if len(runs) == 0 {
			fmt.Println("  No runs recorded yet.")
			continue
		}

		fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "Rank", "Score", "Date", "Run")
		fmt.Printf("  %-4s  %-10s  %-16s  %s\n", "----", "-----", "----", "---")
		for i, entry := range runs {
			fmt.Printf("  %-4d  %-10d  %-16s  %s\n",
				i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"), entry.RunID.String()[:8])
		}

		if best, err := store.Best(mode.Key); err == nil {
			fmt.Printf("  Best: %d\n", best)
		}
	}
}

func printStats(store *storage.Store, modes []registry.ScoreMode) {
	stats, err := store.Stats()
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  %-22s  %6s  %8s  %8s  %s\n", "Mode", "Runs", "Best", "Average", "Last played")
	for _, mode := range modes {
		st, ok := stats[mode.Key]
		if !ok {
			fmt.Printf("  %-22s  %6d  %8s  %8s  %s\n", mode.Label, 0, "-", "-", "-")
			continue
		}
		fmt.Printf("  %-22s  %6d  %8d  %8.1f  %s\n",
			mode.Label, st.RunsCount, st.HighScore, st.AvgScore, st.LastPlayed.Format("2006-01-02 15:04"))
	}
}

func runScoresClear(cmd *cobra.Command, args []string) {
	store := openStoreOrExit()
	defer store.Close()

	if err := store.ClearMode(args[0]); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Cleared scores for %s\n", args[0])
}
