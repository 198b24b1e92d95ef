// brickrun plays a breakout game and an endless ball runner in the terminal.
//
// Usage:
//
//	brickrun                   - Start the game picker menu
//	brickrun list              - List available games
//	brickrun play <game>       - Play a game
//	brickrun scores [mode]     - Show the best runs
//	brickrun serve             - Start SSH server for remote play
//	brickrun sim <game>        - Run a game headless and print a summary
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.brickrun/scores.db)
//	--log-file <path>    - Write logs to a rotating file
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/brickrun/internal/core"
	_ "github.com/vovakirdan/brickrun/internal/games/breakout"
	_ "github.com/vovakirdan/brickrun/internal/games/runner"
	"github.com/vovakirdan/brickrun/internal/highscore"
	"github.com/vovakirdan/brickrun/internal/logging"
	"github.com/vovakirdan/brickrun/internal/platform/tui"
	"github.com/vovakirdan/brickrun/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "brickrun",
	Short: "Breakout and an endless ball runner in your terminal",
	Long: `brickrun is a terminal arcade with two games: a breakout with powerups
and procedurally generated levels, and an endless ball runner with four
difficulty tiers.

Available commands:
  menu     - Interactive game picker (default)
  list     - Show all available games
  play     - Play a specific game directly
  scores   - View the best runs
  serve    - Start SSH server for remote play
  sim      - Run a game headless

Examples:
  brickrun
  brickrun play breakout
  brickrun play runner --difficulty hard
  brickrun serve --ssh :2222
  brickrun sim runner --ticks 5000 --autopilot --seed 42`,
	Run: runMenu,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.brickrun/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (rotated)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
}

// newLogger builds the process logger. Interactive commands discard output
// unless --log-file is set so log lines do not tear the alternate screen.
func newLogger(interactive bool) (*log.Logger, io.Closer) {
	logger, closer, err := logging.New(logging.Options{
		Prefix:  "brickrun",
		Level:   flagLogLevel,
		File:    flagLogFile,
		Discard: interactive,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closer
}

// scoreStores opens the scores database. When it cannot be opened the games
// keep best scores in memory and runs are not recorded.
type scoreStores struct {
	db     *storage.Store
	runs   tui.RunStore
	keeper *highscore.Keeper
}

func openStores(logger *log.Logger) scoreStores {
	db, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores kept in memory", "path", flagDBPath, "error", err)
		return scoreStores{keeper: highscore.NewKeeper(nil, logger)}
	}
	return scoreStores{
		db:     db,
		runs:   db,
		keeper: highscore.NewKeeper(db, logger),
	}
}

func (s scoreStores) Close() {
	if s.db != nil {
		s.db.Close()
	}
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig(logger *log.Logger, scores core.ScoreKeeper) core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Scores:   scores,
		Logger:   logger,
	}
}
