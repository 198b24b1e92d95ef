// Package sim runs games headless for a fixed number of ticks, optionally
// steered by a simple autopilot, and summarizes what happened.
package sim

import (
	"fmt"

	"github.com/vovakirdan/brickrun/internal/core"
	"github.com/vovakirdan/brickrun/internal/games/breakout"
	"github.com/vovakirdan/brickrun/internal/games/runner"
	"github.com/vovakirdan/brickrun/internal/logging"
	"github.com/vovakirdan/brickrun/internal/registry"
)

// Options controls a headless run.
type Options struct {
	Ticks     int
	Autopilot bool // steer the game and restart after each loss
}

// Summary describes a finished headless run.
type Summary struct {
	Game          string         `yaml:"game"`
	Mode          string         `yaml:"mode"`
	Seed          int64          `yaml:"seed"`
	Ticks         int            `yaml:"ticks"`
	Autopilot     bool           `yaml:"autopilot"`
	Phase         string         `yaml:"phase"`
	Score         int            `yaml:"score"`
	Best          int            `yaml:"best"`
	Sessions      []int          `yaml:"finished_sessions,flow"`
	LevelsCleared int            `yaml:"levels_cleared"`
	Events        map[string]int `yaml:"events"`
	Hash          string         `yaml:"hash"`
}

// Run resets game with cfg and steps it opts.Ticks times.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) Summary {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	game.Reset(cfg)
	p := newPilot(game, opts.Autopilot)

	s := Summary{
		Game:      game.ID(),
		Mode:      game.ScoreKey(),
		Seed:      cfg.Seed,
		Ticks:     opts.Ticks,
		Autopilot: opts.Autopilot,
		Events:    make(map[string]int),
	}

	frame := core.NewInputFrame()
	state := game.State()
	for tick := range opts.Ticks {
		p.input(tick, &frame)
		res := game.Step(frame)
		frame.Clear()
		state = res.State

		for _, e := range res.Events {
			s.Events[e.Kind.String()]++
			switch e.Kind {
			case core.EventLost:
				s.Sessions = append(s.Sessions, e.Score)
				logger.Debug("session finished", "tick", tick, "score", e.Score)
			case core.EventWonLevel:
				s.LevelsCleared++
			}
		}
	}

	s.Phase = state.Phase.String()
	s.Score = state.Score
	s.Best = state.Best
	s.Hash = fmt.Sprintf("%016x", snapshotHash(game))

	logger.Info("simulation finished", "mode", s.Mode, "ticks", s.Ticks, "score", s.Score, "hash", s.Hash)
	return s
}

func snapshotHash(game registry.Game) uint64 {
	switch g := game.(type) {
	case *breakout.Game:
		snap := g.Snapshot()
		return snap.Hash()
	case *runner.Game:
		snap := g.Snapshot()
		return snap.Hash()
	}
	return 0
}
