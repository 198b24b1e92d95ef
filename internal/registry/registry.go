// Package registry maps game IDs to factories. Games register themselves in
// init() functions so the platform can list and create them without
// importing each one by name.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/brickrun/internal/core"
)

// Game is the surface every simulation exposes to drivers. Games hold pure
// logic: no terminal, clock or storage dependencies.
type Game interface {
	core.Controls

	// ID returns a unique identifier ("breakout", "runner") used on the
	// command line.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// ScoreKey returns the key best scores and run history are filed under.
	// It may depend on the settings passed to Reset.
	ScoreKey() string

	// Reset discards the world and prepares a new idle session from cfg.
	Reset(cfg core.RuntimeConfig)

	// Step dispatches one input frame and advances the simulation one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current world into dst.
	Render(dst *core.Screen)

	// State returns score, best and lifecycle phase.
	State() core.GameState
}

// Tiered is implemented by games that run at selectable difficulty tiers.
// Each tier keeps its own best score and run history.
type Tiered interface {
	Tiers() []string
	ScoreKeyFor(tier string) string
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
	Tiers []string // nil for games without tiers
}

// ScoreMode names one stream of scores kept for a game.
type ScoreMode struct {
	Key   string // storage key
	Label string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a game factory. It panics if id is already taken.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if t, ok := g.(Tiered); ok {
		info.Tiers = t.Tiers()
	}
	factories[id] = f
	infos[id] = info
}

// List returns every registered game sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for _, info := range infos {
		result = append(result, info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// ScoreModes lists the score streams of every registered game: one per game,
// or one per tier for tiered games.
func ScoreModes() []ScoreMode {
	var modes []ScoreMode
	for _, info := range List() {
		if len(info.Tiers) == 0 {
			modes = append(modes, ScoreMode{Key: info.ID, Label: info.Title})
			continue
		}
		g, err := Create(info.ID)
		if err != nil {
			continue
		}
		t := g.(Tiered)
		for _, tier := range info.Tiers {
			modes = append(modes, ScoreMode{
				Key:   t.ScoreKeyFor(tier),
				Label: fmt.Sprintf("%s (%s)", info.Title, tier),
			})
		}
	}
	return modes
}
