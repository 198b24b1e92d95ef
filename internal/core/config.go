package core

import "github.com/charmbracelet/log"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay

	ConfigPath string      // Optional custom YAML config for the game
	Difficulty string      // Runner tier name; ignored by breakout
	Scores     ScoreKeeper // Best-score keeper; nil means in-memory only

	// Rand overrides the generator seeded from Seed. Restarts keep drawing
	// from the same source so each session gets a fresh layout.
	Rand   Rand
	Logger *log.Logger // nil discards
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// ScoreKeeper reads and raises best scores. Implementations never fail;
// storage faults degrade to in-memory values.
type ScoreKeeper interface {
	Best(key string) int
	// Record raises the best score for key if score exceeds it and reports
	// whether it did.
	Record(key string, score int) bool
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Current score
	Best     int   // Best score for the current mode
	Phase    Phase // Lifecycle phase
	GameOver bool  // Whether the session has ended
	Paused   bool  // Whether the game is paused
}

// EventKind classifies notifications emitted by a tick.
type EventKind int

const (
	EventNone       EventKind = iota
	EventWonLevel             // Level cleared; Next carries the following level
	EventLost                 // Session over; Score is final
	EventPowerup              // A powerup was collected; Detail names it
	EventShieldUsed           // A shield absorbed a loss
	EventNewBest              // Best score raised; Score is the new best
)

// String returns the wire name of the event kind.
func (k EventKind) String() string {
	switch k {
	case EventWonLevel:
		return "won-level"
	case EventLost:
		return "lost"
	case EventPowerup:
		return "powerup"
	case EventShieldUsed:
		return "shield-used"
	case EventNewBest:
		return "new-best"
	default:
		return "none"
	}
}

// LevelParams describes the level a transition leads to.
type LevelParams struct {
	Level       int
	Rows        int
	SpeedFactor float64
}

// Event is a notification produced during a tick.
type Event struct {
	Kind   EventKind
	Score  int
	Detail string
	Next   *LevelParams
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether the result contains an event of kind k.
func (r StepResult) Has(k EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == k {
			return true
		}
	}
	return false
}
