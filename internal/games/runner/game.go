// Package runner implements the endless runner: a ball jumping over
// obstacles that scroll along a sloped ground, with pickups granting a
// shield, slow motion or double points.
package runner

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickrun/internal/config"
	"github.com/vovakirdan/brickrun/internal/core"
	"github.com/vovakirdan/brickrun/internal/effects"
	"github.com/vovakirdan/brickrun/internal/highscore"
	"github.com/vovakirdan/brickrun/internal/logging"
	"github.com/vovakirdan/brickrun/internal/registry"
)

// ID is the registry ID of the game.
const ID = "runner"

// BestKey returns the best-score key for a tier.
func BestKey(tier string) string {
	return ID + ":" + strings.ToLower(tier)
}

// Game implements the endless runner simulation.
type Game struct {
	cfg      config.RunnerConfig
	fixedCfg bool

	runtime core.RuntimeConfig
	rng     core.Rand
	scores  core.ScoreKeeper
	logger  *log.Logger
	tier    config.RunnerTier
	heights *config.Progression
	ground  Ground

	life      core.Lifecycle
	player    Runner
	obstacles []*Obstacle
	pickups   []*Pickup
	particles []*Particle
	spawner   *Spawner
	effects   *effects.Manager[PowerupKind]

	score          int
	best           int
	scoreTimer     int
	pointsPerStep  int
	gameSpeed      float64
	speedIncrement float64
	speedScale     float64

	tick          uint64
	announcedBest bool
	events        []core.Event
}

var (
	_ registry.Game   = (*Game)(nil)
	_ core.Controls   = (*Game)(nil)
	_ registry.Tiered = (*Game)(nil)
)

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.RunnerConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ball Runner"
}

// Reset prepares a fresh session in the idle phase. An unknown difficulty
// falls back to the default tier.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.logger = runtime.Logger
	if g.logger == nil {
		g.logger = logging.Discard()
	}

	if !g.fixedCfg {
		cfg, err := config.LoadRunner(runtime.ConfigPath)
		if err != nil {
			g.logger.Warn("using default runner config", "path", runtime.ConfigPath, "error", err)
		}
		g.cfg = cfg
	}

	tier, err := g.cfg.Tier(runtime.Difficulty)
	if err != nil {
		g.logger.Warn("unknown difficulty", "difficulty", runtime.Difficulty, "using", config.DefaultTier)
		tier, _ = g.cfg.Tier(config.DefaultTier)
		if tier.Name == "" {
			tier = g.cfg.Tiers[0]
		}
	}
	g.tier = tier

	g.rng = runtime.Rand
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(runtime.Seed))
	}

	g.scores = runtime.Scores
	if g.scores == nil {
		g.scores = highscore.NewKeeper(nil, g.logger)
	}

	g.heights = config.NewProgression(g.cfg.Heights)
	g.ground = NewGround(g.cfg.Field)
	g.effects = effects.New[PowerupKind]()
	g.newSession()
	g.life.Reset()
}

// ScoreKey returns the key best scores and run history are filed under.
func (g *Game) ScoreKey() string {
	return BestKey(g.tier.Name)
}

// FieldSize returns the world size in world units.
func (g *Game) FieldSize() (w, h float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Tiers lists the selectable difficulty tiers.
func (g *Game) Tiers() []string {
	if g.fixedCfg {
		return g.cfg.TierNames()
	}
	return config.DefaultRunnerConfig().TierNames()
}

// ScoreKeyFor returns the score key of tier.
func (g *Game) ScoreKeyFor(tier string) string {
	return BestKey(tier)
}

// Tier returns the active difficulty tier.
func (g *Game) Tier() config.RunnerTier {
	return g.tier
}

// newSession clears every entity, effect and counter.
func (g *Game) newSession() {
	g.effects.ClearAll()

	g.player = Runner{X: g.cfg.Player.X, R: g.cfg.Player.Radius}
	g.player.Y = g.ground.Y(g.player.X) - g.player.R

	g.obstacles = nil
	g.pickups = nil
	g.particles = nil
	g.spawner = NewSpawner(g.rng, g.tier, g.cfg.Scoring.SpawnJitter)

	g.score = 0
	g.best = g.scores.Best(BestKey(g.tier.Name))
	g.announcedBest = false
	g.scoreTimer = 0
	g.pointsPerStep = 1
	g.gameSpeed = g.cfg.BaseSpeed
	g.speedIncrement = 0
	g.speedScale = 1
	g.tick = 0
}

// Step dispatches one input frame and advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	core.Dispatch(g, in)
	g.Tick()

	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// OnMoveTo is ignored; the runner only jumps.
func (g *Game) OnMoveTo(float64) {}

// OnHoldLeft is ignored.
func (g *Game) OnHoldLeft(bool) {}

// OnHoldRight is ignored.
func (g *Game) OnHoldRight(bool) {}

// OnJumpOrRelease jumps while running. It starts an idle game without
// jumping and restarts a lost one.
func (g *Game) OnJumpOrRelease() {
	switch g.life.Phase() {
	case core.PhaseIdle:
		g.life.To(core.PhaseRunning)
	case core.PhaseRunning:
		g.jump()
	case core.PhaseLost:
		g.OnRestart()
	}
}

// OnPauseToggle pauses or resumes a running game.
func (g *Game) OnPauseToggle() {
	g.life.TogglePause()
}

// OnRestart discards the session and starts a new one immediately.
func (g *Game) OnRestart() {
	g.newSession()
	g.life.Restart()
}

// jump launches the runner unless it is already airborne.
func (g *Game) jump() {
	if g.player.IsJumping {
		return
	}
	g.player.VY = g.cfg.Player.JumpPower
	g.player.IsJumping = true
	g.dust()
}

// Tick advances the world by one frame. Only the running phase moves.
func (g *Game) Tick() {
	g.events = g.events[:0]
	if !g.life.Is(core.PhaseRunning) {
		return
	}
	g.tick++

	g.updatePlayer()

	if g.spawner.Tick(g.rng) {
		g.spawnObstacle()
	}

	g.scoreTimer++
	if g.scoreTimer >= g.cfg.Scoring.FramesPerPoint {
		g.scoreTimer = 0
		g.addScore(g.pointsPerStep)
	}

	speed := g.speed()
	g.moveObstacles(speed)
	if idx := g.hitObstacle(); idx >= 0 {
		if !g.effects.Active(PowerupShield) {
			g.lose()
			return
		}
		g.consumeShield(idx)
	}
	g.updatePickups(speed)
	g.updateParticles()
	g.effects.Tick()

	g.speedIncrement += g.tier.SpeedRamp
	g.gameSpeed = g.cfg.BaseSpeed + g.speedIncrement
}

// updatePlayer applies gravity and lands the runner on the slope.
func (g *Game) updatePlayer() {
	p := &g.player
	p.VY += g.cfg.Player.Gravity
	p.Y += p.VY

	floor := g.ground.Y(p.X) - p.R
	if p.Y >= floor {
		p.Y = floor
		p.VY = 0
		p.IsJumping = false
	}
}

func (g *Game) lose() {
	g.life.To(core.PhaseLost)
	g.scores.Record(BestKey(g.tier.Name), g.score)
	g.emit(core.Event{Kind: core.EventLost, Score: g.score})
	g.logger.Debug("run lost", "tier", g.tier.Name, "score", g.score, "tick", g.tick)
}

// addScore raises the score and the tier's best score with it.
func (g *Game) addScore(points int) {
	core.Invariant(points >= 0, "score delta %d is negative", points)
	g.score += points

	if g.scores.Record(BestKey(g.tier.Name), g.score) {
		g.best = g.score
		if !g.announcedBest {
			g.announcedBest = true
			g.emit(core.Event{Kind: core.EventNewBest, Score: g.score})
		}
	}
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Best:     g.best,
		Phase:    g.life.Phase(),
		GameOver: g.life.Terminal(),
		Paused:   g.life.Is(core.PhasePaused),
	}
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
