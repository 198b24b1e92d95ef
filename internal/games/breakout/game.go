package breakout

import (
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/brickrun/internal/config"
	"github.com/vovakirdan/brickrun/internal/core"
	"github.com/vovakirdan/brickrun/internal/effects"
	"github.com/vovakirdan/brickrun/internal/highscore"
	"github.com/vovakirdan/brickrun/internal/logging"
	"github.com/vovakirdan/brickrun/internal/physics"
	"github.com/vovakirdan/brickrun/internal/registry"
)

// ID is the registry ID and best-score key of the game.
const ID = "breakout"

// Game implements the brick-breaker simulation.
type Game struct {
	cfg      config.BreakoutConfig
	fixedCfg bool // cfg was injected and must survive Reset

	runtime core.RuntimeConfig
	rng     core.Rand
	scores  core.ScoreKeeper
	logger  *log.Logger

	life    core.Lifecycle
	paddle  Paddle
	balls   []*Ball
	grid    *Grid
	pickups []*Pickup
	effects *effects.Manager[PowerupKind]

	score       int
	best        int
	lives       int
	shields     int
	level       int
	rows        int
	speedFactor float64
	pending     *core.LevelParams

	holdLeft, holdRight bool
	ballSeq             int
	tick                uint64
	announcedBest       bool
	events              []core.Event
}

var (
	_ registry.Game  = (*Game)(nil)
	_ core.Controls  = (*Game)(nil)
	_ core.Continuer = (*Game)(nil)
)

// New creates a game that loads its configuration on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always uses cfg.
func NewWithConfig(cfg config.BreakoutConfig) *Game {
	return &Game{cfg: cfg, fixedCfg: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Breakout"
}

// ScoreKey returns the key best scores and run history are filed under.
func (g *Game) ScoreKey() string {
	return ID
}

// FieldSize returns the world size in world units.
func (g *Game) FieldSize() (w, h float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Reset prepares a fresh session in the idle phase.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.logger = runtime.Logger
	if g.logger == nil {
		g.logger = logging.Discard()
	}

	if !g.fixedCfg {
		cfg, err := config.LoadBreakout(runtime.ConfigPath)
		if err != nil {
			g.logger.Warn("using default breakout config", "path", runtime.ConfigPath, "error", err)
		}
		g.cfg = cfg
	}

	g.rng = runtime.Rand
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(runtime.Seed))
	}

	g.scores = runtime.Scores
	if g.scores == nil {
		g.scores = highscore.NewKeeper(nil, g.logger)
	}

	g.effects = effects.New[PowerupKind]()
	g.newSession()
	g.life.Reset()
}

// newSession rebuilds the world for level 1. Effects are rolled back before
// anything else so their restores act on the old world.
func (g *Game) newSession() {
	g.effects.ClearAll()
	g.shields = 0

	g.score = 0
	g.best = g.scores.Best(ID)
	g.announcedBest = false
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.rows = g.cfg.Bricks.StartRows
	g.speedFactor = 1
	g.pending = nil
	g.pickups = nil
	g.balls = nil
	g.ballSeq = 0
	g.tick = 0
	g.holdLeft, g.holdRight = false, false

	g.paddle = Paddle{
		W:     g.cfg.Paddle.Width,
		H:     g.cfg.Paddle.Height,
		Y:     g.cfg.Field.Height - g.cfg.Paddle.BottomOffset,
		Speed: g.cfg.Paddle.Speed,
	}
	g.buildLevel()
	g.resetBallAndPaddle()
}

// buildLevel generates the grid for the current level and row count.
func (g *Game) buildLevel() {
	g.grid = GenerateLevel(g.rng, g.cfg, g.level, g.rows)
	AssignPowerups(g.rng, g.grid, core.RandInt(g.rng, g.cfg.Gameplay.MinPowerBricks, g.cfg.Gameplay.MaxPowerBricks))
}

// resetBallAndPaddle recenters the paddle and serves one ball upward at the
// current level's speed.
func (g *Game) resetBallAndPaddle() {
	g.paddle.X = (g.cfg.Field.Width - g.paddle.W) / 2

	dir := -1.0
	if g.rng.Float64() > 0.5 {
		dir = 1
	}
	speed := g.cfg.Ball.Speed * g.speedFactor
	g.balls = []*Ball{{
		Circle: physics.Circle{
			X:  g.cfg.Field.Width / 2,
			Y:  g.cfg.Field.Height - g.cfg.Ball.ResetOffset,
			R:  g.cfg.Ball.Radius,
			DX: dir * speed,
			DY: -speed,
		},
		ID: g.nextBallID(),
	}}
}

func (g *Game) nextBallID() int {
	g.ballSeq++
	return g.ballSeq
}

// Step dispatches one input frame and advances the simulation one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	core.Dispatch(g, in)
	g.Tick()
	return g.result()
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// OnMoveTo centers the paddle on x.
func (g *Game) OnMoveTo(x float64) {
	if !g.life.Is(core.PhaseRunning) && !g.life.Is(core.PhaseIdle) {
		return
	}
	g.paddle.X = x - g.paddle.W/2
	g.clampPaddle()
}

// OnHoldLeft sets whether the move-left control is held.
func (g *Game) OnHoldLeft(held bool) {
	g.holdLeft = held
}

// OnHoldRight sets whether the move-right control is held.
func (g *Game) OnHoldRight(held bool) {
	g.holdRight = held
}

// OnJumpOrRelease starts an idle game or releases stuck balls.
func (g *Game) OnJumpOrRelease() {
	switch g.life.Phase() {
	case core.PhaseIdle:
		g.life.To(core.PhaseRunning)
	case core.PhaseRunning:
		g.releaseStuckBalls()
	}
}

// OnContinue starts an idle game or proceeds past a cleared level.
func (g *Game) OnContinue() {
	switch g.life.Phase() {
	case core.PhaseIdle:
		g.life.To(core.PhaseRunning)
	case core.PhaseWon:
		g.proceedToNextLevel()
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

// releaseStuckBalls sends every stuck ball upward with a random spread.
func (g *Game) releaseStuckBalls() {
	spread := g.cfg.Ball.ReleaseSpread
	for _, b := range g.balls {
		if !b.Stuck {
			continue
		}
		b.Stuck = false
		b.DX = core.RandRange(g.rng, -spread, spread)
		b.DY = -g.cfg.Ball.Speed
	}
}

// proceedToNextLevel applies the pending level parameters.
func (g *Game) proceedToNextLevel() {
	next := g.pending
	core.Invariant(next != nil, "won phase without pending level")

	g.level = next.Level
	g.rows = next.Rows
	g.speedFactor = next.SpeedFactor
	g.paddle.Speed = g.cfg.Paddle.Speed * g.speedFactor
	g.pending = nil

	g.buildLevel()
	g.resetBallAndPaddle()
	g.life.To(core.PhaseRunning)
}

// Tick advances the world by one frame. Only the running phase moves, and
// a frame that clears the level stops before pickups and effects advance.
// Events from the previous tick are discarded.
func (g *Game) Tick() {
	g.events = g.events[:0]
	if !g.life.Is(core.PhaseRunning) {
		return
	}
	g.tick++

	g.movePaddle()
	cleared := g.updateBalls()

	switch {
	case cleared:
		g.winLevel()
		return
	case len(g.balls) == 0:
		if !g.loseBall() {
			return
		}
	}

	g.updatePickups()
	g.effects.Tick()
	g.decayHitFlash()
}

func (g *Game) movePaddle() {
	if g.holdRight {
		g.paddle.X += g.paddle.Speed
	}
	if g.holdLeft {
		g.paddle.X -= g.paddle.Speed
	}
	g.clampPaddle()
}

func (g *Game) clampPaddle() {
	g.paddle.X = core.ClampF(g.paddle.X, 0, math.Max(0, g.cfg.Field.Width-g.paddle.W))
}

// updateBalls moves every ball through one frame and drops the balls that
// left the field. It reports whether the last brick was destroyed.
func (g *Game) updateBalls() bool {
	cleared := false
	kept := g.balls[:0]
	for _, b := range g.balls {
		if b.Stuck {
			b.X = g.paddle.X + b.StuckOffset
			b.Y = g.paddle.Y - b.R - 2
			kept = append(kept, b)
			continue
		}

		physics.Sweep(&b.Circle, func(c *physics.Circle) bool {
			physics.ReflectWalls(c, g.cfg.Field.Width)
			if g.hitPaddle(b) {
				return true
			}
			hit, last := g.hitBricks(c)
			if last {
				cleared = true
			}
			return hit
		})

		if b.Y-b.R > g.cfg.Field.Height {
			continue
		}
		kept = append(kept, b)
	}
	clear(g.balls[len(kept):])
	g.balls = kept
	return cleared
}

// hitPaddle bounces or catches b on the paddle.
func (g *Game) hitPaddle(b *Ball) bool {
	paddle := g.paddle.Rect()
	if !physics.TouchesPaddle(&b.Circle, paddle) {
		return false
	}
	if g.effects.Active(PowerupSticky) {
		b.Stuck = true
		b.StuckOffset = b.X - g.paddle.X
		b.DX, b.DY = 0, 0
		return true
	}
	physics.DeflectOffPaddle(&b.Circle, paddle, g.cfg.Paddle.MaxDeflection)
	return true
}

// hitBricks resolves c against the first brick it touches. It reports
// whether a brick was hit and whether that hit cleared the grid.
func (g *Game) hitBricks(c *physics.Circle) (hit, cleared bool) {
	for i := range g.grid.Bricks {
		br := &g.grid.Bricks[i]
		if !br.Present {
			continue
		}
		if _, ok := physics.ResolveRect(c, br.Rect(), g.cfg.Bricks.CollisionPad); !ok {
			continue
		}
		return true, g.damageBrick(br)
	}
	return false, false
}

// damageBrick applies one hit to br and reports whether the grid is empty.
func (g *Game) damageBrick(br *Brick) bool {
	core.Invariant(br.Hits > 0, "present brick (%d,%d) without hits", br.Row, br.Col)

	br.Hits--
	if br.Hits > 0 {
		g.addScore(g.cfg.Scoring.Hit)
		br.HitFlash = g.cfg.Scoring.HitFlash
		return false
	}

	br.Present = false
	br.HitFlash = 0
	g.addScore(g.cfg.Scoring.Destroy)
	if br.Powerup != PowerupNone {
		g.spawnPickup(br.X+br.W/2, br.Y+br.H, br.Powerup)
		br.Powerup = PowerupNone
	}
	return g.grid.Cleared()
}

// winLevel stops play until OnContinue and announces the next level.
func (g *Game) winLevel() {
	next := core.LevelParams{
		Level:       g.level + 1,
		Rows:        min(g.cfg.Bricks.MaxRows, g.rows+1),
		SpeedFactor: math.Pow(g.cfg.Gameplay.LevelSpeedUp, float64(g.level)),
	}
	g.pending = &next
	g.life.To(core.PhaseWon)

	announced := next
	g.emit(core.Event{Kind: core.EventWonLevel, Score: g.score, Next: &announced})
}

// loseBall handles the last ball leaving the field. A shield charge is used
// before a life. It reports whether the session continues.
func (g *Game) loseBall() bool {
	if g.shields > 0 {
		g.shields--
		g.resetBallAndPaddle()
		g.emit(core.Event{Kind: core.EventShieldUsed, Score: g.score})
		return true
	}

	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.life.To(core.PhaseLost)
		g.scores.Record(ID, g.score)
		g.emit(core.Event{Kind: core.EventLost, Score: g.score})
		return false
	}
	g.resetBallAndPaddle()
	return true
}

func (g *Game) decayHitFlash() {
	for i := range g.grid.Bricks {
		if g.grid.Bricks[i].HitFlash > 0 {
			g.grid.Bricks[i].HitFlash--
		}
	}
}

// addScore raises the score and the best score with it.
func (g *Game) addScore(points int) {
	core.Invariant(points >= 0, "score delta %d is negative", points)
	g.score += points

	if g.scores.Record(ID, g.score) {
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
