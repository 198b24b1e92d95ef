package breakout

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/brickrun/internal/config"
	"github.com/vovakirdan/brickrun/internal/core"
	"github.com/vovakirdan/brickrun/internal/highscore"
	"github.com/vovakirdan/brickrun/internal/physics"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := NewWithConfig(config.DefaultBreakoutConfig())
	g.Reset(core.RuntimeConfig{Seed: seed})
	return g
}

// withBricks replaces the generated grid with the given bricks.
func withBricks(g *Game, bricks ...Brick) {
	g.grid = &Grid{Rows: 1, Cols: len(bricks), Bricks: bricks}
}

func plainBrick(x, y float64, hits int) Brick {
	return Brick{X: x, Y: y, W: 80, H: 20, Present: true, Hits: hits}
}

func withBall(g *Game, x, y, dx, dy float64) *Ball {
	b := &Ball{
		Circle: physics.Circle{X: x, Y: y, R: g.cfg.Ball.Radius, DX: dx, DY: dy},
		ID:     g.nextBallID(),
	}
	g.balls = []*Ball{b}
	return b
}

func TestBrickDestroyedEndToEnd(t *testing.T) {
	g := newTestGame(t, 1)
	withBricks(g, plainBrick(100, 100, 1))
	ball := withBall(g, 140, 95, 4, -4)
	g.OnJumpOrRelease()

	res := g.Step(core.NewInputFrame())

	if g.grid.Bricks[0].Present {
		t.Fatal("brick should be destroyed")
	}
	if g.score != 10 {
		t.Errorf("score = %d, want 10", g.score)
	}
	if ball.DY != -4 {
		t.Errorf("ball dy = %v, want -4", ball.DY)
	}
	if !res.Has(core.EventWonLevel) {
		t.Fatalf("expected won-level event, got %v", res.Events)
	}
	if res.State.Phase != core.PhaseWon {
		t.Errorf("phase = %v, want won", res.State.Phase)
	}
}

func TestReinforcedBrickLifecycle(t *testing.T) {
	g := newTestGame(t, 1)
	withBricks(g, plainBrick(100, 100, 3), plainBrick(300, 100, 1))
	br := &g.grid.Bricks[0]
	g.OnJumpOrRelease()

	reach := g.cfg.Ball.Radius + g.cfg.Bricks.CollisionPad
	steps := []struct {
		hits    int
		score   int
		present bool
	}{
		{2, 5, true},
		{1, 10, true},
		{0, 20, false},
	}
	for i, s := range steps {
		ball := withBall(g, br.X+br.W/2, br.Y+br.H+reach+2, 0, -4)
		res := g.Step(core.NewInputFrame())

		if br.Hits != s.hits || g.score != s.score || br.Present != s.present {
			t.Errorf("hit %d: hits=%d score=%d present=%v, want %d %d %v",
				i+1, br.Hits, g.score, br.Present, s.hits, s.score, s.present)
		}
		if ball.DY != 4 {
			t.Errorf("hit %d: ball dy = %v, want 4", i+1, ball.DY)
		}
		if res.State.Phase != core.PhaseRunning {
			t.Fatalf("hit %d: phase = %v", i+1, res.State.Phase)
		}
	}
	if br.HitFlash != 0 {
		t.Errorf("destroyed brick keeps hit flash %d", br.HitFlash)
	}
}

func TestOneBrickPerBallPerFrame(t *testing.T) {
	g := newTestGame(t, 1)
	withBricks(g, plainBrick(100, 100, 2), plainBrick(182, 100, 2))
	g.OnJumpOrRelease()

	// Aimed at the 2-unit gap fast enough that one frame reaches both bricks.
	withBall(g, 181, 150, 0, -30)
	g.Step(core.NewInputFrame())

	a, b := g.grid.Bricks[0].Hits, g.grid.Bricks[1].Hits
	if a+b != 3 {
		t.Fatalf("hits a=%d b=%d, want exactly one brick hit", a, b)
	}
	if a != 1 {
		t.Errorf("hits a=%d b=%d, want the first brick in grid order hit", a, b)
	}
	if g.score != g.cfg.Scoring.Hit {
		t.Errorf("score = %d, want %d", g.score, g.cfg.Scoring.Hit)
	}
}

func TestClearingFrameFreezesPickups(t *testing.T) {
	g := newTestGame(t, 1)
	withBricks(g, plainBrick(100, 100, 1))
	g.OnJumpOrRelease()

	g.spawnPickup(g.paddle.CenterX(), 0, PowerupLife)
	p := g.pickups[0]
	p.Y = g.paddle.Y - p.R
	lives := g.lives

	withBall(g, 140, 95, 4, -4)
	res := g.Step(core.NewInputFrame())

	if res.State.Phase != core.PhaseWon {
		t.Fatalf("phase = %v, want won", res.State.Phase)
	}
	if g.lives != lives {
		t.Errorf("lives = %d, pickup was caught after the level was cleared", g.lives)
	}
	if len(g.pickups) != 1 || p.Y != g.paddle.Y-p.R {
		t.Errorf("pickup moved during the clearing frame: %+v", g.pickups)
	}
}

func TestHitFlashDecays(t *testing.T) {
	g := newTestGame(t, 1)
	withBricks(g, plainBrick(100, 100, 2), plainBrick(300, 100, 1))
	withBall(g, 400, 300, 0, -1)
	g.damageBrick(&g.grid.Bricks[0])
	g.OnJumpOrRelease()

	want := g.cfg.Scoring.HitFlash
	for i := 0; i < want; i++ {
		g.Tick()
	}
	if g.grid.Bricks[0].HitFlash != 0 {
		t.Errorf("hit flash = %d after %d ticks", g.grid.Bricks[0].HitFlash, want)
	}
}

func TestPowerupDropAndCatch(t *testing.T) {
	g := newTestGame(t, 1)
	withBricks(g, plainBrick(100, 100, 1), plainBrick(300, 100, 1))
	g.grid.Bricks[0].Powerup = PowerupLife

	g.damageBrick(&g.grid.Bricks[0])
	if len(g.pickups) != 1 {
		t.Fatalf("pickups = %d, want 1", len(g.pickups))
	}
	p := g.pickups[0]
	if p.X != 140 || p.Y != 120 || p.Kind != PowerupLife {
		t.Errorf("pickup = %+v", *p)
	}
	if g.grid.Bricks[0].Powerup != PowerupNone {
		t.Error("destroyed brick still carries a powerup")
	}

	p.X = g.paddle.CenterX()
	p.Y = g.paddle.Y - p.R
	lives := g.lives
	g.events = g.events[:0]
	g.updatePickups()

	if g.lives != lives+1 {
		t.Errorf("lives = %d, want %d", g.lives, lives+1)
	}
	if len(g.pickups) != 0 {
		t.Error("caught pickup should be removed")
	}
	if len(g.events) != 1 || g.events[0].Detail != "life" {
		t.Errorf("events = %v", g.events)
	}
}

func TestMissedPickupFallsAway(t *testing.T) {
	g := newTestGame(t, 1)
	g.spawnPickup(10, g.cfg.Field.Height+g.cfg.Powerups.Radius, PowerupScore)
	g.paddle.X = 400

	g.updatePickups()
	if len(g.pickups) != 0 {
		t.Errorf("pickups = %d, want 0", len(g.pickups))
	}
}

func TestEnlargeDoesNotStack(t *testing.T) {
	g := newTestGame(t, 1)
	base := g.paddle.W
	want := math.Round(base * g.cfg.Powerups.EnlargeFactor)

	g.activate(PowerupEnlarge)
	g.activate(PowerupEnlarge)
	if g.paddle.W != want {
		t.Errorf("width after two pickups = %v, want %v", g.paddle.W, want)
	}

	for i := 0; i < g.cfg.Powerups.Duration; i++ {
		g.effects.Tick()
	}
	if g.paddle.W != base {
		t.Errorf("width after expiry = %v, want %v", g.paddle.W, base)
	}
}

func TestEnlargeKeepsPaddleInField(t *testing.T) {
	g := newTestGame(t, 1)
	g.paddle.X = g.cfg.Field.Width - g.paddle.W

	g.activate(PowerupEnlarge)
	if g.paddle.Right() > g.cfg.Field.Width {
		t.Errorf("paddle right edge %v beyond field", g.paddle.Right())
	}
}

func TestSlowRestoresOriginalSpeed(t *testing.T) {
	g := newTestGame(t, 1)
	ball := withBall(g, 400, 300, 3, -4)

	g.activate(PowerupSlow)
	if math.Abs(ball.DX-1.8) > 1e-9 || math.Abs(ball.DY+2.4) > 1e-9 {
		t.Fatalf("slowed velocity = (%v, %v)", ball.DX, ball.DY)
	}

	// Bounce while slowed; the restore keeps the new direction.
	ball.DY = -ball.DY
	g.effects.Expire(PowerupSlow)
	if ball.DX != 3 || ball.DY != 4 {
		t.Errorf("restored velocity = (%v, %v), want (3, 4)", ball.DX, ball.DY)
	}
}

func TestMultiballUnderSlow(t *testing.T) {
	g := newTestGame(t, 1)
	ball := withBall(g, 400, 300, 3, -4)

	g.activate(PowerupSlow)
	g.activate(PowerupMultiball)
	if len(g.balls) != 3 {
		t.Fatalf("balls = %d, want 3", len(g.balls))
	}

	ids := map[int]bool{}
	for _, b := range g.balls {
		if ids[b.ID] {
			t.Errorf("duplicate ball id %d", b.ID)
		}
		ids[b.ID] = true
	}

	spawned := []physics.Circle{g.balls[1].Circle, g.balls[2].Circle}
	g.effects.Expire(PowerupSlow)

	if ball.DX != 3 || ball.DY != -4 {
		t.Errorf("original ball = (%v, %v), want (3, -4)", ball.DX, ball.DY)
	}
	for i, b := range g.balls[1:] {
		if b.DX != spawned[i].DX || b.DY != spawned[i].DY {
			t.Errorf("spawned ball %d changed on restore", b.ID)
		}
	}
}

func TestStickyCatchAndRelease(t *testing.T) {
	g := newTestGame(t, 1)
	g.activate(PowerupSticky)
	ball := withBall(g, g.paddle.CenterX(), g.paddle.Y-5, 0, 4)
	g.OnJumpOrRelease()

	g.Tick()
	if !ball.Stuck {
		t.Fatal("ball should stick to the paddle")
	}
	if ball.DX != 0 || ball.DY != 0 {
		t.Errorf("stuck ball velocity = (%v, %v)", ball.DX, ball.DY)
	}

	offset := ball.StuckOffset
	g.OnHoldRight(true)
	g.Tick()
	g.OnHoldRight(false)
	if ball.X != g.paddle.X+offset {
		t.Errorf("stuck ball x = %v, want %v", ball.X, g.paddle.X+offset)
	}
	if ball.Y != g.paddle.Y-ball.R-2 {
		t.Errorf("stuck ball y = %v, want %v", ball.Y, g.paddle.Y-ball.R-2)
	}

	g.OnJumpOrRelease()
	if ball.Stuck {
		t.Fatal("ball should be released")
	}
	if ball.DY != -g.cfg.Ball.Speed {
		t.Errorf("released dy = %v", ball.DY)
	}
	if spread := g.cfg.Ball.ReleaseSpread; ball.DX < -spread || ball.DX >= spread {
		t.Errorf("released dx = %v outside spread", ball.DX)
	}
}

func TestShieldBeforeLives(t *testing.T) {
	g := newTestGame(t, 1)
	g.shields = 1
	g.OnJumpOrRelease()
	bottom := g.cfg.Field.Height + 20

	withBall(g, 400, bottom, 0, 4)
	res := g.Step(core.NewInputFrame())
	if !res.Has(core.EventShieldUsed) {
		t.Fatalf("expected shield-used, got %v", res.Events)
	}
	if g.shields != 0 || g.lives != g.cfg.Gameplay.Lives || len(g.balls) != 1 {
		t.Errorf("shields=%d lives=%d balls=%d", g.shields, g.lives, len(g.balls))
	}

	withBall(g, 400, bottom, 0, 4)
	g.Step(core.NewInputFrame())
	if g.lives != g.cfg.Gameplay.Lives-1 {
		t.Errorf("lives = %d, want %d", g.lives, g.cfg.Gameplay.Lives-1)
	}
	if !g.life.Is(core.PhaseRunning) {
		t.Errorf("phase = %v, want running", g.life.Phase())
	}
}

func TestLastLifeLosesAndRecordsBest(t *testing.T) {
	keeper := highscore.NewKeeper(nil, nil)
	g := NewWithConfig(config.DefaultBreakoutConfig())
	g.Reset(core.RuntimeConfig{Seed: 1, Scores: keeper})
	g.OnJumpOrRelease()

	g.lives = 1
	g.score = 70
	withBall(g, 400, g.cfg.Field.Height+20, 0, 4)
	res := g.Step(core.NewInputFrame())

	if !res.Has(core.EventLost) || !res.State.GameOver {
		t.Fatalf("expected loss, got %+v", res)
	}
	if keeper.Best(ID) != 70 {
		t.Errorf("best = %d, want 70", keeper.Best(ID))
	}

	// Lost worlds do not move.
	tick := g.tick
	g.Tick()
	if g.tick != tick {
		t.Error("lost game advanced")
	}

	g.OnRestart()
	if !g.life.Is(core.PhaseRunning) || g.score != 0 || g.lives != g.cfg.Gameplay.Lives {
		t.Errorf("restart: phase=%v score=%d lives=%d", g.life.Phase(), g.score, g.lives)
	}
	if g.best != 70 {
		t.Errorf("restart best = %d, want 70", g.best)
	}
}

func TestNewBestAnnouncedOnce(t *testing.T) {
	g := newTestGame(t, 1)

	g.addScore(10)
	g.addScore(10)
	count := 0
	for _, e := range g.events {
		if e.Kind == core.EventNewBest {
			count++
		}
	}
	if count != 1 {
		t.Errorf("new-best events = %d, want 1", count)
	}
	if g.best != 20 {
		t.Errorf("best = %d, want 20", g.best)
	}
}

func TestLevelTransitionWaitsForContinue(t *testing.T) {
	g := newTestGame(t, 1)
	withBricks(g, plainBrick(100, 100, 1))
	withBall(g, 140, 95, 4, -4)
	g.OnJumpOrRelease()
	g.Tick()
	if !g.life.Is(core.PhaseWon) {
		t.Fatalf("phase = %v, want won", g.life.Phase())
	}

	tick := g.tick
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	g.OnJumpOrRelease()
	if g.tick != tick || !g.life.Is(core.PhaseWon) {
		t.Fatal("won phase should ignore ticks and jumps")
	}

	g.OnContinue()
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"level", float64(g.level), 2},
		{"rows", float64(g.rows), float64(g.cfg.Bricks.StartRows + 1)},
		{"speed factor", g.speedFactor, g.cfg.Gameplay.LevelSpeedUp},
		{"paddle speed", g.paddle.Speed, g.cfg.Paddle.Speed * g.cfg.Gameplay.LevelSpeedUp},
		{"ball dy", g.balls[0].DY, -g.cfg.Ball.Speed * g.cfg.Gameplay.LevelSpeedUp},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
	if !g.life.Is(core.PhaseRunning) || g.pending != nil {
		t.Errorf("after continue: phase=%v pending=%v", g.life.Phase(), g.pending)
	}
	if g.grid.Rows != g.rows {
		t.Errorf("grid rows = %d, want %d", g.grid.Rows, g.rows)
	}
}

func TestRowsCapAtMax(t *testing.T) {
	g := newTestGame(t, 1)
	g.rows = g.cfg.Bricks.MaxRows
	g.life.To(core.PhaseRunning)
	g.winLevel()
	if g.pending.Rows != g.cfg.Bricks.MaxRows {
		t.Errorf("next rows = %d, want %d", g.pending.Rows, g.cfg.Bricks.MaxRows)
	}
}

func TestPaddleClamping(t *testing.T) {
	g := newTestGame(t, 1)

	tests := []struct {
		x    float64
		want float64
	}{
		{-500, 0},
		{400, 400 - g.paddle.W/2},
		{5000, g.cfg.Field.Width - g.paddle.W},
	}
	for _, tt := range tests {
		g.OnMoveTo(tt.x)
		if g.paddle.X != tt.want {
			t.Errorf("OnMoveTo(%v): x = %v, want %v", tt.x, g.paddle.X, tt.want)
		}
	}
}

func TestPauseFreezesWorld(t *testing.T) {
	g := newTestGame(t, 1)
	g.OnJumpOrRelease()
	g.Tick()

	g.OnPauseToggle()
	before := g.Snapshot()
	for i := 0; i < 5; i++ {
		g.Tick()
	}
	after := g.Snapshot()
	if before.Hash() != after.Hash() {
		t.Error("paused world changed")
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 10:
			inputs[i].Set(core.ActionJump)
		case i > 10 && i%5 < 3:
			inputs[i].Set(core.ActionRight)
		case i > 10:
			inputs[i].Set(core.ActionLeft)
		}
	}

	run := func(seed int64) Snapshot {
		g := newTestGame(t, seed)
		for _, in := range inputs {
			if res := g.Step(in); res.State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(12345), run(12345)
	if a.Hash() != b.Hash() {
		t.Errorf("same seed produced different worlds: %d vs %d", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Tick != b.Tick {
		t.Errorf("score/tick differ: %d/%d vs %d/%d", a.Score, a.Tick, b.Score, b.Tick)
	}

	if c := run(54321); c.Hash() == a.Hash() {
		t.Error("different seeds produced identical worlds")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(t, 1)
	g.activate(PowerupEnlarge)

	snap := g.Snapshot()
	snap.Bricks[0].Present = !snap.Bricks[0].Present
	snap.Balls[0].X = -100
	snap.Paddle.W = 1

	if g.grid.Bricks[0].Present == snap.Bricks[0].Present {
		t.Error("brick shared with snapshot")
	}
	if g.balls[0].X == -100 || g.paddle.W == 1 {
		t.Error("ball or paddle shared with snapshot")
	}
	if len(snap.Effects) != 1 || snap.Effects[0].Kind != PowerupEnlarge {
		t.Errorf("effects = %+v", snap.Effects)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	for _, want := range []string{"Score: 0", "Lives: 3", "BREAKOUT", string(BrickChar)} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}

	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("small screen should show a warning")
	}
}
