package breakout

import (
	"math"

	"github.com/vovakirdan/brickrun/internal/core"
)

// EffectState is an active timed effect as seen by a renderer.
type EffectState struct {
	Kind      PowerupKind
	Remaining int
}

// Snapshot is a value copy of the world. Mutating it never affects the game.
type Snapshot struct {
	Tick        uint64
	Phase       core.Phase
	Score       int
	Best        int
	Lives       int
	Shields     int
	Level       int
	Rows        int
	SpeedFactor float64

	Paddle  Paddle
	Balls   []Ball
	Bricks  []Brick
	Pickups []Pickup
	Effects []EffectState

	// Pending is set while a cleared level waits for OnContinue.
	Pending *core.LevelParams
}

// Snapshot returns a copy of the current world.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:        g.tick,
		Phase:       g.life.Phase(),
		Score:       g.score,
		Best:        g.best,
		Lives:       g.lives,
		Shields:     g.shields,
		Level:       g.level,
		Rows:        g.rows,
		SpeedFactor: g.speedFactor,
		Paddle:      g.paddle,
		Balls:       make([]Ball, len(g.balls)),
		Bricks:      append([]Brick(nil), g.grid.Bricks...),
		Pickups:     make([]Pickup, len(g.pickups)),
	}

	for i, b := range g.balls {
		snap.Balls[i] = *b
	}
	for i, p := range g.pickups {
		snap.Pickups[i] = *p
	}
	for _, k := range g.effects.Kinds() {
		remaining, _ := g.effects.Remaining(k)
		snap.Effects = append(snap.Effects, EffectState{Kind: k, Remaining: remaining})
	}
	if g.pending != nil {
		next := *g.pending
		snap.Pending = &next
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixI := func(i int) { mix(uint64(i)) } //#nosec G115 -- hash computation

	mixI(int(snap.Phase))
	mixI(snap.Score)
	mixI(snap.Lives)
	mixI(snap.Shields)
	mixI(snap.Level)
	mixI(snap.Rows)
	mixF(snap.SpeedFactor)
	mixF(snap.Paddle.X)
	mixF(snap.Paddle.W)

	for _, b := range snap.Balls {
		mixI(b.ID)
		mixF(b.X)
		mixF(b.Y)
		mixF(b.DX)
		mixF(b.DY)
		if b.Stuck {
			mixI(1)
		}
	}
	for _, br := range snap.Bricks {
		if br.Present {
			mixI(br.Hits)
			mixI(int(br.Powerup))
		} else {
			mixI(-1)
		}
	}
	for _, p := range snap.Pickups {
		mixI(int(p.Kind))
		mixF(p.X)
		mixF(p.Y)
	}
	for _, e := range snap.Effects {
		mixI(int(e.Kind))
		mixI(e.Remaining)
	}
	return h
}
