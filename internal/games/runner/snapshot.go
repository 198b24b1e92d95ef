package runner

import (
	"math"

	"github.com/vovakirdan/brickrun/internal/core"
)

// EffectState is an active effect as seen by a renderer. Remaining is
// effects.Unbounded for the shield.
type EffectState struct {
	Kind      PowerupKind
	Remaining int
}

// Snapshot is a value copy of the world.
type Snapshot struct {
	Tick      uint64
	Phase     core.Phase
	Tier      string
	Score     int
	Best      int
	GameSpeed float64
	Speed     float64 // effective scroll speed including slow motion

	Player    Runner
	Obstacles []Obstacle
	Pickups   []Pickup
	Particles []Particle
	Effects   []EffectState
}

// Snapshot returns a copy of the current world.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      g.tick,
		Phase:     g.life.Phase(),
		Tier:      g.tier.Name,
		Score:     g.score,
		Best:      g.best,
		GameSpeed: g.gameSpeed,
		Speed:     g.speed(),
		Player:    g.player,
		Obstacles: make([]Obstacle, len(g.obstacles)),
		Pickups:   make([]Pickup, len(g.pickups)),
		Particles: make([]Particle, len(g.particles)),
	}
	for i, o := range g.obstacles {
		snap.Obstacles[i] = *o
	}
	for i, p := range g.pickups {
		snap.Pickups[i] = *p
	}
	for i, p := range g.particles {
		snap.Particles[i] = *p
	}
	for _, k := range g.effects.Kinds() {
		remaining, _ := g.effects.Remaining(k)
		snap.Effects = append(snap.Effects, EffectState{Kind: k, Remaining: remaining})
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
	mixF(snap.GameSpeed)
	mixF(snap.Speed)
	mixF(snap.Player.Y)
	mixF(snap.Player.VY)

	for _, o := range snap.Obstacles {
		mixI(int(o.Kind))
		mixF(o.X)
		mixF(o.W)
		mixF(o.H)
	}
	for _, p := range snap.Pickups {
		mixI(int(p.Kind))
		mixF(p.X)
		mixF(p.Y)
	}
	mixI(len(snap.Particles))
	for _, e := range snap.Effects {
		mixI(int(e.Kind))
		mixI(e.Remaining)
	}
	return h
}
