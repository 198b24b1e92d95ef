package runner

import (
	"math"

	"github.com/vovakirdan/brickrun/internal/core"
	"github.com/vovakirdan/brickrun/internal/effects"
	"github.com/vovakirdan/brickrun/internal/physics"
)

// PowerupKind identifies a runner pickup.
type PowerupKind int

const (
	PowerupNone      PowerupKind = iota
	PowerupShield                // Absorbs one obstacle hit
	PowerupSlowMo                // Halves scrolling speed for a while
	PowerupDoublePts             // Doubles passive score for a while
)

// AllPowerups lists the kinds a pickup can be.
var AllPowerups = []PowerupKind{PowerupShield, PowerupSlowMo, PowerupDoublePts}

// String returns the name of the powerup kind.
func (k PowerupKind) String() string {
	switch k {
	case PowerupNone:
		return "none"
	case PowerupShield:
		return "shield"
	case PowerupSlowMo:
		return "slowmo"
	case PowerupDoublePts:
		return "doublepts"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for the kind.
func (k PowerupKind) Glyph() rune {
	switch k {
	case PowerupShield:
		return 'D'
	case PowerupSlowMo:
		return 'S'
	case PowerupDoublePts:
		return '2'
	default:
		return '?'
	}
}

// Color returns the display color for the kind.
func (k PowerupKind) Color() core.Color {
	switch k {
	case PowerupShield:
		return core.ColorCyan
	case PowerupSlowMo:
		return core.ColorBlue
	case PowerupDoublePts:
		return core.ColorBrightYellow
	default:
		return core.ColorDefault
	}
}

// spawnPickup places a pickup ahead of obs. Placements overlapping any
// obstacle are retried a bounded number of times, then given up.
func (g *Game) spawnPickup(obs Obstacle) {
	pc := g.cfg.Powerups
	kind := AllPowerups[g.rng.Intn(len(AllPowerups))]

	for attempt := 0; attempt <= pc.Retries; attempt++ {
		x := obs.X + core.RandRange(g.rng, pc.MinOffset, pc.MaxOffset)
		lift := core.RandRange(g.rng, 0, pc.MaxLift)
		p := Pickup{
			X:    x,
			Y:    g.ground.Y(x) - pc.Size - lift,
			W:    pc.Size,
			H:    pc.Size,
			Lift: lift,
			Kind: kind,
		}
		if g.overlapsObstacle(p.Rect()) {
			continue
		}
		g.pickups = append(g.pickups, &p)
		return
	}
	g.logger.Debug("dropped pickup after retries", "kind", kind, "retries", pc.Retries)
}

func (g *Game) overlapsObstacle(r core.Rect) bool {
	for _, o := range g.obstacles {
		if r.Intersects(o.Rect()) {
			return true
		}
	}
	return false
}

// updatePickups scrolls pickups and collects the ones the runner touches.
func (g *Game) updatePickups(speed float64) {
	kept := g.pickups[:0]
	for _, p := range g.pickups {
		p.X -= speed
		p.Y = g.ground.Y(p.X) - p.H - p.Lift
		if p.X+p.W < 0 {
			continue
		}
		if collides(g.player, p.Rect()) {
			g.activate(p.Kind)
			continue
		}
		kept = append(kept, p)
	}
	clear(g.pickups[len(kept):])
	g.pickups = kept
}

// activate applies a collected powerup.
func (g *Game) activate(kind PowerupKind) {
	pc := g.cfg.Powerups

	switch kind {
	case PowerupShield:
		g.effects.Apply(kind, effects.Unbounded, func() effects.Restore { return nil })
	case PowerupSlowMo:
		g.effects.Apply(kind, pc.SlowMoDuration, func() effects.Restore {
			prev := g.speedScale
			g.speedScale = pc.SlowMoFactor
			return func() { g.speedScale = prev }
		})
	case PowerupDoublePts:
		g.effects.Apply(kind, pc.DoublePtsDuration, func() effects.Restore {
			prev := g.pointsPerStep
			g.pointsPerStep = 2
			return func() { g.pointsPerStep = prev }
		})
	case PowerupNone:
		core.Invariant(false, "collected a pickup without a kind")
	}

	g.emit(core.Event{Kind: core.EventPowerup, Score: g.score, Detail: kind.String()})
}

// consumeShield spends the shield on the obstacle at idx.
func (g *Game) consumeShield(idx int) {
	o := g.obstacles[idx]
	g.effects.Expire(PowerupShield)
	g.obstacles = append(g.obstacles[:idx], g.obstacles[idx+1:]...)

	c := o.Rect().Center()
	g.burst(c.X, c.Y, g.cfg.Particles.BurstCount)
	g.emit(core.Event{Kind: core.EventShieldUsed, Score: g.score})
}

// collides tests the runner circle against r.
func collides(p Runner, r core.Rect) bool {
	return physics.CircleRectOverlap(p.X, p.Y, p.R, r)
}

// speed returns the scroll speed for this tick.
func (g *Game) speed() float64 {
	return g.gameSpeed * g.speedScale
}

// burst emits n particles flying out from (x, y) in every direction.
func (g *Game) burst(x, y float64, n int) {
	for i := 0; i < n; i++ {
		angle := core.RandRange(g.rng, 0, 2*math.Pi)
		v := core.RandRange(g.rng, 1, 4)
		g.addParticle(x, y, math.Cos(angle)*v, math.Sin(angle)*v, 4)
	}
}
