package breakout

import (
	"math"

	"github.com/vovakirdan/brickrun/internal/core"
	"github.com/vovakirdan/brickrun/internal/effects"
)

// PowerupKind identifies a pickup.
type PowerupKind int

const (
	PowerupNone      PowerupKind = iota
	PowerupEnlarge               // Wider paddle for a while
	PowerupLife                  // One extra life
	PowerupSlow                  // Slower balls for a while
	PowerupMultiball             // Two extra balls per ball
	PowerupSticky                // Paddle catches balls for a while
	PowerupShield                // One shield charge
	PowerupScore                 // Flat score bonus
)

// AllPowerups lists the kinds a brick can carry, in draw order.
var AllPowerups = []PowerupKind{
	PowerupEnlarge,
	PowerupLife,
	PowerupSlow,
	PowerupMultiball,
	PowerupSticky,
	PowerupShield,
	PowerupScore,
}

// RandomPowerup draws a kind uniformly from AllPowerups.
func RandomPowerup(rng core.Rand) PowerupKind {
	return AllPowerups[rng.Intn(len(AllPowerups))]
}

// String returns the name of the powerup kind.
func (k PowerupKind) String() string {
	switch k {
	case PowerupNone:
		return "none"
	case PowerupEnlarge:
		return "enlarge"
	case PowerupLife:
		return "life"
	case PowerupSlow:
		return "slow"
	case PowerupMultiball:
		return "multiball"
	case PowerupSticky:
		return "sticky"
	case PowerupShield:
		return "shield"
	case PowerupScore:
		return "score"
	default:
		return "unknown"
	}
}

// Glyph returns the display character for a pickup.
func (k PowerupKind) Glyph() rune {
	switch k {
	case PowerupEnlarge:
		return 'E'
	case PowerupLife:
		return '♥'
	case PowerupSlow:
		return 'S'
	case PowerupMultiball:
		return 'M'
	case PowerupSticky:
		return 'T'
	case PowerupShield:
		return 'D'
	case PowerupScore:
		return '$'
	default:
		return '?'
	}
}

// Color returns the display color for a pickup.
func (k PowerupKind) Color() core.Color {
	switch k {
	case PowerupEnlarge:
		return core.ColorCyan
	case PowerupLife:
		return core.ColorRed
	case PowerupSlow:
		return core.ColorBlue
	case PowerupMultiball:
		return core.ColorBrightWhite
	case PowerupSticky:
		return core.ColorMagenta
	case PowerupShield:
		return core.ColorGreen
	case PowerupScore:
		return core.ColorBrightYellow
	default:
		return core.ColorDefault
	}
}

// Timed reports whether the kind runs through the effect manager.
func (k PowerupKind) Timed() bool {
	switch k {
	case PowerupEnlarge, PowerupSlow, PowerupSticky:
		return true
	default:
		return false
	}
}

// spawnPickup drops a pickup of kind at (x, y).
func (g *Game) spawnPickup(x, y float64, kind PowerupKind) {
	g.pickups = append(g.pickups, &Pickup{
		X:    math.Round(x),
		Y:    math.Round(y),
		R:    g.cfg.Powerups.Radius,
		DY:   g.cfg.Powerups.FallSpeed,
		Kind: kind,
	})
}

// updatePickups moves pickups down and activates the ones the paddle
// catches. Pickups below the field are dropped.
func (g *Game) updatePickups() {
	kept := g.pickups[:0]
	for _, p := range g.pickups {
		p.Y += p.DY
		if p.Y+p.R >= g.paddle.Y && p.X >= g.paddle.X && p.X <= g.paddle.Right() {
			g.activate(p.Kind)
			continue
		}
		if p.Y-p.R > g.cfg.Field.Height {
			continue
		}
		kept = append(kept, p)
	}
	clear(g.pickups[len(kept):])
	g.pickups = kept
}

// activate applies a caught powerup.
func (g *Game) activate(kind PowerupKind) {
	duration := g.cfg.Powerups.Duration

	switch kind {
	case PowerupLife:
		g.lives++
	case PowerupShield:
		g.shields++
	case PowerupScore:
		g.addScore(g.cfg.Powerups.ScoreBonus)
	case PowerupMultiball:
		g.multiball()
	case PowerupEnlarge:
		g.effects.Apply(kind, duration, g.enlargePaddle)
	case PowerupSlow:
		g.effects.Apply(kind, duration, g.slowBalls)
	case PowerupSticky:
		g.effects.Apply(kind, duration, func() effects.Restore { return nil })
	case PowerupNone:
		core.Invariant(false, "caught a pickup without a kind")
	}

	g.emit(core.Event{Kind: core.EventPowerup, Score: g.score, Detail: kind.String()})
}

// enlargePaddle widens the paddle; the restore puts back the width it found.
func (g *Game) enlargePaddle() effects.Restore {
	orig := g.paddle.W
	g.paddle.W = math.Min(g.cfg.Field.Width, math.Round(orig*g.cfg.Powerups.EnlargeFactor))
	g.clampPaddle()

	return func() {
		g.paddle.W = orig
		g.clampPaddle()
	}
}

// slowBalls scales every moving ball's velocity down. On expiry each ball
// that existed at activation gets its original per-axis speed back while
// keeping its current direction. Balls created while the effect runs and
// balls stuck to the paddle are left alone.
func (g *Game) slowBalls() effects.Restore {
	factor := g.cfg.Powerups.SlowFactor
	orig := make(map[int]core.Vec, len(g.balls))
	for _, b := range g.balls {
		if b.Stuck {
			continue
		}
		orig[b.ID] = core.Vec{X: b.DX, Y: b.DY}
		b.DX *= factor
		b.DY *= factor
	}

	return func() {
		for _, b := range g.balls {
			v, ok := orig[b.ID]
			if !ok || b.Stuck {
				continue
			}
			b.DX = withSign(math.Abs(v.X), b.DX, v.X)
			b.DY = withSign(math.Abs(v.Y), b.DY, v.Y)
		}
	}
}

// withSign returns magnitude signed like cur, or like fallback when cur is 0.
func withSign(magnitude, cur, fallback float64) float64 {
	if cur == 0 {
		cur = fallback
	}
	return math.Copysign(magnitude, cur)
}

// multiball adds two balls for every ball in play, fanned out to each side.
func (g *Game) multiball() {
	n := len(g.balls)
	for i := 0; i < n; i++ {
		src := g.balls[i]
		for _, spread := range [2]float64{1.2, -1.2} {
			b := *src
			b.ID = g.nextBallID()
			b.DX = src.DX*0.9 + spread
			b.DY = -math.Abs(src.DY)
			g.balls = append(g.balls, &b)
		}
	}
}
