package runner

import (
	"github.com/vovakirdan/brickrun/internal/config"
	"github.com/vovakirdan/brickrun/internal/core"
)

// Runner is the ball the player jumps with. X never changes.
type Runner struct {
	X, Y      float64 // center
	R         float64
	VY        float64
	IsJumping bool
}

// Ground is the sloped floor the world sits on.
type Ground struct {
	Baseline float64
	Slope    float64
	Width    float64
}

// NewGround builds the ground line from the field config.
func NewGround(f config.RunnerField) Ground {
	return Ground{Baseline: f.Baseline, Slope: f.Slope, Width: f.Width}
}

// Y returns the ground height at x. The ground rises by Slope from right to
// left.
func (g Ground) Y(x float64) float64 {
	return g.Baseline - g.Slope + g.Slope*x/g.Width
}

// Particle is a short-lived cosmetic dot.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Size    float64
}

// Pickup is a collectible powerup floating ahead of the runner.
type Pickup struct {
	X, Y float64
	W, H float64
	Lift float64 // height above the ground line
	Kind PowerupKind
}

// Rect returns the pickup's bounds.
func (p Pickup) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}
