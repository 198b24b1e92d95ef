package breakout

import (
	"github.com/vovakirdan/brickrun/internal/core"
	"github.com/vovakirdan/brickrun/internal/physics"
)

// Ball is a moving ball. IDs are unique within a session and let timed
// effects find the balls they changed.
type Ball struct {
	physics.Circle
	ID          int
	Stuck       bool    // Riding the paddle until released
	StuckOffset float64 // Center x relative to the paddle's left edge
}

// Paddle is the player's paddle.
type Paddle struct {
	X, Y  float64
	W, H  float64
	Speed float64 // per tick while a direction is held
}

// Rect returns the paddle's bounds.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.W, p.H)
}

// CenterX returns the paddle's horizontal center.
func (p Paddle) CenterX() float64 {
	return p.X + p.W/2
}

// Right returns the paddle's right edge.
func (p Paddle) Right() float64 {
	return p.X + p.W
}

// Brick is one cell of the brick grid. Absent bricks stay in the grid so
// positions remain stable for the rest of the level.
type Brick struct {
	X, Y     float64
	W, H     float64
	Row, Col int
	Present  bool
	Hits     int         // Hits left; 0 when absent
	Powerup  PowerupKind // PowerupNone when the brick carries nothing
	HitFlash int         // Ticks of hit feedback left
}

// Rect returns the brick's bounds.
func (b Brick) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.W, b.H)
}

// Reinforced reports whether the brick needs more than one hit.
func (b Brick) Reinforced() bool {
	return b.Hits > 1
}

// Pickup is a falling powerup released by a destroyed brick.
type Pickup struct {
	X, Y float64 // center
	R    float64
	DY   float64
	Kind PowerupKind
}
