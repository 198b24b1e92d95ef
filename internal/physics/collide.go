// Package physics implements the circle motion and collision primitives used
// by both simulations: sub-stepped sweeps, wall reflection, paddle deflection
// and circle-versus-rectangle resolution.
package physics

import (
	"math"

	"github.com/vovakirdan/brickrun/internal/core"
)

// PushEpsilon is added to every push-out so a resolved circle does not touch
// the rectangle again on the next increment.
const PushEpsilon = 0.5

// degenerateDist replaces a zero separation so the push-out stays finite.
const degenerateDist = 0.0001

// Circle is a moving circular body. X, Y is the center; DX, DY the velocity
// per tick.
type Circle struct {
	X, Y   float64
	R      float64
	DX, DY float64
}

// Center returns the circle's center point.
func (c *Circle) Center() core.Vec {
	return core.Vec{X: c.X, Y: c.Y}
}

// Velocity returns the circle's velocity vector.
func (c *Circle) Velocity() core.Vec {
	return core.Vec{X: c.DX, Y: c.DY}
}

// Bounds returns the axis-aligned box enclosing the circle.
func (c *Circle) Bounds() core.Rect {
	return core.NewRect(c.X-c.R, c.Y-c.R, 2*c.R, 2*c.R)
}

// Walls is a bit set of the boundaries touched by ReflectWalls.
type Walls uint8

const (
	WallLeft Walls = 1 << iota
	WallRight
	WallTop
)

// ReflectWalls bounces c off the left, right and top edges of a field of the
// given width. Position is clamped to the boundary and the velocity component
// that points outside is reflected. The bottom is open.
func ReflectWalls(c *Circle, width float64) Walls {
	var hit Walls
	if c.X+c.R > width {
		c.X = width - c.R
		c.DX = -math.Abs(c.DX)
		hit |= WallRight
	} else if c.X-c.R < 0 {
		c.X = c.R
		c.DX = math.Abs(c.DX)
		hit |= WallLeft
	}
	if c.Y-c.R < 0 {
		c.Y = c.R
		c.DY = math.Abs(c.DY)
		hit |= WallTop
	}
	return hit
}

// DeflectOffPaddle bounces a descending circle off the top of paddle. The new
// horizontal speed depends on where the circle struck relative to the paddle
// center, up to maxDeflection at either edge; the vertical speed always points
// up. It reports whether contact happened.
func DeflectOffPaddle(c *Circle, paddle core.Rect, maxDeflection float64) bool {
	if !TouchesPaddle(c, paddle) {
		return false
	}
	half := paddle.W / 2
	hitPos := (c.X - (paddle.X + half)) / half
	c.DX = hitPos * maxDeflection
	c.DY = -math.Abs(c.DY)
	return true
}

// TouchesPaddle reports whether a descending circle is in contact with the
// top of paddle. Only the center's x is tested against the paddle span.
func TouchesPaddle(c *Circle, paddle core.Rect) bool {
	return c.DY > 0 &&
		c.Y+c.R > paddle.Y &&
		c.Y-c.R < paddle.Bottom() &&
		c.X > paddle.X && c.X < paddle.Right()
}

// Contact describes a resolved circle-versus-rectangle collision.
type Contact struct {
	Normal    core.Vec // Unit normal pointing from the rectangle to the circle
	Dist      float64  // Separation before the push-out
	Reflected bool     // Whether the velocity was reflected
}

// ResolveRect collides c against rect inflated by pad. On contact the
// velocity is reflected about the contact normal when the circle is moving
// into the rectangle, and the circle is pushed out along the normal.
// A contact while moving away still reports ok, so callers score the hit
// even though Contact.Reflected is false.
func ResolveRect(c *Circle, rect core.Rect, pad float64) (Contact, bool) {
	if !c.Bounds().Intersects(rect.Expand(pad)) {
		return Contact{}, false
	}

	center := c.Center()
	n := center.Sub(rect.ClosestPoint(center))
	dist := n.Len()
	if dist == 0 {
		n = fallbackNormal(c.Velocity())
		dist = degenerateDist
	} else {
		n = core.Vec{X: n.X / dist, Y: n.Y / dist}
	}

	if dist > c.R+pad {
		return Contact{}, false
	}

	contact := Contact{Normal: n, Dist: dist}
	v := c.Velocity()
	if dot := v.Dot(n); dot < 0 {
		v = v.Sub(n.Scale(2 * dot))
		c.DX, c.DY = v.X, v.Y
		contact.Reflected = true
	}

	push := c.R + pad - dist + PushEpsilon
	c.X += n.X * push
	c.Y += n.Y * push
	return contact, true
}

// fallbackNormal points back along the direction of travel; a circle at rest
// is pushed straight up.
func fallbackNormal(v core.Vec) core.Vec {
	l := v.Len()
	if l == 0 {
		return core.Vec{X: 0, Y: -1}
	}
	return core.Vec{X: -v.X / l, Y: -v.Y / l}
}

// CircleRectOverlap reports whether a circle strictly overlaps rect.
func CircleRectOverlap(cx, cy, r float64, rect core.Rect) bool {
	center := core.Vec{X: cx, Y: cy}
	return center.Sub(rect.ClosestPoint(center)).Len() < r
}
