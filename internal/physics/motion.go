package physics

import "math"

// SubSteps returns how many equal increments one tick of motion is split
// into so that no increment travels more than half the radius along either
// axis (or one unit for circles smaller than two units).
func SubSteps(dx, dy, r float64) int {
	travel := math.Max(math.Abs(dx), math.Abs(dy))
	limit := math.Max(1, r*0.5)
	return max(1, int(math.Ceil(travel/limit)))
}

// Sweep moves c through one tick of its velocity in SubSteps increments.
// After each increment it calls resolve, which may change the velocity; the
// next increment uses the updated velocity. Sweeping stops early once
// resolve returns true. Sweep reports whether it stopped early.
func Sweep(c *Circle, resolve func(c *Circle) bool) bool {
	steps := SubSteps(c.DX, c.DY, c.R)
	for i := 0; i < steps; i++ {
		c.X += c.DX / float64(steps)
		c.Y += c.DY / float64(steps)
		if resolve(c) {
			return true
		}
	}
	return false
}
