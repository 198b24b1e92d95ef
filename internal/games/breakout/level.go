// Package breakout implements the brick-breaker simulation: paddle and
// balls, a procedurally generated brick grid, falling powerups with timed
// effects, and level progression.
package breakout

import (
	"math"

	"github.com/vovakirdan/brickrun/internal/config"
	"github.com/vovakirdan/brickrun/internal/core"
)

// Grid is the brick layout of one level, stored row-major.
type Grid struct {
	Rows, Cols int
	Staggered  bool
	Bricks     []Brick
}

// At returns the brick at row r, column c.
func (g *Grid) At(r, c int) *Brick {
	return &g.Bricks[r*g.Cols+c]
}

// Remaining counts present bricks.
func (g *Grid) Remaining() int {
	n := 0
	for i := range g.Bricks {
		if g.Bricks[i].Present {
			n++
		}
	}
	return n
}

// Cleared reports whether every brick is gone.
func (g *Grid) Cleared() bool {
	return g.Remaining() == 0
}

// ReinforcedCount counts present bricks that need more than one hit.
func (g *Grid) ReinforcedCount() int {
	n := 0
	for i := range g.Bricks {
		if g.Bricks[i].Present && g.Bricks[i].Reinforced() {
			n++
		}
	}
	return n
}

// Density is the chance that a cell holds a brick on the given level.
func Density(level int) float64 {
	return math.Max(0.35, 0.75-0.04*float64(level-1))
}

// ReinforceChance is the chance that a present brick is reinforced.
func ReinforceChance(level int) float64 {
	return math.Min(0.35, 0.12+0.03*float64(level-1))
}

// ReinforcedBounds returns the inclusive range of reinforced bricks a level
// with n present bricks ends up with.
func ReinforcedBounds(level, n int) (lo, hi int) {
	return min(n, level+1), min(n, level+2)
}

// GenerateLevel builds the brick grid for level with the given row count.
func GenerateLevel(rng core.Rand, cfg config.BreakoutConfig, level, rows int) *Grid {
	core.Invariant(level >= 1, "level %d must be at least 1", level)
	core.Invariant(rows >= 1, "level needs at least one row, got %d", rows)

	bc := cfg.Bricks
	cols := bc.Cols
	density := Density(level)
	reinforce := ReinforceChance(level)

	grid := &Grid{
		Rows:      rows,
		Cols:      cols,
		Staggered: rng.Float64() < cfg.Gameplay.StaggerChance,
		Bricks:    make([]Brick, rows*cols),
	}

	pitch := bc.Width + bc.Padding
	totalRowW := float64(cols)*pitch - bc.Padding
	leftStart := math.Round((cfg.Field.Width - totalRowW) / 2)
	staggerShift := math.Round(pitch / 2)

	for r := 0; r < rows; r++ {
		rowOffset := 0.0
		if grid.Staggered && r%2 == 1 {
			rowOffset = staggerShift
		}
		for c := 0; c < cols; c++ {
			b := grid.At(r, c)
			*b = Brick{
				X:   leftStart + rowOffset + float64(c)*pitch,
				Y:   bc.OffsetTop + float64(r)*(bc.Height+bc.Padding),
				W:   bc.Width,
				H:   bc.Height,
				Row: r,
				Col: c,
			}
			if rng.Float64() < density {
				b.Present = true
				b.Hits = 1
				if rng.Float64() < reinforce {
					b.Hits = bc.ReinforcedHP
				}
			}
		}
	}

	if grid.Cleared() {
		mid := rows / 2
		for c := 0; c < cols; c++ {
			b := grid.At(mid, c)
			b.Present = true
			b.Hits = 1
		}
	}

	clampReinforced(rng, grid, level, bc.ReinforcedHP)
	return grid
}

// clampReinforced demotes or promotes random bricks until the reinforced
// count falls inside ReinforcedBounds.
func clampReinforced(rng core.Rand, grid *Grid, level, reinforcedHits int) {
	var reinforced, plain []int
	for i := range grid.Bricks {
		b := &grid.Bricks[i]
		if !b.Present {
			continue
		}
		if b.Reinforced() {
			reinforced = append(reinforced, i)
		} else {
			plain = append(plain, i)
		}
	}

	lo, hi := ReinforcedBounds(level, len(reinforced)+len(plain))

	for len(reinforced) > hi {
		idx := core.RandInt(rng, 0, len(reinforced)-1)
		grid.Bricks[reinforced[idx]].Hits = 1
		reinforced = append(reinforced[:idx], reinforced[idx+1:]...)
	}

	count := len(reinforced)
	for count < lo && len(plain) > 0 {
		idx := core.RandInt(rng, 0, len(plain)-1)
		grid.Bricks[plain[idx]].Hits = reinforcedHits
		plain = append(plain[:idx], plain[idx+1:]...)
		count++
	}
}

// AssignPowerups clears every powerup in the grid, then gives count distinct
// present bricks a random powerup kind.
func AssignPowerups(rng core.Rand, grid *Grid, count int) {
	var candidates []int
	for i := range grid.Bricks {
		grid.Bricks[i].Powerup = PowerupNone
		if grid.Bricks[i].Present {
			candidates = append(candidates, i)
		}
	}

	count = core.Clamp(count, 0, len(candidates))
	picked := make(map[int]bool, count)
	order := make([]int, 0, count)
	for len(order) < count {
		idx := core.RandInt(rng, 0, len(candidates)-1)
		if picked[idx] {
			continue
		}
		picked[idx] = true
		order = append(order, idx)
	}

	for _, idx := range order {
		grid.Bricks[candidates[idx]].Powerup = RandomPowerup(rng)
	}
}
