package runner

import "github.com/vovakirdan/brickrun/internal/core"

func (g *Game) addParticle(x, y, vx, vy, size float64) {
	life := g.cfg.Particles.Life
	g.particles = append(g.particles, &Particle{
		X: x, Y: y,
		VX: vx, VY: vy,
		Life:    life,
		MaxLife: life,
		Size:    size,
	})
}

// dust kicks up particles behind the runner's feet.
func (g *Game) dust() {
	feet := g.player.Y + g.player.R
	for i := 0; i < g.cfg.Particles.DustCount; i++ {
		vx := core.RandRange(g.rng, -2, -0.5)
		vy := core.RandRange(g.rng, -1.5, -0.3)
		g.addParticle(g.player.X, feet, vx, vy, 3)
	}
}

// updateParticles applies gravity, ages every particle and shrinks it with
// its remaining life.
func (g *Game) updateParticles() {
	kept := g.particles[:0]
	for _, p := range g.particles {
		p.VY += g.cfg.Particles.Gravity
		p.X += p.VX
		p.Y += p.VY
		p.Life--
		if p.Life <= 0 {
			continue
		}
		p.Size *= float64(p.Life) / float64(p.Life+1)
		core.Invariant(p.Size >= 0, "particle size %v is negative", p.Size)
		kept = append(kept, p)
	}
	clear(g.particles[len(kept):])
	g.particles = kept
}
