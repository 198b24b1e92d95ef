package runner

import (
	"github.com/vovakirdan/brickrun/internal/config"
	"github.com/vovakirdan/brickrun/internal/core"
)

// ObstacleKind identifies an obstacle shape.
type ObstacleKind int

const (
	ObstacleTire ObstacleKind = iota
	ObstacleCone
	ObstacleBarrier
	ObstacleBox
	ObstacleSign
	ObstacleRock
)

// AllObstacles lists every kind, in draw order.
var AllObstacles = []ObstacleKind{
	ObstacleTire,
	ObstacleCone,
	ObstacleBarrier,
	ObstacleBox,
	ObstacleSign,
	ObstacleRock,
}

// String returns the name of the obstacle kind.
func (k ObstacleKind) String() string {
	switch k {
	case ObstacleTire:
		return "tire"
	case ObstacleCone:
		return "cone"
	case ObstacleBarrier:
		return "barrier"
	case ObstacleBox:
		return "box"
	case ObstacleSign:
		return "sign"
	case ObstacleRock:
		return "rock"
	default:
		return "unknown"
	}
}

// Glyph returns the fill character for the kind.
func (k ObstacleKind) Glyph() rune {
	switch k {
	case ObstacleTire:
		return '◙'
	case ObstacleCone:
		return '▲'
	case ObstacleBarrier:
		return '▓'
	case ObstacleBox:
		return '■'
	case ObstacleSign:
		return '│'
	case ObstacleRock:
		return '▒'
	default:
		return '?'
	}
}

// Color returns the display color for the kind.
func (k ObstacleKind) Color() core.Color {
	switch k {
	case ObstacleTire:
		return core.ColorWhite
	case ObstacleCone:
		return core.ColorRed
	case ObstacleBarrier:
		return core.ColorYellow
	case ObstacleBox:
		return core.ColorMagenta
	case ObstacleSign:
		return core.ColorCyan
	case ObstacleRock:
		return core.ColorGreen
	default:
		return core.ColorDefault
	}
}

// Obstacle is a ground obstacle the runner must jump over. Its bottom edge
// stays on the ground line as it scrolls.
type Obstacle struct {
	X, Y float64
	W, H float64
	Kind ObstacleKind
}

// Rect returns the drawn bounds.
func (o Obstacle) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.W, o.H)
}

// Hitbox returns the collision bounds. Rocks are irregular, so only the
// middle 70% of their width collides.
func (o Obstacle) Hitbox() core.Rect {
	if o.Kind == ObstacleRock {
		return core.NewRect(o.X+o.W*0.15, o.Y, o.W*0.7, o.H)
	}
	return o.Rect()
}

// NewObstacle draws a random obstacle of a random kind at x. heightScale
// multiplies every height.
func NewObstacle(rng core.Rand, ground Ground, x, heightScale float64) Obstacle {
	kind := AllObstacles[rng.Intn(len(AllObstacles))]

	var w, h float64
	switch kind {
	case ObstacleTire:
		w, h = 35, 35
	case ObstacleCone:
		w, h = 25, 50
	case ObstacleBarrier:
		w = core.RandRange(rng, 35, 60)
		h = core.RandRange(rng, 40, 60)
	case ObstacleBox:
		w, h = 30, 35
	case ObstacleSign:
		w, h = 15, 55
	case ObstacleRock:
		w = core.RandRange(rng, 40, 55)
		h = core.RandRange(rng, 30, 45)
	}
	h *= heightScale

	return Obstacle{X: x, Y: ground.Y(x) - h, W: w, H: h, Kind: kind}
}

// Spawner decides when the next obstacle appears. The interval is redrawn
// after every spawn around the tier's base interval.
type Spawner struct {
	base   float64
	jitter float64
	timer  int
	next   float64
}

// NewSpawner creates a spawner for tier and draws the first interval.
func NewSpawner(rng core.Rand, tier config.RunnerTier, jitter float64) *Spawner {
	s := &Spawner{base: tier.SpawnInterval, jitter: jitter}
	s.redraw(rng)
	return s
}

func (s *Spawner) redraw(rng core.Rand) {
	s.next = s.base * (1 + core.RandRange(rng, -s.jitter, s.jitter))
}

// Tick advances the timer and reports whether an obstacle is due. When it is,
// the timer restarts with a fresh interval.
func (s *Spawner) Tick(rng core.Rand) bool {
	s.timer++
	if float64(s.timer) <= s.next {
		return false
	}
	s.timer = 0
	s.redraw(rng)
	return true
}

// Next returns the current interval in ticks.
func (s *Spawner) Next() float64 {
	return s.next
}

// spawnObstacle adds an obstacle at the right edge and maybe a pickup near it.
func (g *Game) spawnObstacle() {
	scale := g.heights.Scale(g.score, int(g.tick)) //#nosec G115 -- tick counts stay far below MaxInt
	obs := NewObstacle(g.rng, g.ground, g.cfg.Field.Width, scale)
	g.obstacles = append(g.obstacles, &obs)

	if g.rng.Float64() < g.cfg.Powerups.Chance {
		g.spawnPickup(obs)
	}
}

// moveObstacles scrolls obstacles by speed and drops the ones that left the
// field.
func (g *Game) moveObstacles(speed float64) {
	kept := g.obstacles[:0]
	for _, o := range g.obstacles {
		o.X -= speed
		o.Y = g.ground.Y(o.X) - o.H
		if o.X+o.W < 0 {
			continue
		}
		kept = append(kept, o)
	}
	clear(g.obstacles[len(kept):])
	g.obstacles = kept
}

// hitObstacle returns the index of the first obstacle touching the runner,
// or -1.
func (g *Game) hitObstacle() int {
	for i, o := range g.obstacles {
		if collides(g.player, o.Hitbox()) {
			return i
		}
	}
	return -1
}
