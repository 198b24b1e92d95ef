// Package config provides YAML-based game configuration loading and
// score progression for the two simulations.
package config

import (
	"fmt"
	"strings"
)

// BreakoutConfig contains all configuration for the brick-breaker.
type BreakoutConfig struct {
	Field    FieldConfig      `yaml:"field"`
	Paddle   BreakoutPaddle   `yaml:"paddle"`
	Ball     BreakoutBall     `yaml:"ball"`
	Bricks   BreakoutBricks   `yaml:"bricks"`
	Scoring  BreakoutScoring  `yaml:"scoring"`
	Gameplay BreakoutGameplay `yaml:"gameplay"`
	Powerups BreakoutPowerups `yaml:"powerups"`
}

// FieldConfig is the size of the simulated world in world units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// BreakoutPaddle defines the paddle.
type BreakoutPaddle struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BottomOffset  float64 `yaml:"bottom_offset"` // paddle top sits this far above the floor
	Speed         float64 `yaml:"speed"`
	MaxDeflection float64 `yaml:"max_deflection"`
}

// BreakoutBall defines the ball.
type BreakoutBall struct {
	Radius        float64 `yaml:"radius"`
	Speed         float64 `yaml:"speed"`
	ResetOffset   float64 `yaml:"reset_offset"` // reset height above the floor
	ReleaseSpread float64 `yaml:"release_spread"`
}

// BreakoutBricks defines the brick grid.
type BreakoutBricks struct {
	Cols         int     `yaml:"cols"`
	StartRows    int     `yaml:"start_rows"`
	MaxRows      int     `yaml:"max_rows"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Padding      float64 `yaml:"padding"`
	OffsetTop    float64 `yaml:"offset_top"`
	CollisionPad float64 `yaml:"collision_pad"`
	ReinforcedHP int     `yaml:"reinforced_hits"`
}

// BreakoutScoring defines points and hit feedback.
type BreakoutScoring struct {
	Destroy  int `yaml:"destroy"`
	Hit      int `yaml:"hit"`
	HitFlash int `yaml:"hit_flash"`
}

// BreakoutGameplay defines lives and level pacing.
type BreakoutGameplay struct {
	Lives          int     `yaml:"lives"`
	LevelSpeedUp   float64 `yaml:"level_speed_up"`
	StaggerChance  float64 `yaml:"stagger_chance"`
	MinPowerBricks int     `yaml:"min_powerup_bricks"`
	MaxPowerBricks int     `yaml:"max_powerup_bricks"`
}

// BreakoutPowerups defines falling pickups and their effects.
type BreakoutPowerups struct {
	Radius        float64 `yaml:"radius"`
	FallSpeed     float64 `yaml:"fall_speed"`
	Duration      int     `yaml:"duration"` // ticks
	EnlargeFactor float64 `yaml:"enlarge_factor"`
	SlowFactor    float64 `yaml:"slow_factor"`
	ScoreBonus    int     `yaml:"score_bonus"`
}

// RunnerConfig contains all configuration for the endless runner.
type RunnerConfig struct {
	Field     RunnerField       `yaml:"field"`
	Player    RunnerPlayer      `yaml:"player"`
	BaseSpeed float64           `yaml:"base_speed"`
	Tiers     []RunnerTier      `yaml:"tiers"`
	Scoring   RunnerScoring     `yaml:"scoring"`
	Powerups  RunnerPowerups    `yaml:"powerups"`
	Particles RunnerParticles   `yaml:"particles"`
	Heights   ProgressionConfig `yaml:"heights"`
}

// RunnerField is the world size plus the sloped ground line.
type RunnerField struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Baseline float64 `yaml:"baseline"`
	Slope    float64 `yaml:"slope"`
}

// RunnerPlayer defines the ball the player controls.
type RunnerPlayer struct {
	X         float64 `yaml:"x"`
	Radius    float64 `yaml:"radius"`
	Gravity   float64 `yaml:"gravity"`
	JumpPower float64 `yaml:"jump_power"`
}

// RunnerTier is a named difficulty: a base spawn interval in ticks and a
// per-tick speed ramp.
type RunnerTier struct {
	Name          string  `yaml:"name"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	SpeedRamp     float64 `yaml:"speed_ramp"`
}

// RunnerScoring defines the passive score clock.
type RunnerScoring struct {
	FramesPerPoint int     `yaml:"frames_per_point"`
	SpawnJitter    float64 `yaml:"spawn_jitter"` // fraction of the base interval
}

// RunnerPowerups defines pickups spawned alongside obstacles.
type RunnerPowerups struct {
	Chance            float64 `yaml:"chance"`
	Size              float64 `yaml:"size"`
	Retries           int     `yaml:"retries"`
	MinOffset         float64 `yaml:"min_offset"`
	MaxOffset         float64 `yaml:"max_offset"`
	MaxLift           float64 `yaml:"max_lift"`
	SlowMoDuration    int     `yaml:"slowmo_duration"`
	SlowMoFactor      float64 `yaml:"slowmo_factor"`
	DoublePtsDuration int     `yaml:"doublepts_duration"`
}

// RunnerParticles defines cosmetic particles.
type RunnerParticles struct {
	Gravity    float64 `yaml:"gravity"`
	Life       int     `yaml:"life"`
	DustCount  int     `yaml:"dust_count"`
	BurstCount int     `yaml:"burst_count"`
}

// ProgressionConfig defines how a parameter grows with score or time.
type ProgressionConfig struct {
	Type       string  `yaml:"type"`       // "score", "time", or "none"
	MaxAt      int     `yaml:"max_at"`     // score/ticks at which the maximum is reached
	Multiplier float64 `yaml:"multiplier"` // added to 1.0 at the maximum
}

// DefaultTier is used when no tier is requested.
const DefaultTier = "easy"

// Tier returns the tier called name. Matching is case-insensitive and an
// empty name selects DefaultTier.
func (c RunnerConfig) Tier(name string) (RunnerTier, error) {
	if name == "" {
		name = DefaultTier
	}
	for _, t := range c.Tiers {
		if strings.EqualFold(t.Name, name) {
			return t, nil
		}
	}
	return RunnerTier{}, fmt.Errorf("config: unknown runner tier %q", name)
}

// TierNames lists tiers in configured order.
func (c RunnerConfig) TierNames() []string {
	names := make([]string, len(c.Tiers))
	for i, t := range c.Tiers {
		names[i] = t.Name
	}
	return names
}

// Validate rejects configs that would break simulation invariants.
func (c BreakoutConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: breakout field must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Width > c.Field.Width:
		return fmt.Errorf("config: breakout paddle width %v out of range", c.Paddle.Width)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("config: breakout ball radius must be positive")
	case c.Bricks.Cols <= 0 || c.Bricks.StartRows <= 0 || c.Bricks.MaxRows < c.Bricks.StartRows:
		return fmt.Errorf("config: breakout brick grid %dx%d..%d invalid", c.Bricks.Cols, c.Bricks.StartRows, c.Bricks.MaxRows)
	case c.Gameplay.Lives <= 0:
		return fmt.Errorf("config: breakout needs at least one life")
	case c.Gameplay.MinPowerBricks > c.Gameplay.MaxPowerBricks:
		return fmt.Errorf("config: breakout powerup brick range %d..%d invalid", c.Gameplay.MinPowerBricks, c.Gameplay.MaxPowerBricks)
	case c.Powerups.Duration <= 0:
		return fmt.Errorf("config: breakout powerup duration must be positive")
	}
	return nil
}

// Validate rejects configs that would break simulation invariants.
func (c RunnerConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: runner field must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	case c.Player.Radius <= 0:
		return fmt.Errorf("config: runner radius must be positive")
	case len(c.Tiers) == 0:
		return fmt.Errorf("config: runner needs at least one tier")
	case c.Scoring.FramesPerPoint <= 0:
		return fmt.Errorf("config: runner frames_per_point must be positive")
	case c.Powerups.SlowMoDuration <= 0 || c.Powerups.DoublePtsDuration <= 0:
		return fmt.Errorf("config: runner powerup durations must be positive")
	case c.Particles.Life <= 0:
		return fmt.Errorf("config: runner particle life must be positive")
	}
	for _, t := range c.Tiers {
		if t.SpawnInterval <= 0 {
			return fmt.Errorf("config: runner tier %q needs a positive spawn interval", t.Name)
		}
	}
	return nil
}
