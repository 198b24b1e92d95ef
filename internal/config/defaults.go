package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultBreakoutConfig returns the default brick-breaker configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{Width: 800, Height: 500},
		Paddle: BreakoutPaddle{
			Width:         120,
			Height:        12,
			BottomOffset:  40,
			Speed:         8,
			MaxDeflection: 6,
		},
		Ball: BreakoutBall{
			Radius:        8,
			Speed:         4,
			ResetOffset:   60,
			ReleaseSpread: 3,
		},
		Bricks: BreakoutBricks{
			Cols:         8,
			StartRows:    5,
			MaxRows:      8,
			Width:        80,
			Height:       20,
			Padding:      10,
			OffsetTop:    40,
			CollisionPad: 4,
			ReinforcedHP: 3,
		},
		Scoring: BreakoutScoring{
			Destroy:  10,
			Hit:      5,
			HitFlash: 10,
		},
		Gameplay: BreakoutGameplay{
			Lives:          3,
			LevelSpeedUp:   1.2,
			StaggerChance:  0.6,
			MinPowerBricks: 2,
			MaxPowerBricks: 8,
		},
		Powerups: BreakoutPowerups{
			Radius:        16,
			FallSpeed:     0.9,
			Duration:      600,
			EnlargeFactor: 1.6,
			SlowFactor:    0.6,
			ScoreBonus:    150,
		},
	}
}

// DefaultRunnerConfig returns the default endless runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Field: RunnerField{
			Width:    800,
			Height:   200,
			Baseline: 180,
			Slope:    20,
		},
		Player: RunnerPlayer{
			X:         50,
			Radius:    20,
			Gravity:   1.2,
			JumpPower: -18,
		},
		BaseSpeed: 5,
		Tiers: []RunnerTier{
			{Name: "easy", SpawnInterval: 100, SpeedRamp: 0.0005},
			{Name: "medium", SpawnInterval: 80, SpeedRamp: 0.001},
			{Name: "hard", SpawnInterval: 60, SpeedRamp: 0.0015},
			{Name: "insane", SpawnInterval: 45, SpeedRamp: 0.0025},
		},
		Scoring: RunnerScoring{
			FramesPerPoint: 6,
			SpawnJitter:    0.3,
		},
		Powerups: RunnerPowerups{
			Chance:            0.25,
			Size:              24,
			Retries:           5,
			MinOffset:         80,
			MaxOffset:         220,
			MaxLift:           70,
			SlowMoDuration:    300,
			SlowMoFactor:      0.5,
			DoublePtsDuration: 480,
		},
		Particles: RunnerParticles{
			Gravity:    0.15,
			Life:       30,
			DustCount:  6,
			BurstCount: 18,
		},
		Heights: ProgressionConfig{
			Type:       "score",
			MaxAt:      400,
			Multiplier: 0.8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout":
		return defaultBreakoutYAML
	case "runner":
		return defaultRunnerYAML
	default:
		return nil
	}
}
