package config

import "math"

// Progression turns a score or tick count into a growing multiplier.
type Progression struct {
	cfg ProgressionConfig
}

// NewProgression creates a progression from cfg.
func NewProgression(cfg ProgressionConfig) *Progression {
	return &Progression{cfg: cfg}
}

// IsEnabled returns whether the multiplier can change.
func (p *Progression) IsEnabled() bool {
	return p.cfg.Type == "score" || p.cfg.Type == "time"
}

// Level returns progress in [0, 1] for the given score and ticks.
func (p *Progression) Level(score int, ticks int) float64 {
	maxAt := float64(p.cfg.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch p.cfg.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return 0
	}
	return clampF(progress, 0.0, 1.0)
}

// Scale returns 1 + level*multiplier.
func (p *Progression) Scale(score int, ticks int) float64 {
	return 1.0 + p.Level(score, ticks)*p.cfg.Multiplier
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
