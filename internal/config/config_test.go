package config

import (
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	breakout, err := decode(defaultBreakoutYAML, func() BreakoutConfig { return BreakoutConfig{} })
	if err != nil {
		t.Fatalf("embedded breakout.yaml invalid: %v", err)
	}
	if !reflect.DeepEqual(breakout, DefaultBreakoutConfig()) {
		t.Errorf("embedded breakout defaults drifted:\n got %+v\nwant %+v", breakout, DefaultBreakoutConfig())
	}

	runner, err := decode(defaultRunnerYAML, func() RunnerConfig { return RunnerConfig{} })
	if err != nil {
		t.Fatalf("embedded runner.yaml invalid: %v", err)
	}
	if !reflect.DeepEqual(runner, DefaultRunnerConfig()) {
		t.Errorf("embedded runner defaults drifted:\n got %+v\nwant %+v", runner, DefaultRunnerConfig())
	}
}

func TestRunnerTiers(t *testing.T) {
	cfg := DefaultRunnerConfig()

	tests := []struct {
		name     string
		interval float64
		ramp     float64
	}{
		{"easy", 100, 0.0005},
		{"medium", 80, 0.001},
		{"hard", 60, 0.0015},
		{"INSANE", 45, 0.0025},
		{"", 100, 0.0005},
	}
	for _, tc := range tests {
		tier, err := cfg.Tier(tc.name)
		if err != nil {
			t.Errorf("Tier(%q) failed: %v", tc.name, err)
			continue
		}
		if tier.SpawnInterval != tc.interval || tier.SpeedRamp != tc.ramp {
			t.Errorf("Tier(%q) = %+v, expected interval %v ramp %v", tc.name, tier, tc.interval, tc.ramp)
		}
	}

	if _, err := cfg.Tier("nightmare"); err == nil {
		t.Error("expected an error for an unknown tier")
	}
	if got := cfg.TierNames(); !reflect.DeepEqual(got, []string{"easy", "medium", "hard", "insane"}) {
		t.Errorf("TierNames() = %v", got)
	}
}

func TestLoadCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  lives: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout() failed: %v", err)
	}
	if cfg.Gameplay.Lives != 5 {
		t.Errorf("Lives = %d, expected 5", cfg.Gameplay.Lives)
	}
	if cfg.Paddle.Width != 120 || cfg.Bricks.Cols != 8 {
		t.Error("keys absent from the file should keep their defaults")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("tiers: [this is: not valid"), 0o644)
	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("tiers: []\n"), 0o644)

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml")},
		{"bad yaml", bad},
		{"fails validation", invalid},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadRunner(tc.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !reflect.DeepEqual(cfg, DefaultRunnerConfig()) {
				t.Error("a failed load should hand back the defaults")
			}
		})
	}
}

func TestLoadWithoutCustomPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := LoadRunner("")
	if err != nil {
		t.Fatalf("LoadRunner() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("loaded config invalid: %v", err)
	}
}

func TestHeightProgression(t *testing.T) {
	p := NewProgression(DefaultRunnerConfig().Heights)
	if !p.IsEnabled() {
		t.Fatal("height progression should be enabled")
	}

	for _, score := range []int{0, 1, 100, 250, 399, 400, 401, 1000, 100000} {
		want := 1 + math.Min(float64(score)/500, 0.8)
		if got := p.Scale(score, 0); math.Abs(got-want) > 1e-9 {
			t.Errorf("Scale(%d) = %v, expected %v", score, got, want)
		}
	}
}

func TestProgressionTypes(t *testing.T) {
	tests := []struct {
		cfg   ProgressionConfig
		score int
		ticks int
		want  float64
	}{
		{ProgressionConfig{Type: "time", MaxAt: 100, Multiplier: 1}, 999, 50, 1.5},
		{ProgressionConfig{Type: "none", MaxAt: 100, Multiplier: 1}, 999, 999, 1},
		{ProgressionConfig{Type: "score", MaxAt: 0, Multiplier: 2}, 5, 0, 3},
	}
	for _, tc := range tests {
		if got := NewProgression(tc.cfg).Scale(tc.score, tc.ticks); got != tc.want {
			t.Errorf("%+v: Scale(%d, %d) = %v, expected %v", tc.cfg, tc.score, tc.ticks, got, tc.want)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	b := DefaultBreakoutConfig()
	b.Paddle.Width = 900
	if b.Validate() == nil {
		t.Error("paddle wider than the field should be rejected")
	}

	r := DefaultRunnerConfig()
	r.Tiers[0].SpawnInterval = 0
	if r.Validate() == nil {
		t.Error("zero spawn interval should be rejected")
	}
}
