package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// validator is satisfied by every game config.
type validator interface {
	Validate() error
}

// LoadBreakout loads the brick-breaker configuration.
// Search order: customPath -> ~/.brickrun/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout", customPath, DefaultBreakoutConfig)
}

// LoadRunner loads the endless runner configuration.
// Search order: customPath -> ~/.brickrun/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	return load("runner", customPath, DefaultRunnerConfig)
}

// load decodes a config over the hardcoded defaults so partial files only
// override the keys they name. A broken custom path is an error; broken
// files found while searching are skipped.
func load[T validator](gameID, customPath string, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	if customPath != "" {
		cfg, err := decodeFile(customPath, defaults)
		if err != nil {
			return defaults(), err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := decodeFile(userCfgPath, defaults); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decodeFile(filepath.Join("configs", filename), defaults); err == nil {
		return cfg, nil
	}

	if cfg, err := decode(GetDefaultYAML(gameID), defaults); err == nil {
		return cfg, nil
	}
	return defaults(), nil
}

func decodeFile[T validator](path string, defaults func() T) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := decode(data, defaults)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func decode[T validator](data []byte, defaults func() T) (T, error) {
	cfg := defaults()
	if len(data) == 0 {
		return cfg, fmt.Errorf("empty config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brickrun", "configs", filename)
}
