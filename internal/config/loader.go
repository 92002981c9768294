package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadArcade loads Arcade Mode configuration.
// Search order: customPath -> ~/.reboot/configs/arcade.yaml -> ./configs/arcade.yaml -> embedded default
func LoadArcade(customPath string) (ArcadeConfig, error) {
	cfg := DefaultArcadeConfig()
	if err := load("arcade.yaml", customPath, defaultArcadeYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadShooter loads installer shooter configuration.
// Search order: customPath -> ~/.reboot/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default
func LoadShooter(customPath string) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := load("shooter.yaml", customPath, defaultShooterYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadSurvival loads survival challenge configuration.
// Search order: customPath -> ~/.reboot/configs/survival.yaml -> ./configs/survival.yaml -> embedded default
func LoadSurvival(customPath string) (SurvivalConfig, error) {
	cfg := DefaultSurvivalConfig()
	if err := load("survival.yaml", customPath, defaultSurvivalYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// load unmarshals the first config source that resolves, on top of the
// hardcoded defaults already present in out.
func load(filename, customPath string, embedded []byte, out any) error {
	// Custom path is authoritative: failures there are errors.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	// Use embedded default YAML; hardcoded defaults remain if it fails
	_ = yaml.Unmarshal(embedded, out)
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".reboot", "configs", filename)
}

// ApplyArcadePreset modifies the config based on a difficulty preset.
func ApplyArcadePreset(cfg *ArcadeConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Lives = 5
		cfg.Spawn.BaseIntervalMS = 2500
	case DifficultyHard:
		cfg.Lives = 2
		cfg.Spawn.BaseIntervalMS = 1500
		cfg.Speed.Base = 1.3
	}
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
// The install bar fills at a constant rate, so normal and fixed both
// keep the base config.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Penalty = 3
		cfg.TimeLimitSeconds = 50
	case DifficultyHard:
		cfg.Penalty = 8
		cfg.TimeLimitSeconds = 30
		cfg.Speed.Jitter = 2.0
	}
}

// ApplySurvivalPreset modifies the config based on a difficulty preset.
func ApplySurvivalPreset(cfg *SurvivalConfig, preset DifficultyPreset) {
	ApplyPreset(&cfg.Difficulty, preset)
	switch preset {
	case DifficultyEasy:
		cfg.Lives = 5
	case DifficultyHard:
		cfg.Lives = 2
		cfg.Speed.Base = 2.0
	}
}
