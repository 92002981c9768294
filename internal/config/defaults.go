package config

import (
	_ "embed"

	"github.com/digiresist/reboot-arcade/internal/progression"
)

//go:embed defaults/arcade.yaml
var defaultArcadeYAML []byte

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

//go:embed defaults/survival.yaml
var defaultSurvivalYAML []byte

// DefaultArcadeConfig returns the default Arcade Mode configuration.
func DefaultArcadeConfig() ArcadeConfig {
	return ArcadeConfig{
		Spawn: SpawnConfig{
			BaseIntervalMS: 2000,
			PerLevelMS:     200,
			MinIntervalMS:  500,
		},
		Speed: SpeedConfig{
			Base:        1.0,
			LevelFactor: 0.3,
			Jitter:      0.5,
		},
		Lives:      3,
		LevelEvery: 200,
		Combo:      progression.DefaultTuning(),
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnSpeedup:    0.3,
			},
		},
	}
}

// DefaultShooterConfig returns the default installer shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		Spawn: SpawnConfig{
			BaseIntervalMS: 800,
			PerLevelMS:     0,
			MinIntervalMS:  800,
		},
		Speed: SpeedConfig{
			Base:        0.5,
			LevelFactor: 0,
			Jitter:      1.5,
		},
		InstallSeconds:   20,
		TimeLimitSeconds: 40,
		Penalty:          5,
		EscapeY:          85,
		Combo:            progression.DefaultTuning(),
	}
}

// DefaultSurvivalConfig returns the default survival challenge configuration.
func DefaultSurvivalConfig() SurvivalConfig {
	return SurvivalConfig{
		Spawn: SpawnConfig{
			BaseIntervalMS: 600,
			PerLevelMS:     0,
			MinIntervalMS:  250,
		},
		Speed: SpeedConfig{
			Base:        1.5,
			LevelFactor: 0,
			Jitter:      1.0,
		},
		Lives:         3,
		PointsPerKill: 10,
		Combo:         progression.DefaultTuning(),
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 7200, // 2 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
				SpawnSpeedup:    0.4,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "arcade":
		return defaultArcadeYAML
	case "shooter":
		return defaultShooterYAML
	case "survival":
		return defaultSurvivalYAML
	default:
		return nil
	}
}
