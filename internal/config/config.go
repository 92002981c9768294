// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

import "github.com/digiresist/reboot-arcade/internal/progression"

// SpawnConfig defines how often targets appear.
type SpawnConfig struct {
	BaseIntervalMS int `yaml:"base_interval_ms"` // Interval at level 1
	PerLevelMS     int `yaml:"per_level_ms"`     // Shortening per level above 1
	MinIntervalMS  int `yaml:"min_interval_ms"`  // Floor the interval never drops below
}

// IntervalMS returns the spawn interval for the given level, floored.
func (s SpawnConfig) IntervalMS(level int) int {
	interval := s.BaseIntervalMS - (level-1)*s.PerLevelMS
	if interval < s.MinIntervalMS {
		interval = s.MinIntervalMS
	}
	return interval
}

// SpeedConfig defines how fast targets fall (field units per movement
// tick, one movement tick per 50ms equivalent).
type SpeedConfig struct {
	Base        float64 `yaml:"base"`
	LevelFactor float64 `yaml:"level_factor"`
	Jitter      float64 `yaml:"jitter"`
}

// ArcadeConfig contains all configuration for Arcade Mode.
type ArcadeConfig struct {
	Spawn      SpawnConfig        `yaml:"spawn"`
	Speed      SpeedConfig        `yaml:"speed"`
	Lives      int                `yaml:"lives"`
	LevelEvery int                `yaml:"level_every"` // Points per difficulty level
	Combo      progression.Tuning `yaml:"combo"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// ShooterConfig contains all configuration for the installer shooter.
type ShooterConfig struct {
	Spawn SpawnConfig `yaml:"spawn"`
	Speed SpeedConfig `yaml:"speed"`

	// The install bar fills in install_seconds of clean play; each
	// escaped threat rolls it back by penalty. The session fails if the
	// bar is not full after time_limit_seconds.
	InstallSeconds   int     `yaml:"install_seconds"`
	TimeLimitSeconds int     `yaml:"time_limit_seconds"`
	Penalty          float64 `yaml:"penalty"`

	// Threats count as through once they cross this boundary (the disk
	// sits above the bottom of the field).
	EscapeY float64 `yaml:"escape_y"`

	Combo progression.Tuning `yaml:"combo"`
}

// SurvivalConfig contains all configuration for the survival challenge.
type SurvivalConfig struct {
	Spawn SpawnConfig `yaml:"spawn"`
	Speed SpeedConfig `yaml:"speed"`

	Lives         int `yaml:"lives"`
	PointsPerKill int `yaml:"points_per_kill"`

	Combo      progression.Tuning `yaml:"combo"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}
