// Package config provides YAML-based configuration loading for the game,
// the score store and logging.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Config contains all user-tunable settings.
type Config struct {
	Spawn   SpawnConfig   `yaml:"spawn"`
	Game    GameConfig    `yaml:"game"`
	Storage StorageConfig `yaml:"storage"`
	Log     LogConfig     `yaml:"log"`
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Chance of a 4 instead of a 2 (0.0-1.0)
	StartTiles      int     `yaml:"start_tiles"`      // Tiles placed on a fresh board
}

// GameConfig defines rule options of the driver.
type GameConfig struct {
	AllowContinue bool `yaml:"allow_continue"` // Offer to keep playing after 2048
}

// StorageConfig defines where scores are kept.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

var logLevels = []string{"debug", "info", "warn", "error", "fatal"}

// Validate checks that all values are within range.
func (c Config) Validate() error {
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("%w: spawn.four_probability %v not in [0, 1]", ErrInvalid, c.Spawn.FourProbability)
	}
	if c.Spawn.StartTiles < 0 || c.Spawn.StartTiles > grid.Size*grid.Size {
		return fmt.Errorf("%w: spawn.start_tiles %d not in [0, %d]", ErrInvalid, c.Spawn.StartTiles, grid.Size*grid.Size)
	}
	level := strings.ToLower(c.Log.Level)
	for _, l := range logLevels {
		if level == l {
			return nil
		}
	}
	return fmt.Errorf("%w: log.level %q (want one of %s)", ErrInvalid, c.Log.Level, strings.Join(logLevels, ", "))
}

// DifficultyPreset represents a named spawn difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// FourProbabilityForPreset returns the spawn probability of a 4 for a preset.
// Unknown presets return ok=false.
func FourProbabilityForPreset(preset DifficultyPreset) (p float64, ok bool) {
	switch preset {
	case DifficultyEasy:
		return 0.05, true
	case DifficultyNormal:
		return grid.DefaultFourProbability, true
	case DifficultyHard:
		return 0.25, true
	default:
		return 0, false
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	if preset == "" {
		return nil
	}
	p, ok := FourProbabilityForPreset(preset)
	if !ok {
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, preset)
	}
	cfg.Spawn.FourProbability = p
	return nil
}
