package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Spawn: SpawnConfig{
			FourProbability: grid.DefaultFourProbability,
			StartTiles:      grid.StartTiles,
		},
		Game: GameConfig{
			AllowContinue: true,
		},
		Storage: StorageConfig{
			DBPath: "~/.t2048/scores.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
