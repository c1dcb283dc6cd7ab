package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvDBPath   = "T2048_DB"
	EnvLogLevel = "T2048_LOG_LEVEL"
)

// Load loads the configuration.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default.
// Keys missing from a file keep their default values. Environment overrides are applied last.
// It returns the path the config was read from ("" for the embedded default).
func Load(customPath string) (Config, string, error) {
	cfg, source, err := load(customPath)
	if err != nil {
		return cfg, source, err
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("config %s: %w", sourceName(source), err)
	}
	return cfg, source, nil
}

func load(customPath string) (Config, string, error) {
	cfg := Default()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, customPath, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, customPath, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if c, ok := tryFile(userCfgPath); ok {
			return c, userCfgPath, nil
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "t2048.yaml")
	if c, ok := tryFile(localPath); ok {
		return c, localPath, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), "", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "", nil
}

// tryFile parses path over the defaults. Unreadable or malformed files are skipped.
func tryFile(path string) (Config, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, false
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false
	}
	return cfg, true
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", filename)
}

func sourceName(source string) string {
	if source == "" {
		return "(embedded)"
	}
	return source
}
