// t2048 is the 2048 sliding-tile puzzle for the terminal, with a board
// analyzer and an SSH server for remote play.
//
// Usage:
//
//	t2048 play               - Play in this terminal
//	t2048 serve              - Start SSH server for remote play
//	t2048 scores             - Show high scores
//	t2048 eval <16 values>   - Analyze a board
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.t2048/scores.db)
//	--config <path>      - Use a specific config file
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/logging"
)

var (
	// Global flags
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagLogLevel   string
	flagDifficulty string
)

func main() {
	// A missing .env file is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `2048 is the sliding-tile puzzle: merge equal tiles to reach 2048.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  eval     - Print heuristics and one-move previews for a board

Examples:
  t2048 play
  t2048 play --seed 42 --difficulty hard
  t2048 serve --ssh :2222
  t2048 scores --limit 20
  t2048 eval "2 2 4 8  4 2 4 8  8 8 16 32  64 32 16 2"`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Spawn preset: easy, normal, hard")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(evalCmd)
}

// settings resolves the config file, flag overrides, and the logger shared by all commands.
func settings(prefix string) (config.Config, *log.Logger, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	if err := config.ApplyPreset(&cfg, config.DifficultyPreset(flagDifficulty)); err != nil {
		return cfg, nil, err
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, err
	}

	logger, err := logging.New(cfg.Log.Level, prefix)
	if err != nil {
		return cfg, nil, err
	}

	if source == "" {
		source = "(embedded)"
	}
	logger.Debug("config loaded", "source", source, "db", cfg.Storage.DBPath,
		"four_probability", cfg.Spawn.FourProbability)

	return cfg, logger, nil
}
