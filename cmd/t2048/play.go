package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play 2048",
	Long: `Start a game of 2048 in this terminal.

Controls:
  Arrows/WASD/HJKL  - Slide tiles
  R                 - New game
  C                 - Keep playing after reaching 2048
  Tab               - Toggle the analysis panel
  Ctrl+O            - Scoreboard
  Ctrl+S            - Save the board to ~/.t2048/screenshots
  Q/Ctrl+C          - Quit

Difficulty options (chance of a spawned 4):
  easy   - 5%
  normal - 10%
  hard   - 25%

Examples:
  t2048 play
  t2048 play --difficulty hard
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, logger, err := settings("t2048")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
	}

	// Open score storage
	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var screenshots string
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		screenshots = filepath.Join(home, ".t2048", "screenshots")
	}

	// The TUI owns the terminal; only warnings and errors get through while it runs.
	if logger.GetLevel() < log.WarnLevel {
		logger.SetLevel(log.WarnLevel)
	}

	runErr := tui.Run(game.New(cfg), tui.Options{
		Store:         store,
		Logger:        logger,
		Player:        currentUser(),
		AllowContinue: cfg.Game.AllowContinue,
		Screenshots:   screenshots,
	}, rc)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// currentUser names the local player for the scoreboard.
func currentUser() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return ""
}
