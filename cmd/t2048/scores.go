package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top results and overall statistics.

Examples:
  t2048 scores
  t2048 scores --limit 25
  t2048 scores --tui
  t2048 scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of results to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded results")
}

func runScores(cmd *cobra.Command, _ []string) {
	cfg, logger, err := settings("t2048")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.Clear(); err != nil {
			logger.Error("could not clear scores", "error", err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), "All scores deleted.")

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			logger.Error("scoreboard failed", "error", err)
		}

	default:
		if err := printScores(cmd.OutOrStdout(), store, flagScoresLimit); err != nil {
			logger.Error("could not read scores", "error", err)
		}
	}
}

// printScores writes the top results and a stats summary to w.
func printScores(w io.Writer, store *storage.Store, limit int) error {
	results, err := store.TopResults(limit)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "High Scores - 2048")
	fmt.Fprintln(w)

	if len(results) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Play 't2048 play' to set the first high score!")
		return nil
	}

	// Print header
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "Rank", "Score", "Tile", "Moves", "Player", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "----")

	for i, r := range results {
		tile := fmt.Sprintf("%d", r.MaxTile)
		if r.Won {
			tile += "*"
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-6s  %-6d  %-12s  %s\n",
			i+1, r.Score, tile, r.Moves, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	st, err := store.Stats()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Games: %d  Wins: %d  Average: %.0f  Best tile: %d\n",
		st.HighScore, st.Games, st.Wins, st.AvgScore, st.BestTile)
	return nil
}
