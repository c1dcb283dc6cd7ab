package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

var evalCmd = &cobra.Command{
	Use:   "eval <board>",
	Short: "Analyze a board",
	Long: `Print every heuristic for a board and what each direction would do.

The board is 16 values in row-major order, 0, "_" or "." for an empty cell.
Values may be given as separate arguments or as one quoted string.

Examples:
  t2048 eval 2 2 4 8 4 2 4 8 8 8 16 32 64 32 16 2
  t2048 eval "2,0,0,0 0,0,0,0 0,0,0,0 0,0,0,4"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := grid.ParseBoard(strings.Join(args, " "))
		if err != nil {
			return err
		}
		writeEval(cmd.OutOrStdout(), g)
		return nil
	},
}

// writeEval prints the board, its heuristics, and a preview of each direction.
func writeEval(w io.Writer, g *grid.Grid) {
	fmt.Fprintln(w, g.String())
	writeHeuristics(w, "", grid.Evaluate(g))

	outcomes := game.Lookahead(g)
	best, ok := game.Best(outcomes)

	fmt.Fprintln(w)
	for _, o := range outcomes {
		if !o.Moved {
			fmt.Fprintf(w, "%-5s  no change\n", o.Dir)
			continue
		}
		mark := ""
		if ok && o.Dir == best.Dir {
			mark = "  (best)"
		}
		won := ""
		if o.Won {
			won = "  wins"
		}
		fmt.Fprintf(w, "%-5s  score %+d%s%s\n", o.Dir, o.Score, won, mark)
		writeHeuristics(w, "       ", o.Heuristics)
	}
	if !ok {
		fmt.Fprintln(w, "no moves available")
	}
}

func writeHeuristics(w io.Writer, indent string, h grid.Heuristics) {
	fmt.Fprintf(w, "%ssmoothness %.4g  monotonicity %.4g  monotonicity2 %.4g\n",
		indent, h.Smoothness, h.Monotonicity, h.Monotonicity2)
	fmt.Fprintf(w, "%sislands %d  max %.0f  empty %d  win %t\n",
		indent, h.Islands, h.MaxValue, h.EmptyCells, h.Win)
}
