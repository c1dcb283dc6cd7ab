package game

import (
	"testing"

	"github.com/vovakirdan/tui-2048/internal/grid"
)

func TestLookahead(t *testing.T) {
	g := grid.MustFromRows([][]int{
		{2, 2, 4, 8},
		{4, 2, 4, 8},
		{8, 8, 16, 32},
		{64, 32, 16, 2},
	})
	before := g.Rows()

	out := Lookahead(g)

	wantScores := map[grid.Direction]int{grid.Up: 60, grid.Right: 20, grid.Down: 60, grid.Left: 20}
	for i, o := range out {
		if o.Dir != grid.Directions[i] {
			t.Errorf("outcome %d is for %v, want %v", i, o.Dir, grid.Directions[i])
		}
		if !o.Moved {
			t.Errorf("%v should move", o.Dir)
		}
		if o.Score != wantScores[o.Dir] {
			t.Errorf("%v score = %d, want %d", o.Dir, o.Score, wantScores[o.Dir])
		}
	}

	if g.Rows() != before {
		t.Error("Lookahead modified the input board")
	}

	best, ok := Best(out)
	if !ok || best.Score != 60 {
		t.Errorf("Best() = %+v, %v; want a 60-point move", best, ok)
	}
}

func TestLookaheadStuckBoard(t *testing.T) {
	g := grid.MustFromRows([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})

	out := Lookahead(g)
	for _, o := range out {
		if o.Moved || o.Score != 0 {
			t.Errorf("%v on a stuck board = %+v", o.Dir, o)
		}
	}
	if _, ok := Best(out); ok {
		t.Error("Best() should report no move on a stuck board")
	}
}

func TestLookaheadEmptyCellsAfterMerge(t *testing.T) {
	g := grid.MustFromRows([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})

	out := Lookahead(g)
	left := out[3]
	if left.Dir != grid.Left || left.Heuristics.EmptyCells != 15 {
		t.Errorf("Left outcome = %+v, want 15 empty cells", left)
	}
	// The row sits on the top edge.
	if out[0].Moved {
		t.Error("Up should not move a row already at the top")
	}
	if !out[2].Moved {
		t.Error("Down should move the row")
	}
}
