package grid

import (
	"testing"
)

func TestCellContentOffBoard(t *testing.T) {
	g := MustFromRows([][]int{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	})

	tests := []struct {
		name string
		pos  Position
		want int // 0 = empty
	}{
		{"top-left tile", Position{0, 0}, 2},
		{"bottom-right tile", Position{3, 3}, 4},
		{"empty cell", Position{1, 1}, 0},
		{"left of board", Position{-1, 0}, 0},
		{"above board", Position{0, -1}, 0},
		{"right of board", Position{4, 3}, 0},
		{"below board", Position{3, 4}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := 0
			if tile := g.CellContent(tc.pos); tile != nil {
				got = tile.Value
			}
			if got != tc.want {
				t.Errorf("CellContent(%v) = %d, want %d", tc.pos, got, tc.want)
			}
		})
	}
}

func TestMoveTileUpdatesPosition(t *testing.T) {
	g := New()
	tile := NewTile(Position{1, 1}, 2)
	g.InsertTile(tile)

	g.MoveTile(tile, Position{3, 1})

	if g.CellOccupied(Position{1, 1}) {
		t.Error("old cell should be empty after MoveTile")
	}
	if g.CellContent(Position{3, 1}) != tile {
		t.Error("tile should be stored at the new cell")
	}
	if tile.Pos != (Position{3, 1}) {
		t.Errorf("tile.Pos = %v, want {3 1}", tile.Pos)
	}
}

func TestInsertRemoveTile(t *testing.T) {
	g := New()
	tile := NewTile(Position{2, 3}, 8)
	g.InsertTile(tile)

	if !g.CellOccupied(Position{2, 3}) {
		t.Fatal("cell should be occupied after InsertTile")
	}

	g.RemoveTile(tile)
	if g.CellOccupied(Position{2, 3}) {
		t.Error("cell should be empty after RemoveTile")
	}
}

func TestAvailableCells(t *testing.T) {
	g := MustFromRows([][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 0, 2, 4},
		{4, 2, 4, 0},
	})

	cells := g.AvailableCells()
	want := []Position{{1, 2}, {3, 3}}

	if len(cells) != len(want) {
		t.Fatalf("AvailableCells() = %v, want %v", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("AvailableCells()[%d] = %v, want %v", i, cells[i], want[i])
		}
	}
	if !g.CellsAvailable() {
		t.Error("CellsAvailable() should be true")
	}
}

func TestNoMovesLeft(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]int
		available bool
		pair      bool
	}{
		{
			name: "full checkerboard",
			rows: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			available: false,
			pair:      false,
		},
		{
			name: "full with horizontal pair",
			rows: [][]int{
				{2, 2, 8, 4},
				{4, 8, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 2},
			},
			available: false,
			pair:      true,
		},
		{
			name: "full with vertical pair",
			rows: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 8},
				{4, 2, 4, 8},
			},
			available: false,
			pair:      true,
		},
		{
			name: "one empty cell",
			rows: [][]int{
				{2, 4, 2, 4},
				{4, 2, 4, 2},
				{2, 4, 2, 4},
				{4, 2, 4, 0},
			},
			available: true,
			pair:      false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := MustFromRows(tc.rows)
			if got := g.CellsAvailable(); got != tc.available {
				t.Errorf("CellsAvailable() = %v, want %v", got, tc.available)
			}
			if got := g.AnyAdjacentEqualPair(); got != tc.pair {
				t.Errorf("AnyAdjacentEqualPair() = %v, want %v", got, tc.pair)
			}
			if got := g.MovesAvailable(); got != (tc.available || tc.pair) {
				t.Errorf("MovesAvailable() = %v, want %v", got, tc.available || tc.pair)
			}

			// No direction may change a board with no moves left.
			if !g.MovesAvailable() {
				for _, dir := range Directions {
					if res := g.Clone().Move(dir); res.Moved {
						t.Errorf("Move(%v) moved on a board with no moves left", dir)
					}
				}
			}
		})
	}
}

func TestCloneIsIndependent(t *testing.T) {
	src := MustFromRows([][]int{
		{2, 2, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 8, 0},
		{0, 0, 0, 16},
	})
	src.PlayerTurn = false
	before := src.Rows()

	c := src.Clone()
	if c.PlayerTurn != src.PlayerTurn {
		t.Errorf("clone PlayerTurn = %v, want %v", c.PlayerTurn, src.PlayerTurn)
	}
	if c.Rows() != before {
		t.Fatalf("clone rows = %v, want %v", c.Rows(), before)
	}

	for _, dir := range Directions {
		c.Move(dir)
	}
	c.InsertTile(NewTile(Position{1, 2}, 32))

	if src.Rows() != before {
		t.Errorf("source changed after mutating clone: got %v, want %v", src.Rows(), before)
	}
	for _, tile := range c.Tiles() {
		if src.CellContent(tile.Pos) == tile {
			t.Errorf("clone shares tile %v with source", tile.Pos)
		}
	}
}

func TestCloneDropsProvenance(t *testing.T) {
	g := MustFromRows([][]int{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	})
	g.Move(Left)

	c := g.Clone()
	for _, tile := range c.Tiles() {
		if tile.Previous != nil || tile.MergedFrom != nil {
			t.Errorf("cloned tile at %v carries provenance", tile.Pos)
		}
	}
}

func TestFromRowsRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
	}{
		{"too few rows", [][]int{{0, 0, 0, 0}}},
		{"short row", [][]int{{0, 0, 0, 0}, {0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}},
		{"not a power of two", [][]int{{3, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}},
		{"value one", [][]int{{1, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}},
		{"negative", [][]int{{-2, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := FromRows(tc.rows); err == nil {
				t.Error("FromRows() should fail")
			}
		})
	}
}

func TestParseBoard(t *testing.T) {
	g, err := ParseBoard("2 2 0 0, 0 4 _ 0\n0 0 . 8 0 0 0 2048")
	if err != nil {
		t.Fatalf("ParseBoard() failed: %v", err)
	}

	want := [Size][Size]int{
		{2, 2, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 0, 8},
		{0, 0, 0, 2048},
	}
	if g.Rows() != want {
		t.Errorf("ParseBoard rows = %v, want %v", g.Rows(), want)
	}

	if _, err := ParseBoard("2 2 2"); err == nil {
		t.Error("ParseBoard() should reject short input")
	}
	if _, err := ParseBoard("2 x 0 0 0 0 0 0 0 0 0 0 0 0 0 0"); err == nil {
		t.Error("ParseBoard() should reject non-numeric input")
	}
}

func TestString(t *testing.T) {
	g := MustFromRows([][]int{
		{2, 0, 0, 0},
		{0, 4, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 1024},
	})

	want := "2 _ _ _ \n_ 4 _ _ \n_ _ _ _ \n_ _ _ 1024 \n"
	if got := g.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
