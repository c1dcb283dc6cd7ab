package grid

import (
	"strconv"
	"strings"
)

// Grid is the board state: a Size x Size array of optional tiles indexed [x][y],
// plus whose turn it is.
//
// Every stored tile's Pos equals the cell it is stored in.
type Grid struct {
	cells [Size][Size]*Tile

	// PlayerTurn is true while waiting for a player move and false while
	// waiting for the environment to spawn a tile.
	PlayerTurn bool
}

// New creates an empty grid waiting for the player.
func New() *Grid {
	return &Grid{PlayerTurn: true}
}

// WithinBounds reports whether pos lies on the board.
func (g *Grid) WithinBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < Size && pos.Y >= 0 && pos.Y < Size
}

// CellContent returns the tile at pos, or nil if the cell is empty or off the board.
func (g *Grid) CellContent(pos Position) *Tile {
	if !g.WithinBounds(pos) {
		return nil
	}
	return g.cells[pos.X][pos.Y]
}

// CellOccupied reports whether a tile sits at pos.
func (g *Grid) CellOccupied(pos Position) bool {
	return g.CellContent(pos) != nil
}

// CellAvailable reports whether pos holds no tile.
func (g *Grid) CellAvailable(pos Position) bool {
	return !g.CellOccupied(pos)
}

// InsertTile stores t at its recorded position, replacing any occupant.
func (g *Grid) InsertTile(t *Tile) {
	g.cells[t.Pos.X][t.Pos.Y] = t
}

// RemoveTile clears the cell at t's recorded position.
func (g *Grid) RemoveTile(t *Tile) {
	g.cells[t.Pos.X][t.Pos.Y] = nil
}

// MoveTile relocates t to pos and updates its recorded position.
func (g *Grid) MoveTile(t *Tile, pos Position) {
	g.cells[t.Pos.X][t.Pos.Y] = nil
	g.cells[pos.X][pos.Y] = t
	t.Pos = pos
}

// EachCell calls fn for every cell, x-major. t is nil for empty cells.
func (g *Grid) EachCell(fn func(x, y int, t *Tile)) {
	for x := range Size {
		for y := range Size {
			fn(x, y, g.cells[x][y])
		}
	}
}

// AvailableCells returns every empty position, x-major.
func (g *Grid) AvailableCells() []Position {
	var cells []Position
	g.EachCell(func(x, y int, t *Tile) {
		if t == nil {
			cells = append(cells, Position{X: x, Y: y})
		}
	})
	return cells
}

// CellsAvailable reports whether at least one cell is empty.
func (g *Grid) CellsAvailable() bool {
	for x := range Size {
		for y := range Size {
			if g.cells[x][y] == nil {
				return true
			}
		}
	}
	return false
}

// AnyAdjacentEqualPair reports whether two orthogonally adjacent tiles share a value.
func (g *Grid) AnyAdjacentEqualPair() bool {
	for x := range Size {
		for y := range Size {
			t := g.cells[x][y]
			if t == nil {
				continue
			}
			for _, dir := range Directions {
				other := g.CellContent(t.Pos.Add(dir.Vector()))
				if other != nil && other.Value == t.Value {
					return true
				}
			}
		}
	}
	return false
}

// MovesAvailable reports whether any move can still change the board.
// False is the game-over condition.
func (g *Grid) MovesAvailable() bool {
	return g.CellsAvailable() || g.AnyAdjacentEqualPair()
}

// Tiles returns the occupied tiles, x-major.
func (g *Grid) Tiles() []*Tile {
	var tiles []*Tile
	g.EachCell(func(_, _ int, t *Tile) {
		if t != nil {
			tiles = append(tiles, t)
		}
	})
	return tiles
}

// MaxTile returns the highest tile value, or 0 for an empty board.
func (g *Grid) MaxTile() int {
	highest := 0
	g.EachCell(func(_, _ int, t *Tile) {
		if t != nil && t.Value > highest {
			highest = t.Value
		}
	})
	return highest
}

// Rows returns the tile values row by row, 0 for empty cells.
func (g *Grid) Rows() [Size][Size]int {
	var rows [Size][Size]int
	g.EachCell(func(x, y int, t *Tile) {
		if t != nil {
			rows[y][x] = t.Value
		}
	})
	return rows
}

// Clone returns an independent copy of the grid. Tiles are copied by position
// and value; mutating the clone never affects g.
func (g *Grid) Clone() *Grid {
	c := &Grid{PlayerTurn: g.PlayerTurn}
	g.EachCell(func(x, y int, t *Tile) {
		if t != nil {
			c.cells[x][y] = t.clone()
		}
	})
	return c
}

// String renders the board row by row, "_" for empty cells.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := range Size {
		for x := range Size {
			if t := g.cells[x][y]; t != nil {
				sb.WriteString(strconv.Itoa(t.Value))
			} else {
				sb.WriteString("_")
			}
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
