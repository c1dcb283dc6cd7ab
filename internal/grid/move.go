package grid

// MoveResult reports the outcome of a move.
type MoveResult struct {
	Moved bool // Whether any tile changed position
	Score int  // Sum of the values created by merges this move
	Won   bool // Whether a merge produced WinValue
}

// traversals holds the order in which columns and rows are visited during a move.
type traversals struct {
	x [Size]int
	y [Size]int
}

// buildTraversals orders cells so the ones farthest in the direction of travel come first.
// A tile then never slides through one that has not settled yet.
func buildTraversals(v Position) traversals {
	var tr traversals
	for i := range Size {
		tr.x[i] = i
		tr.y[i] = i
	}
	if v.X == 1 {
		reverse(&tr.x)
	}
	if v.Y == 1 {
		reverse(&tr.y)
	}
	return tr
}

func reverse(a *[Size]int) {
	for i, j := 0, Size-1; i < j; i, j = i+1, j-1 {
		a[i], a[j] = a[j], a[i]
	}
}

// findFarthestPosition walks from cell along v while the next cell is on the board and empty.
// farthest is the last empty cell reached (cell itself if none); next is the first blocked
// or off-board cell.
func (g *Grid) findFarthestPosition(cell, v Position) (farthest, next Position) {
	next = cell
	for {
		farthest = next
		next = farthest.Add(v)
		if !g.WithinBounds(next) || g.CellOccupied(next) {
			return farthest, next
		}
	}
}

// prepareTiles clears merge info and records every tile's pre-move position.
func (g *Grid) prepareTiles() {
	g.EachCell(func(_, _ int, t *Tile) {
		if t != nil {
			t.MergedFrom = nil
			t.savePosition()
		}
	})
}

// Move slides every tile in dir, merging equal neighbours at most once per tile.
// A move that changes nothing is a valid outcome with Moved false.
func (g *Grid) Move(dir Direction) MoveResult {
	var result MoveResult

	v := dir.Vector()
	tr := buildTraversals(v)

	g.prepareTiles()

	for _, x := range tr.x {
		for _, y := range tr.y {
			cell := Position{X: x, Y: y}
			tile := g.cells[x][y]
			if tile == nil {
				continue
			}

			farthest, nextPos := g.findFarthestPosition(cell, v)
			next := g.CellContent(nextPos)

			if next != nil && next.Value == tile.Value && next.MergedFrom == nil {
				merged := NewTile(nextPos, tile.Value*2)
				merged.MergedFrom = &[2]MergeSource{
					{Value: tile.Value, From: tile.origin()},
					{Value: next.Value, From: next.origin()},
				}

				g.InsertTile(merged)
				g.RemoveTile(tile)

				// The consumed tile converges on the merge cell.
				tile.Pos = nextPos

				result.Score += merged.Value
				if merged.Value == WinValue {
					result.Won = true
				}
			} else {
				g.MoveTile(tile, farthest)
			}

			if tile.Pos != cell {
				g.PlayerTurn = false
				result.Moved = true
			}
		}
	}

	return result
}
