package grid

import "math"

// log2 returns the magnitude of a tile value. Values are powers of two so the result is exact.
func log2(v int) float64 {
	return math.Log2(float64(v))
}

// level returns the log2 value at pos, or 0 for empty and off-board cells.
func (g *Grid) level(pos Position) float64 {
	if t := g.CellContent(pos); t != nil {
		return log2(t.Value)
	}
	return 0
}

// Smoothness sums the negated log2 differences between each tile and the nearest
// occupied cell to its right and below. Boards of similar neighbours score closer to zero.
func (g *Grid) Smoothness() float64 {
	smoothness := 0.0
	for x := range Size {
		for y := range Size {
			t := g.cells[x][y]
			if t == nil {
				continue
			}
			value := log2(t.Value)
			for _, dir := range [2]Direction{Right, Down} {
				_, target := g.findFarthestPosition(t.Pos, dir.Vector())
				if other := g.CellContent(target); other != nil {
					smoothness -= math.Abs(value - log2(other.Value))
				}
			}
		}
	}
	return smoothness
}

// Islands counts groups of orthogonally connected tiles sharing one value.
func (g *Grid) Islands() int {
	var visited [Size][Size]bool

	var mark func(pos Position, value int)
	mark = func(pos Position, value int) {
		t := g.CellContent(pos)
		if t == nil || t.Value != value || visited[pos.X][pos.Y] {
			return
		}
		visited[pos.X][pos.Y] = true
		for _, dir := range Directions {
			mark(pos.Add(dir.Vector()), value)
		}
	}

	islands := 0
	for x := range Size {
		for y := range Size {
			t := g.cells[x][y]
			if t != nil && !visited[x][y] {
				islands++
				mark(t.Pos, t.Value)
			}
		}
	}
	return islands
}

// highestCell returns the position of the first strictly highest tile in x-major order,
// or (0,0) for an empty board.
func (g *Grid) highestCell() Position {
	var best Position
	highest := 0
	g.EachCell(func(x, y int, t *Tile) {
		if t != nil && t.Value > highest {
			highest = t.Value
			best = Position{X: x, Y: y}
		}
	})
	return best
}

// Monotonicity expands breadth-first from the highest tile and penalises every neighbour
// whose log2 value exceeds the cell it was reached from. Cells are marked visited one
// whole layer late, so a cell can still be scored from several cells of the previous
// layer. Returns the negated total increase.
func (g *Grid) Monotonicity() float64 {
	var marked, queued [Size][Size]bool

	start := g.highestCell()
	queue := []Position{start}
	queued[start.X][start.Y] = true
	markList := []Position{start}
	markAfter := 1
	increases := 0.0

	for len(queue) > 0 {
		markAfter--
		cell := queue[0]
		queue = queue[1:]

		markList = append(markList, cell)
		value := g.level(cell)

		for _, dir := range Directions {
			target := cell.Add(dir.Vector())
			if !g.WithinBounds(target) || marked[target.X][target.Y] {
				continue
			}
			if g.CellOccupied(target) {
				if tv := g.level(target); tv > value {
					increases += tv - value
				}
			}
			if !queued[target.X][target.Y] {
				queue = append(queue, target)
				queued[target.X][target.Y] = true
			}
		}

		if markAfter == 0 {
			for _, c := range markList {
				marked[c.X][c.Y] = true
			}
			markList = markList[:0]
			markAfter = len(queue)
		}
	}

	return -increases
}

// Monotonicity2 scores how consistently values rise or fall along each line, skipping
// empty cells. For each axis the better of the two directions counts, so a perfectly
// monotone board scores 0 and anything else is negative.
func (g *Grid) Monotonicity2() float64 {
	var totals [4]float64

	// Along y within each column.
	for x := range Size {
		scanLine(func(i int) Position { return Position{X: x, Y: i} }, g, &totals[0], &totals[1])
	}

	// Along x within each row.
	for y := range Size {
		scanLine(func(i int) Position { return Position{X: i, Y: y} }, g, &totals[2], &totals[3])
	}

	return math.Max(totals[0], totals[1]) + math.Max(totals[2], totals[3])
}

// scanLine walks one line from index 0, comparing each occupied cell with the next occupied
// one. Falls add to *dec, rises to *inc (both as negative amounts). When no further occupied
// cell exists the last cell of the line is compared instead.
func scanLine(at func(i int) Position, g *Grid, dec, inc *float64) {
	current := 0
	next := current + 1
	for next < Size {
		for next < Size && !g.CellOccupied(at(next)) {
			next++
		}
		if next >= Size {
			next--
		}
		currentValue := g.level(at(current))
		nextValue := g.level(at(next))
		if currentValue > nextValue {
			*dec += nextValue - currentValue
		} else if nextValue > currentValue {
			*inc += currentValue - nextValue
		}
		current = next
		next++
	}
}

// MaxValue returns log2 of the highest tile, or 0 for an empty board.
func (g *Grid) MaxValue() float64 {
	highest := g.MaxTile()
	if highest == 0 {
		return 0
	}
	return log2(highest)
}

// IsWin reports whether any tile has reached WinValue.
func (g *Grid) IsWin() bool {
	for x := range Size {
		for y := range Size {
			if t := g.cells[x][y]; t != nil && t.Value == WinValue {
				return true
			}
		}
	}
	return false
}

// Heuristics bundles every evaluator's output for one board.
type Heuristics struct {
	Smoothness    float64
	Monotonicity  float64
	Monotonicity2 float64
	Islands       int
	MaxValue      float64
	EmptyCells    int
	Win           bool
}

// Evaluate runs every evaluator on g. It never modifies g.
func Evaluate(g *Grid) Heuristics {
	return Heuristics{
		Smoothness:    g.Smoothness(),
		Monotonicity:  g.Monotonicity(),
		Monotonicity2: g.Monotonicity2(),
		Islands:       g.Islands(),
		MaxValue:      g.MaxValue(),
		EmptyCells:    len(g.AvailableCells()),
		Win:           g.IsWin(),
	}
}
