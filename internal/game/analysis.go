package game

import "github.com/vovakirdan/tui-2048/internal/grid"

// Outcome is the result of trying one direction on a copy of a board.
type Outcome struct {
	Dir        grid.Direction
	Moved      bool
	Score      int
	Won        bool
	Heuristics grid.Heuristics // Of the board after the move, before any spawn
}

// Lookahead tries every direction on a clone of g and reports what each would do.
// g itself is left untouched.
func Lookahead(g *grid.Grid) [4]Outcome {
	var out [4]Outcome
	for i, dir := range grid.Directions {
		c := g.Clone()
		res := c.Move(dir)
		out[i] = Outcome{
			Dir:        dir,
			Moved:      res.Moved,
			Score:      res.Score,
			Won:        res.Won,
			Heuristics: grid.Evaluate(c),
		}
	}
	return out
}

// Best returns the moving outcome with the highest score, preferring the
// smoother board on ties. ok is false when no direction moves.
func Best(outcomes [4]Outcome) (best Outcome, ok bool) {
	for _, o := range outcomes {
		if !o.Moved {
			continue
		}
		if !ok || o.Score > best.Score ||
			(o.Score == best.Score && o.Heuristics.Smoothness > best.Heuristics.Smoothness) {
			best, ok = o, true
		}
	}
	return best, ok
}
