package game

import "github.com/vovakirdan/tui-2048/internal/grid"

// StateType represents the current game state.
type StateType string

const (
	StatePlaying     StateType = "playing"
	StateWon         StateType = "won"
	StateContinuing  StateType = "continuing"
	StateGameOver    StateType = "game_over"
	StatePausedSmall StateType = "paused_small_window"
)

// TileView is a tile as the renderer sees it after a move.
type TileView struct {
	Pos   grid.Position
	Value int

	// Previous is where the tile slid from; nil for new and merged tiles.
	Previous *grid.Position

	// MergedFrom lists the two tiles consumed to create this one.
	MergedFrom []grid.MergeSource
}

// IsNew reports whether the tile appeared this turn by spawning.
func (t TileView) IsNew() bool {
	return t.Previous == nil && len(t.MergedFrom) == 0
}

// IsMerged reports whether the tile was created by a merge this turn.
func (t TileView) IsMerged() bool {
	return len(t.MergedFrom) > 0
}

// Moved reports whether the tile slid to a new cell this turn.
func (t TileView) Moved() bool {
	return t.Previous != nil && *t.Previous != t.Pos
}

// Snapshot captures the complete game state for rendering, determinism testing and replay.
type Snapshot struct {
	Seed        int64
	Score       int
	Best        int
	Moves       int
	Board       [grid.Size][grid.Size]int // Board[y][x], 0 for empty
	Tiles       []TileView                // Column-major order
	MaxTile     int
	Over        bool
	Won         bool
	KeepPlaying bool
	State       StateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.over:
		state = StateGameOver
	case g.won && g.keepPlaying:
		state = StateContinuing
	case g.won:
		state = StateWon
	}

	var tiles []TileView
	g.grid.EachCell(func(_, _ int, t *grid.Tile) {
		if t == nil {
			return
		}
		v := TileView{Pos: t.Pos, Value: t.Value}
		if t.Previous != nil {
			p := *t.Previous
			v.Previous = &p
		}
		if t.MergedFrom != nil {
			v.MergedFrom = []grid.MergeSource{t.MergedFrom[0], t.MergedFrom[1]}
		}
		tiles = append(tiles, v)
	})

	return Snapshot{
		Seed:        g.seed,
		Score:       g.score,
		Best:        g.Best(),
		Moves:       g.moves,
		Board:       g.grid.Rows(),
		Tiles:       tiles,
		MaxTile:     g.grid.MaxTile(),
		Over:        g.over,
		Won:         g.won,
		KeepPlaying: g.keepPlaying,
		State:       state,
	}
}
