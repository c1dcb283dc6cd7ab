// Package grid implements the 4x4 board of the 2048 puzzle: tiles with move provenance,
// directional move resolution, random spawning, cloning and the heuristic evaluators used
// to score a position.
//
// The package has no external dependencies so boards can be cloned and evaluated freely
// by any caller, including concurrently on independent clones.
package grid

// Size is the board dimension.
const Size = 4

// WinValue is the tile value that wins the game.
const WinValue = 2048

// Direction is a move direction. The numeric codes match the input adapter's codes.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all directions in code order.
var Directions = [4]Direction{Up, Right, Down, Left}

// vectors maps each direction to its unit offset.
var vectors = [4]Position{
	{X: 0, Y: -1}, // up
	{X: 1, Y: 0},  // right
	{X: 0, Y: 1},  // down
	{X: -1, Y: 0}, // left
}

// Vector returns the unit offset for the direction.
func (d Direction) Vector() Position {
	return vectors[d]
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Unknown"
	}
}

// Position is a board coordinate. X is the column, Y the row.
type Position struct {
	X, Y int
}

// Add returns p offset by v.
func (p Position) Add(v Position) Position {
	return Position{X: p.X + v.X, Y: p.Y + v.Y}
}

// MergeSource records one of the two tiles consumed by a merge.
type MergeSource struct {
	Value int      // Value of the consumed tile
	From  Position // Where it stood before the move
}

// Tile is a numbered piece on the board.
type Tile struct {
	Pos   Position
	Value int

	// Previous is the tile's position before the current move.
	// Nil for tiles created since the last move (spawned or merged).
	Previous *Position

	// MergedFrom is set on tiles produced by a merge during the current move.
	MergedFrom *[2]MergeSource
}

// NewTile creates a tile at pos with the given value.
func NewTile(pos Position, value int) *Tile {
	return &Tile{Pos: pos, Value: value}
}

// savePosition snapshots the current position as the pre-move position.
func (t *Tile) savePosition() {
	p := t.Pos
	t.Previous = &p
}

// origin returns where the tile stood before the current move.
func (t *Tile) origin() Position {
	if t.Previous != nil {
		return *t.Previous
	}
	return t.Pos
}

// clone copies position and value only. Provenance is per move and is not needed
// by a board that only simulates forward.
func (t *Tile) clone() *Tile {
	return &Tile{Pos: t.Pos, Value: t.Value}
}
