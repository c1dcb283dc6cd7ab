package grid

import "math/rand"

// DefaultFourProbability is the chance that a spawned tile is a 4 rather than a 2.
const DefaultFourProbability = 0.1

// StartTiles is the number of tiles placed at the start of a game.
const StartTiles = 2

// Spawner places new tiles on random empty cells.
// A Spawner is not safe for concurrent use; give each goroutine its own.
type Spawner struct {
	rng *rand.Rand

	// FourProbability is the chance of spawning a 4 (0.0-1.0).
	FourProbability float64
}

// NewSpawner creates a spawner seeded for reproducible games.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{
		rng:             rand.New(rand.NewSource(seed)),
		FourProbability: DefaultFourProbability,
	}
}

// Spawn inserts one tile on a uniformly chosen empty cell and hands the turn back to the
// player. It returns false, leaving g untouched, when the board is full.
func (s *Spawner) Spawn(g *Grid) (*Tile, bool) {
	cells := g.AvailableCells()
	if len(cells) == 0 {
		return nil, false
	}

	pos := cells[s.rng.Intn(len(cells))]

	value := 2
	if s.rng.Float64() < s.FourProbability {
		value = 4
	}

	t := NewTile(pos, value)
	g.InsertTile(t)
	g.PlayerTurn = true
	return t, true
}

// AddStartTiles spawns n tiles.
func (s *Spawner) AddStartTiles(g *Grid, n int) {
	for range n {
		s.Spawn(g)
	}
}
