// Package game drives a single 2048 session on top of the grid engine:
// seeding, scoring, spawning after each effective move, and the win and
// game-over rules.
package game

import (
	"time"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

// Minimum terminal size needed to draw the board and the HUD.
const (
	MinScreenW = 36
	MinScreenH = 22
)

// Game is one 2048 session. It is not safe for concurrent use.
type Game struct {
	cfg     config.Config
	grid    *grid.Grid
	spawner *grid.Spawner
	seed    int64

	score int
	best  int
	moves int

	// Game state flags
	over        bool
	won         bool
	keepPlaying bool
	tooSmall    bool

	screenW int
	screenH int
}

// New creates a game using the spawn and rule settings from cfg.
// Call Reset before playing.
func New(cfg config.Config) *Game {
	return &Game{cfg: cfg, grid: grid.New()}
}

// Reset starts a fresh game. A zero seed is replaced by one derived from the clock.
func (g *Game) Reset(rc core.RuntimeConfig) {
	seed := rc.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g.seed = seed
	g.spawner = grid.NewSpawner(seed)
	g.spawner.FourProbability = g.cfg.Spawn.FourProbability

	g.grid = grid.New()
	g.score = 0
	g.moves = 0
	g.over = false
	g.won = false
	g.keepPlaying = false

	g.spawner.AddStartTiles(g.grid, g.cfg.Spawn.StartTiles)

	// A board filled entirely by start tiles may already be stuck.
	if !g.grid.MovesAvailable() {
		g.over = true
	}

	g.Resize(rc.ScreenW, rc.ScreenH)
}

// Resize records the terminal size and pauses input while it is too small.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < MinScreenW || h < MinScreenH
}

// SetBest seeds the best score, typically from the score store.
func (g *Game) SetBest(best int) {
	g.best = best
}

// Best returns the larger of the stored best score and the current score.
func (g *Game) Best() int {
	return max(g.best, g.score)
}

// Seed returns the seed the current game was started with.
func (g *Game) Seed() int64 {
	return g.seed
}

// Move slides the board in dir. Moves are ignored once the game is finished.
// An effective move adds its score, spawns one tile, and may end the game.
func (g *Game) Move(dir grid.Direction) grid.MoveResult {
	if g.State().Finished() {
		return grid.MoveResult{}
	}

	res := g.grid.Move(dir)
	if !res.Moved {
		return res
	}

	g.score += res.Score
	g.moves++
	if res.Won {
		g.won = true
	}

	g.spawner.Spawn(g.grid)

	if !g.grid.MovesAvailable() {
		g.over = true
	}
	return res
}

// Continue lets the player keep sliding after reaching 2048.
// It reports whether the game was resumed.
func (g *Game) Continue() bool {
	if !g.won || g.keepPlaying || g.over || !g.cfg.Game.AllowContinue {
		return false
	}
	g.keepPlaying = true
	return true
}

// Step applies the actions of one input frame. At most one slide is applied per frame.
// Restart is left to the platform, which calls Reset.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionContinue) {
		g.Continue()
	}

	var result core.StepResult
	for _, a := range []core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft} {
		if !in.Has(a) {
			continue
		}
		res := g.Move(directionFor(a))
		result.Moved = res.Moved
		result.Gained = res.Score
		break
	}

	result.State = g.State()
	return result
}

func directionFor(a core.Action) grid.Direction {
	switch a {
	case core.ActionUp:
		return grid.Up
	case core.ActionRight:
		return grid.Right
	case core.ActionDown:
		return grid.Down
	default:
		return grid.Left
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:       g.score,
		Moves:       g.moves,
		Over:        g.over,
		Won:         g.won,
		KeepPlaying: g.keepPlaying,
	}
}

// Board returns a copy of the current board for read-only analysis.
func (g *Game) Board() *grid.Grid {
	return g.grid.Clone()
}

// Analysis evaluates the heuristics of the current board.
func (g *Game) Analysis() grid.Heuristics {
	return grid.Evaluate(g.grid)
}

// Lookahead previews every direction from the current board.
func (g *Game) Lookahead() [4]Outcome {
	return Lookahead(g.grid)
}
