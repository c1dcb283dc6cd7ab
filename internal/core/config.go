// Package core holds the dependency-free types shared between the game and the
// platform layer: semantic input actions, runtime settings and reported state.
package core

// RuntimeConfig contains per-session settings passed to the game at reset.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 picks one from the clock
}

// GameState is the externally visible status of a game.
type GameState struct {
	Score       int  // Cumulative score
	Moves       int  // Successful moves so far
	Over        bool // No moves left
	Won         bool // The winning tile has been reached
	KeepPlaying bool // Player chose to continue after winning
}

// Finished reports whether the game accepts no further moves.
func (s GameState) Finished() bool {
	return s.Over || (s.Won && !s.KeepPlaying)
}

// StepResult is returned by Game.Step after processing an input frame.
type StepResult struct {
	State  GameState
	Moved  bool // The board changed this step
	Gained int  // Points scored this step
}
