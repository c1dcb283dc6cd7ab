// Package tui provides the Bubble Tea front end for 2048: the game screen,
// the scoreboard, and an SSH server that serves the game over Wish.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// highlightDuration is how long new and merged tiles stay highlighted after a move.
const highlightDuration = 180 * time.Millisecond

// HighlightDoneMsg clears the tile highlight of the move with the given sequence number.
type HighlightDoneMsg struct {
	Seq int
}

// highlightCmd returns a command that ends the highlight of move seq after d.
func highlightCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return HighlightDoneMsg{Seq: seq}
	})
}
