package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

const (
	tileWidth  = 7
	tileHeight = 3
)

// tileColors maps tile values to background and foreground colors.
// Values past 2048 share the last entry.
var tileColors = []struct {
	value  int
	bg, fg lipgloss.Color
}{
	{2, "230", "236"},
	{4, "229", "236"},
	{8, "215", "231"},
	{16, "209", "231"},
	{32, "203", "231"},
	{64, "196", "231"},
	{128, "228", "236"},
	{256, "227", "236"},
	{512, "226", "236"},
	{1024, "220", "231"},
	{2048, "214", "231"},
	{4096, "57", "231"},
}

var (
	emptyTileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Height(tileHeight).
			Background(lipgloss.Color("238"))

	boardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	valueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	overlayStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.DoubleBorder())

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// tileStyle returns the style for a tile. Highlighted tiles are drawn with a
// distinct foreground: merged tiles bold and underlined, new tiles in italics.
func tileStyle(tv game.TileView, highlight bool) lipgloss.Style {
	bg, fg := tileColors[len(tileColors)-1].bg, tileColors[len(tileColors)-1].fg
	for _, c := range tileColors {
		if tv.Value <= c.value {
			bg, fg = c.bg, c.fg
			break
		}
	}

	s := lipgloss.NewStyle().
		Width(tileWidth).
		Height(tileHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Background(bg).
		Foreground(fg).
		Bold(true)

	if highlight {
		switch {
		case tv.IsMerged():
			s = s.Underline(true).Foreground(lipgloss.Color("16"))
		case tv.IsNew():
			s = s.Italic(true).Faint(true)
		}
	}
	return s
}

// renderBoard draws the 4x4 board from a snapshot.
func renderBoard(snap game.Snapshot, highlight bool) string {
	var cells [grid.Size][grid.Size]*game.TileView
	for i := range snap.Tiles {
		tv := &snap.Tiles[i]
		cells[tv.Pos.Y][tv.Pos.X] = tv
	}

	rows := make([]string, 0, grid.Size*2-1)
	for y := range grid.Size {
		line := make([]string, 0, grid.Size*2-1)
		for x := range grid.Size {
			if x > 0 {
				line = append(line, " ")
			}
			tv := cells[y][x]
			if tv == nil {
				line = append(line, emptyTileStyle.Render(""))
				continue
			}
			line = append(line, tileStyle(*tv, highlight).Render(strconv.Itoa(tv.Value)))
		}
		if y > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, line...))
	}

	return boardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderHUD draws the title, score, and best score.
func renderHUD(snap game.Snapshot) string {
	stat := func(label string, v int) string {
		return labelStyle.Render(label+" ") + valueStyle.Render(strconv.Itoa(v))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		titleStyle.Render("2048"), "   ",
		stat("Score", snap.Score), "   ",
		stat("Best", snap.Best), "   ",
		stat("Moves", snap.Moves),
	)
}

// renderOverlay returns the end-of-game banner, or "" while playing.
func renderOverlay(snap game.Snapshot, allowContinue bool) string {
	switch snap.State {
	case game.StateWon:
		hint := "R: new game"
		if allowContinue {
			hint = "C: keep going   R: new game"
		}
		return overlayStyle.BorderForeground(lipgloss.Color("214")).
			Render("You win!\n" + hintStyle.Render(hint))
	case game.StateGameOver:
		return overlayStyle.BorderForeground(lipgloss.Color("196")).
			Render(fmt.Sprintf("Game over!  Max tile %d\n", snap.MaxTile) + hintStyle.Render("R: new game"))
	}
	return ""
}

// renderAnalysis draws the heuristic panel for the current board and a one-move preview.
func renderAnalysis(h grid.Heuristics, outcomes [4]game.Outcome) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Analysis"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "smoothness    %7.2f\n", h.Smoothness)
	fmt.Fprintf(&b, "monotonicity  %7.2f\n", h.Monotonicity)
	fmt.Fprintf(&b, "monotonicity2 %7.2f\n", h.Monotonicity2)
	fmt.Fprintf(&b, "islands       %7d\n", h.Islands)
	fmt.Fprintf(&b, "max value     %7.0f\n", h.MaxValue)
	fmt.Fprintf(&b, "empty cells   %7d\n", h.EmptyCells)

	b.WriteString("\n")
	best, ok := game.Best(outcomes)
	for _, o := range outcomes {
		mark := "  "
		if ok && o.Dir == best.Dir {
			mark = "> "
		}
		if !o.Moved {
			fmt.Fprintf(&b, "%s%-5s      -\n", mark, o.Dir)
			continue
		}
		fmt.Fprintf(&b, "%s%-5s %+6d  smooth %.1f\n", mark, o.Dir, o.Score, o.Heuristics.Smoothness)
	}

	return panelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(w, h int) string {
	msg := fmt.Sprintf("Window too small\nPlease resize terminal to at least %dx%d", game.MinScreenW, game.MinScreenH)
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, msg)
}

// controlsHint returns the control hints for the game.
func controlsHint() string {
	return hintStyle.Render("arrows/WASD/HJKL: move  R: restart  Tab: analysis  ^O: scores  Q: quit")
}
