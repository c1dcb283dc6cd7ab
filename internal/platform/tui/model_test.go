package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := NewModel(game.New(config.Default()), Options{
		Store:         store,
		Logger:        log.New(io.Discard),
		Player:        "tester",
		AllowContinue: true,
		Screenshots:   t.TempDir(),
	}, core.RuntimeConfig{ScreenW: 120, ScreenH: 40, Seed: 7})
	return m, store
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return nm
}

// playSomeMoves presses every arrow once; a fresh board always allows at least one of them.
func playSomeMoves(t *testing.T, m Model) Model {
	t.Helper()
	for _, k := range []tea.KeyType{tea.KeyUp, tea.KeyRight, tea.KeyDown, tea.KeyLeft} {
		m = send(t, m, tea.KeyMsg{Type: k})
	}
	if m.gameState.Moves == 0 {
		t.Fatal("no arrow key moved the board")
	}
	return m
}

func resultCount(t *testing.T, store *storage.Store) int {
	t.Helper()
	results, err := store.TopResults(100)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	return len(results)
}

func TestModelMoveHighlights(t *testing.T) {
	m, _ := newTestModel(t)
	m = playSomeMoves(t, m)

	if !m.highlight {
		t.Error("a move should start the tile highlight")
	}

	// A stale timer must not clear the latest highlight.
	m = send(t, m, HighlightDoneMsg{Seq: m.moveSeq - 1})
	if m.moveSeq > 1 && !m.highlight {
		t.Error("stale HighlightDoneMsg cleared the highlight")
	}

	m = send(t, m, HighlightDoneMsg{Seq: m.moveSeq})
	if m.highlight {
		t.Error("HighlightDoneMsg for the latest move should clear the highlight")
	}
}

func TestModelQuitRecordsResult(t *testing.T) {
	m, store := newTestModel(t)
	m = playSomeMoves(t, m)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(Model)
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("View() should be empty after quitting")
	}

	results, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("results = %d, want 1", len(results))
	}
	if results[0].Player != "tester" || results[0].Moves != m.gameState.Moves {
		t.Errorf("saved result = %+v", results[0])
	}
}

func TestModelRestartRecordsOnce(t *testing.T) {
	m, store := newTestModel(t)
	m = playSomeMoves(t, m)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if m.gameState.Moves != 0 || m.gameState.Score != 0 {
		t.Errorf("restart did not reset the game: %+v", m.gameState)
	}

	// Restarting an untouched game records nothing.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if n := resultCount(t, store); n != 1 {
		t.Errorf("results = %d, want 1", n)
	}
}

func TestModelScoreboardOverlay(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO})
	if m.scoreboard == nil {
		t.Fatal("ctrl+o should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil {
		t.Fatal("esc should close the scoreboard")
	}
	if m.quitting {
		t.Error("closing the scoreboard should not quit")
	}
	if !strings.Contains(m.View(), "Score") {
		t.Error("game view should be back")
	}
}

func TestModelAnalysisToggle(t *testing.T) {
	m, _ := newTestModel(t)

	if strings.Contains(m.View(), "Analysis") {
		t.Fatal("analysis panel should start hidden")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !strings.Contains(m.View(), "Analysis") {
		t.Error("tab should show the analysis panel")
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if strings.Contains(m.View(), "Analysis") {
		t.Error("second tab should hide the analysis panel")
	}
}

func TestModelTooSmall(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})

	if !strings.Contains(m.View(), "Window too small") {
		t.Error("small window should show the resize hint")
	}

	before := m.gameState
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.gameState.Moves != before.Moves {
		t.Error("moves should be ignored while the window is too small")
	}
}

func TestModelBestFromStore(t *testing.T) {
	m, store := newTestModel(t)
	if _, err := store.SaveResult(storage.Result{Score: 9000}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	if !strings.Contains(m.View(), "9000") {
		t.Error("best score from the store should be shown")
	}
}

func TestModelWithoutStore(t *testing.T) {
	m := NewModel(game.New(config.Default()), Options{Logger: log.New(io.Discard)},
		core.RuntimeConfig{ScreenW: 80, ScreenH: 30, Seed: 3})
	m = playSomeMoves(t, m)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.quitting {
		t.Error("q should quit without a store")
	}
}

func TestResultRows(t *testing.T) {
	rows := resultRows([]storage.Result{
		{Player: "ann", Score: 20000, MaxTile: 2048, Moves: 1000, Won: true},
		{Score: 300, MaxTile: 32, Moves: 40},
	})
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[0][0] != "#1" || rows[0][1] != "20000" || rows[0][2] != "2048*" || rows[0][4] != "ann" {
		t.Errorf("first row = %v", rows[0])
	}
	if rows[1][2] != "32" || rows[1][4] != "-" {
		t.Errorf("second row = %v", rows[1])
	}
}
