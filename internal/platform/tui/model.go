package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// Options configures a game screen.
type Options struct {
	Store         *storage.Store // May be nil; scores are then not persisted
	Logger        *log.Logger
	Player        string // Recorded with each result
	AllowContinue bool
	Screenshots   string // Directory for ctrl+s board dumps; empty disables them
}

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	game       *game.Game
	opts       Options
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState

	scoreboard   *ScoreboardModel
	showAnalysis bool
	highlight    bool
	moveSeq      int
	saved        bool // Whether the current game's result has been recorded
	quitting     bool
}

// NewModel creates a new Bubble Tea model around g.
func NewModel(g *game.Game, opts Options, cfg core.RuntimeConfig) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(os.Stderr)
	}

	m := Model{
		game:       g,
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	m.newGame()
	return m
}

// newGame resets the game and refreshes the best score from the store.
func (m *Model) newGame() {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.saved = false
	m.highlight = false

	if m.opts.Store != nil {
		best, err := m.opts.Store.HighScore()
		if err != nil {
			m.opts.Logger.Warn("could not load high score", "error", err)
		}
		m.game.SetBest(best)
	}
	m.opts.Logger.Debug("new game", "seed", m.game.Seed(), "player", m.opts.Player)
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case HighlightDoneMsg:
		if msg.Seq == m.moveSeq {
			m.highlight = false
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.recordResult()
		m.quitting = true
		return m, tea.Quit
	}
	defer m.inputFrame.Clear()

	switch {
	case m.inputFrame.Has(core.ActionRestart):
		m.recordResult()
		// Keep an explicit seed for the first game only.
		m.config.Seed = 0
		m.newGame()
		return m, nil

	case m.inputFrame.Has(core.ActionAnalysis):
		m.showAnalysis = !m.showAnalysis
		return m, nil

	case m.inputFrame.Has(core.ActionScores):
		sb := NewScoreboardModel(m.opts.Store, m.config.ScreenW, m.config.ScreenH)
		sb.embedded = true
		m.scoreboard = &sb
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.Over {
		m.recordResult()
	}

	if result.Moved {
		m.moveSeq++
		m.highlight = true
		return m, highlightCmd(m.moveSeq, highlightDuration)
	}
	return m, nil
}

// updateScoreboard forwards messages to the scoreboard overlay until it is closed.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.game.Resize(wsm.Width, wsm.Height)
	}

	next, cmd := m.scoreboard.Update(msg)
	sb, _ := next.(ScoreboardModel)

	switch {
	case sb.IsQuitting():
		m.recordResult()
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, nil
	}

	m.scoreboard = &sb
	return m, cmd
}

// recordResult saves the current game once. Games without a move are not recorded.
func (m *Model) recordResult() {
	if m.saved || m.gameState.Moves == 0 {
		return
	}
	m.saved = true

	if m.opts.Store == nil {
		return
	}

	snap := m.game.Snapshot()
	id, err := m.opts.Store.SaveResult(storage.Result{
		Player:  m.opts.Player,
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Moves:   snap.Moves,
		Won:     snap.Won,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save result", "error", err)
		return
	}
	m.opts.Logger.Debug("result saved", "id", id, "score", snap.Score, "max_tile", snap.MaxTile)
}

// saveScreenshot writes the current board as text.
func (m *Model) saveScreenshot() {
	if m.opts.Screenshots == "" {
		return
	}

	if err := os.MkdirAll(m.opts.Screenshots, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.opts.Screenshots, fmt.Sprintf("2048_%s.txt", timestamp))

	content := fmt.Sprintf("score %d  moves %d  seed %d\n%s",
		m.gameState.Score, m.gameState.Moves, m.game.Seed(), m.game.Board())
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	snap := m.game.Snapshot()
	if snap.State == game.StatePausedSmall {
		return renderTooSmall(m.config.ScreenW, m.config.ScreenH)
	}

	board := renderBoard(snap, m.highlight)
	if m.showAnalysis && m.config.ScreenW >= game.MinScreenW+analysisWidth {
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, " ",
			renderAnalysis(m.game.Analysis(), m.game.Lookahead()))
	}

	parts := []string{renderHUD(snap), board}
	if overlay := renderOverlay(snap, m.opts.AllowContinue); overlay != "" {
		parts = append(parts, overlay)
	}
	parts = append(parts, controlsHint())

	return lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// analysisWidth is the width the analysis panel needs beside the board.
const analysisWidth = 32

// Run starts the Bubble Tea program for g.
func Run(g *game.Game, opts Options, cfg core.RuntimeConfig) error {
	model := NewModel(g, opts, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
