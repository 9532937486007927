package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// helpHeight is the number of rows reserved below the game for key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// ScoreRecorder stores finished games for the scoreboard.
type ScoreRecorder interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Model is the Bubble Tea model that runs one snake session.
type Model struct {
	game       *snake.Game
	screen     *core.Screen
	history    ScoreRecorder
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	keys       KeyMap
	help       help.Model

	tooSmall      bool
	quitRequested bool
	quitting      bool
	recorded      bool // finished round already sent to history
}

// NewModel creates a model for game. history and logger may be nil.
func NewModel(game *snake.Game, history ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		history:    history,
		logger:     logger,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
	m.updateTooSmall()
	return m
}

// Init starts the first round and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("round started",
		"seed", m.config.Seed,
		"board", boardLabel(m.game.Board()),
		"high_score", m.game.HighScore(),
	)
	m.reportStoreErr()

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers actions until the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); action {
	case core.ActionNone:
	case core.ActionQuit:
		m.quitRequested = true
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize keeps the screen buffer in step with the terminal.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width

	wasSmall := m.tooSmall
	m.updateTooSmall()
	if m.tooSmall != wasSmall {
		m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height, "paused", m.tooSmall)
	}
	return m, nil
}

// handleTick runs one simulation step unless the window is too small.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitRequested {
		m.quitting = true
		m.logger.Info("quit", "score", m.game.Score(), "high_score", m.game.HighScore())
		return m, tea.Quit
	}

	if m.tooSmall {
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	wasOver := m.game.Status() == snake.StateGameOver
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	switch {
	case result.State.GameOver && !m.recorded:
		m.recordGameOver()
	case wasOver && !result.State.GameOver:
		m.recorded = false
		m.logger.Info("round restarted", "high_score", m.game.HighScore())
	}
	m.reportStoreErr()

	return m, tickCmd(m.config.TickRate)
}

// recordGameOver logs the finished round and adds it to the history once.
func (m *Model) recordGameOver() {
	m.recorded = true
	m.logger.Info("game over",
		"reason", string(m.game.Reason()),
		"score", m.game.Score(),
		"high_score", m.game.HighScore(),
		"ticks", m.game.Ticks(),
	)

	if m.history == nil {
		return
	}
	if _, err := m.history.SaveScore(m.game.ID(), m.game.Score()); err != nil {
		m.logger.Warn("could not record score", "error", err)
	}
}

// reportStoreErr logs and clears a high score persistence failure.
func (m *Model) reportStoreErr() {
	if err := m.game.StoreErr(); err != nil {
		m.logger.Warn("high score store failed", "error", err)
		m.game.ClearStoreErr()
	}
}

func (m *Model) updateTooSmall() {
	needW, needH := snake.RequiredScreenSize(m.game.Board())
	m.tooSmall = m.screen.Width() < needW || m.screen.Height() < needH
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Paused reports whether ticks are withheld because the window is too small.
func (m Model) Paused() bool {
	return m.tooSmall
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(game *snake.Game, history ScoreRecorder, logger *log.Logger, cfg core.RuntimeConfig) error {
	model := NewModel(game, history, logger, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

func boardLabel(b snake.Board) string {
	return fmt.Sprintf("%dx%d", b.Width(), b.Height())
}
