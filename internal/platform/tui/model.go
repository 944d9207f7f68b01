package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-debris/internal/audio"
	"github.com/vovakirdan/space-debris/internal/core"
	"github.com/vovakirdan/space-debris/internal/game"
	"github.com/vovakirdan/space-debris/internal/storage"
)

// Smallest playfield the game is started on.
const (
	minRows = 12
	minCols = 30
)

// SessionFactory creates a game session drawing on surface.
type SessionFactory = game.Factory

// GameOptions configures a GameModel.
type GameOptions struct {
	NewSession SessionFactory
	Store      *storage.Store // Optional, runs are not saved without it
	Alert      audio.Alerter  // Optional
	Player     string
	Width      int
	Height     int
	Logger     *log.Logger // Optional
	Embedded   bool        // Runs inside SessionModel, which handles Back
}

// GameModel is the Bubble Tea model that plays one game at a time.
// The playfield fills the window except for the status line.
type GameModel struct {
	opts       GameOptions
	canvas     *core.Canvas
	input      *core.InputBuffer
	session    *game.Session
	keys       GameKeyMap
	help       help.Model
	err        error
	saved      bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model and starts the first game.
func NewGameModel(opts GameOptions) GameModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Alert == nil {
		opts.Alert = audio.Nop{}
	}
	m := GameModel{
		opts:  opts,
		input: &core.InputBuffer{},
		keys:  DefaultGameKeyMap(),
		help:  help.New(),
	}
	m.restart()
	return m
}

// restart throws the current game away and starts a new one sized to the
// window.
func (m *GameModel) restart() {
	rows := max(m.opts.Height-1, minRows)
	cols := max(m.opts.Width, minCols)
	m.canvas = core.NewCanvas(rows, cols, true)
	m.input = &core.InputBuffer{}
	m.saved = false
	m.session, m.err = m.opts.NewSession(m.canvas, m.input, m.opts.Alert)
	if m.err != nil {
		m.opts.Logger.Error("cannot start game", "err", m.err)
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.interval())
}

func (m GameModel) interval() time.Duration {
	if m.session == nil {
		return core.DefaultConfig().TickInterval()
	}
	return m.session.TickInterval()
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back) && m.gameOver():
		m.backToMenu = true
		if !m.opts.Embedded {
			return m, tea.Quit
		}
		return m, nil
	case key.Matches(msg, m.keys.Restart) && m.gameOver():
		m.restart()
		return m, nil
	}

	m.keys.Press(msg, m.input)
	return m, nil
}

// handleResize starts over on a playfield of the new size.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.opts.Width && msg.Height == m.opts.Height {
		return m, nil
	}
	m.opts.Width = msg.Width
	m.opts.Height = msg.Height
	m.help.Width = msg.Width

	// Note: This resets a running game, obstacles are sized to the old field
	if !m.gameOver() {
		m.restart()
	}
	return m, nil
}

// handleTick advances the game by one tick.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.session == nil || m.quitting || m.backToMenu {
		return m, tickCmd(m.interval())
	}

	alive := m.session.Tick()
	if m.session.State().GameOver && !m.saved {
		m.saveRun()
		m.saved = true
	}
	if !alive {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.interval())
}

// saveRun records the finished game. Best-effort, the game continues
// regardless.
func (m *GameModel) saveRun() {
	stats := m.session.Stats()
	m.opts.Logger.Info("game over",
		"player", m.opts.Player,
		"year", stats.FinalYear,
		"destroyed", stats.Destroyed,
		"ticks", m.session.Ticks(),
	)
	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		Player:      m.opts.Player,
		StartYear:   m.session.StartYear(),
		YearReached: stats.FinalYear,
		Destroyed:   stats.Destroyed,
		Fired:       stats.Fired,
		Ticks:       m.session.Ticks(),
		Seed:        m.session.Seed(),
	})
	if err != nil {
		m.opts.Logger.Warn("cannot save run", "err", err)
	}
}

func (m GameModel) gameOver() bool {
	return m.session != nil && m.session.State().GameOver
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the playfield and the status line.
func (m GameModel) View() string {
	if m.quitting || (m.backToMenu && !m.opts.Embedded) {
		return ""
	}
	if m.err != nil {
		return fmt.Sprintf("\n  Cannot start the game: %v\n\n  Press q to quit.\n", m.err)
	}

	var b strings.Builder
	b.WriteString(RenderCanvas(m.canvas))
	b.WriteString("\n")

	state := m.session.State()
	if state.GameOver {
		b.WriteString(statusStyle.Render(fmt.Sprintf(
			"Destroyed: %d  |  R: restart  |  Esc: menu  |  Q: quit", state.Destroyed)))
	} else {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Destroyed: %d  ", state.Destroyed) + m.help.View(m.keys)))
	}
	return b.String()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// State returns the status of the current game.
func (m GameModel) State() core.GameState {
	if m.session == nil {
		return core.GameState{}
	}
	return m.session.State()
}

// Run starts the Bubble Tea program with a single game.
// It reports whether the player asked to go back to the menu.
func Run(opts GameOptions) (backToMenu bool, err error) {
	p := tea.NewProgram(
		NewGameModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	return ok && m.BackToMenu(), nil
}
