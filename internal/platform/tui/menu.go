package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-debris/internal/storage"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

// String returns the menu label.
func (c MenuChoice) String() string {
	switch c {
	case MenuPlay:
		return "Play"
	case MenuScores:
		return "High scores"
	case MenuQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuItems = []MenuChoice{MenuPlay, MenuScores, MenuQuit}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true)
)

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	highYear int
	keys     MenuKeyMap
	help     help.Model
	selected MenuChoice
	// Quit the program on selection; false when embedded in a session.
	quitOnSelect bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(store *storage.Store, width, height int) MenuModel {
	m := MenuModel{
		width:        width,
		height:       height,
		keys:         DefaultMenuKeyMap(),
		help:         help.New(),
		quitOnSelect: true,
	}
	if store != nil {
		//nolint:errcheck // Best-effort, the menu works without history
		m.highYear, _ = store.HighYear()
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.choose(MenuQuit)

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		return m.choose(menuItems[m.cursor])
	}

	return m, nil
}

func (m MenuModel) choose(c MenuChoice) (tea.Model, tea.Cmd) {
	m.selected = c
	if m.quitOnSelect || c == MenuQuit {
		return m, tea.Quit
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected != MenuNone {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("S P A C E   D E B R I S"), m.width))
	b.WriteString("\n\n")

	subtitle := "Dodge the garbage of the space age"
	if m.highYear > 0 {
		subtitle = fmt.Sprintf("Best run reached %d", m.highYear)
	}
	b.WriteString(centerText(subtitle, m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.String()
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or MenuNone.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// RunMenu runs the menu and returns the selection.
func RunMenu(store *storage.Store, width, height int) (MenuChoice, error) {
	p := tea.NewProgram(
		NewMenuModel(store, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuQuit, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Selected() == MenuNone {
		return MenuQuit, nil
	}
	return m.Selected(), nil
}
