package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
)

// Model is the Bubble Tea model for one snake session.
type Model struct {
	session  *Session
	ctrl     *game.Controller
	screen   *core.Screen
	snap     game.Snapshot
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a model drawing ctrl through session.
func NewModel(ctrl *game.Controller, session *Session) Model {
	snap := ctrl.Snapshot()
	return Model{
		session: session,
		ctrl:    ctrl,
		screen:  core.NewScreen(game.BoardSize(snap.GridSize)),
		snap:    snap,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init waits for the first controller event. The board is already drawable.
func (m Model) Init() tea.Cmd {
	return m.session.Wait()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case BoardMsg:
		m.snap = m.ctrl.Snapshot()
		return m, m.session.Wait()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.session.Close()
		return m, tea.Quit
	}
	m.ctrl.Apply(action)
	return m, nil
}

// View renders the board, the notice overlay and the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.snap.Render(m.screen, m.session.Notice(m.snap))

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))

	view := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Snapshot returns the board the model last drew.
func (m Model) Snapshot() game.Snapshot {
	return m.snap
}

// Run starts the Bubble Tea program in the local terminal and blocks until
// the player quits.
func Run(ctrl *game.Controller, session *Session) error {
	defer session.Close()

	p := tea.NewProgram(
		NewModel(ctrl, session),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
