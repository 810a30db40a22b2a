package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

const maxScores = 100

// ScoreSource is the read side of the score database.
type ScoreSource interface {
	Boards() ([]string, error)
	TopScores(board string, limit int) ([]storage.ScoreEntry, error)
	GetGameStats(board string) (*storage.GameStats, error)
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBoard key.Binding
	PrevBoard key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBoard, k.PrevBoard, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextBoard, k.PrevBoard, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextBoard: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next board"),
		),
		PrevBoard: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev board"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the high score screen.
type ScoreboardModel struct {
	source   ScoreSource
	boards   []string
	cursor   int
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	err      error
	table    table.Model
	help     help.Model
	keys     ScoreboardKeyMap
	width    int
	height   int
	quitting bool
}

// NewScoreboardModel creates a scoreboard opened on board. If board has no
// games yet it is still listed.
func NewScoreboardModel(source ScoreSource, board string, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		source: source,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}

	boards, err := source.Boards()
	if err != nil {
		m.err = err
	}
	if !containsBoard(boards, board) {
		boards = append([]string{board}, boards...)
	}
	m.boards = boards
	for i, b := range boards {
		if b == board {
			m.cursor = i
		}
	}

	m.table = m.createTable()
	m.load()
	return m
}

func containsBoard(boards []string, board string) bool {
	for _, b := range boards {
		if b == board {
			return true
		}
	}
	return false
}

// createTable creates a new table sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 8},
		{Title: "Length", Width: 8},
		{Title: "Date", Width: 14},
	}

	height := m.height - 10
	if height < 5 {
		height = 5
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads scores and stats for the selected board.
func (m *ScoreboardModel) load() {
	board := m.Board()

	scores, err := m.source.TopScores(board, maxScores)
	if err != nil {
		m.err = err
		scores = nil
	}
	m.scores = scores

	stats, err := m.source.GetGameStats(board)
	if err != nil {
		m.err = err
		stats = nil
	}
	m.stats = stats

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Length),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Board returns the selected board ID.
func (m ScoreboardModel) Board() string {
	return m.boards[m.cursor]
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextBoard):
			m.cursor = (m.cursor + 1) % len(m.boards)
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.PrevBoard):
			m.cursor = (m.cursor - 1 + len(m.boards)) % len(m.boards)
			m.load()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.load()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(fmt.Sprintf("HIGH SCORES  < %s >", m.Board())))
	b.WriteString("\n\n")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(boxStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	if line := StatsLine(m.stats); line != "" {
		b.WriteString(dim.Render(line))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(dim.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.scores) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

// StatsLine summarizes stats on one line, or returns "" when no games exist.
func StatsLine(stats *storage.GameStats) string {
	if stats == nil || stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("%d games  best %d  avg %.1f  longest %d  last played %s",
		stats.GamesCount, stats.HighScore, stats.AvgScore, stats.LongestLen,
		stats.LastPlayed.Format("Jan 02 15:04"))
}

// RunScoreboard runs the scoreboard screen in the local terminal.
func RunScoreboard(source ScoreSource, board string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(source, board, width, height),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
