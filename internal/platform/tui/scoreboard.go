package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tickarcade/internal/registry"
	"github.com/vovakirdan/tickarcade/internal/storage"
)

const scoreboardLimit = 50

// ScoreLister is the part of a score store the scoreboard reads.
// Stores that also implement storage.StatsReporter get a summary line.
type ScoreLister interface {
	TopScores(ctx context.Context, gameID string, limit int) ([]storage.ScoreEntry, error)
}

type scoreboardKeys struct {
	Scroll key.Binding
	Next   key.Binding
	Prev   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k scoreboardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.Prev, k.Next, k.Back, k.Quit}
}

func (k scoreboardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newScoreboardKeys() scoreboardKeys {
	return scoreboardKeys{
		Scroll: key.NewBinding(key.WithKeys("up", "down", "k", "j"), key.WithHelp("up/down", "scroll")),
		Next:   key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/right", "next game")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("left", "prev game")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the score history of one game at a time.
type ScoreboardModel struct {
	ctx      context.Context
	store    ScoreLister
	games    []registry.GameInfo
	current  int
	scores   []storage.ScoreEntry
	stats    *storage.GameStats
	loadErr  error
	table    table.Model
	help     help.Model
	keys     scoreboardKeys
	width    int
	height   int
	quitting bool
	back     bool
}

// NewScoreboardModel creates a scoreboard positioned on the first game.
// A nil store shows empty tables.
func NewScoreboardModel(ctx context.Context, store ScoreLister, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		ctx:    ctx,
		store:  store,
		games:  registry.List(),
		help:   help.New(),
		keys:   newScoreboardKeys(),
		width:  width,
		height: height,
	}
	m.table = m.newTable()
	m.load()
	return m
}

func (m *ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Played", Width: 18},
		}),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
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

// load fetches the history and, when available, the stats of the current game.
func (m *ScoreboardModel) load() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil && len(m.games) > 0 {
		gameID := m.games[m.current].ID
		m.scores, m.loadErr = m.store.TopScores(m.ctx, gameID, scoreboardLimit)
		if reporter, ok := m.store.(storage.StatsReporter); ok && m.loadErr == nil {
			if stats, err := reporter.Stats(m.ctx, gameID); err == nil {
				m.stats = &stats
			}
		}
	}

	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", s.Score),
			s.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m *ScoreboardModel) cycle(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + delta + len(m.games)) % len(m.games)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.back = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		rows := m.table.Rows()
		m.table = m.newTable()
		m.table.SetRows(rows)
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	b.WriteString(title.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.tabs(), m.width))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box.Render(m.body())))
	b.WriteString("\n")

	if line := m.summary(); line != "" {
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

func (m ScoreboardModel) tabs() string {
	inactive := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	active := inactive.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))

	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.current {
			tabs[i] = active.Render(g.Title)
		} else {
			tabs[i] = inactive.Render(g.Title)
		}
	}
	return strings.Join(tabs, " ")
}

func (m ScoreboardModel) body() string {
	muted := lipgloss.NewStyle().Padding(1, 4)
	switch {
	case m.loadErr != nil:
		return muted.Foreground(lipgloss.Color("9")).Render(fmt.Sprintf("Could not load scores:\n%v", m.loadErr))
	case len(m.scores) == 0:
		return muted.Foreground(lipgloss.Color("241")).Italic(true).Render("No scores recorded yet.\nPlay a round to set one!")
	}
	return m.table.View()
}

func (m ScoreboardModel) summary() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Rounds %d  |  Best %d  |  Average %.1f",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.back
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(ctx context.Context, store ScoreLister, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(ctx, store, width, height),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
