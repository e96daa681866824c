package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tickarcade/internal/config"
	"github.com/vovakirdan/tickarcade/internal/core"
	"github.com/vovakirdan/tickarcade/internal/games/tictactoe"
	"github.com/vovakirdan/tickarcade/internal/registry"
)

// optionChoice is one selectable line of the options screen.
type optionChoice struct {
	label string
	value string
}

// optionsFor lists what the player can choose for a game before it starts.
// Tic-Tac-Toe picks an opponent, the others a difficulty preset.
func optionsFor(gameID string) (heading string, choices []optionChoice) {
	if gameID == tictactoe.ID {
		return "Choose opponent:", []optionChoice{
			{label: "Versus computer", value: string(tictactoe.ModeCPU)},
			{label: "Two players (hot seat)", value: string(tictactoe.ModeHotseat)},
		}
	}
	return "Choose difficulty:", []optionChoice{
		{label: "Easy", value: string(config.DifficultyEasy)},
		{label: "Normal", value: string(config.DifficultyNormal)},
		{label: "Hard", value: string(config.DifficultyHard)},
		{label: "Fixed (no speed-up)", value: string(config.DifficultyFixed)},
	}
}

// OptionsModel lets users choose a difficulty or mode for the selected game.
type OptionsModel struct {
	gameID    string
	title     string
	heading   string
	choices   []optionChoice
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	base      registry.Options
	chosen    *registry.Options
	quitting  bool
	back      bool
}

// NewOptionsModel creates the options screen. base carries settings that
// came from flags, such as a config path.
func NewOptionsModel(gameID string, base registry.Options, width, height int) OptionsModel {
	heading, choices := optionsFor(gameID)
	m := OptionsModel{
		gameID:    gameID,
		title:     registry.Title(gameID),
		heading:   heading,
		choices:   choices,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(""),
		base:      base,
	}

	// Start on the current choice, "normal" otherwise.
	current := base.Difficulty
	if gameID == tictactoe.ID {
		current = base.Mode
	}
	if current == "" && gameID != tictactoe.ID {
		current = string(config.DifficultyNormal)
	}
	for i, c := range choices {
		if c.value == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m OptionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m OptionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m OptionsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		opts := m.base
		if m.gameID == tictactoe.ID {
			opts.Mode = m.choices[m.cursor].value
		} else {
			opts.Difficulty = m.choices[m.cursor].value
		}
		m.chosen = &opts
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the options list.
func (m OptionsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.heading, m.width))
	b.WriteString("\n\n")

	for i, c := range m.choices {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, c.label), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Chosen returns the options picked, or nil if the user backed out.
func (m OptionsModel) Chosen() *registry.Options {
	return m.chosen
}

// IsQuitting returns true if user wants to quit.
func (m OptionsModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m OptionsModel) WantsBack() bool {
	return m.back
}

// RunOptions runs the options screen. A nil result means back or quit;
// quit reports which one.
func RunOptions(ctx context.Context, gameID string, base registry.Options, cfg core.RuntimeConfig) (opts *registry.Options, quit bool, err error) {
	p := tea.NewProgram(
		NewOptionsModel(gameID, base, cfg.ScreenW, cfg.ScreenH),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(OptionsModel)
	if !ok {
		return nil, true, nil
	}
	return m.Chosen(), m.IsQuitting(), nil
}
