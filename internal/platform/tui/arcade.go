package tui

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tickarcade/internal/clock"
	"github.com/vovakirdan/tickarcade/internal/core"
	"github.com/vovakirdan/tickarcade/internal/registry"
	"github.com/vovakirdan/tickarcade/internal/session"
	"github.com/vovakirdan/tickarcade/internal/storage"
)

type arcadeState int

const (
	stateMenu arcadeState = iota
	stateOptions
	stateScores
	stateGame
)

// ArcadeModel manages the full arcade flow in one program:
// menu -> options -> game -> menu, with the scoreboard one key away.
// It is the top-level model for SSH sessions.
type ArcadeModel struct {
	ctx    context.Context
	store  storage.Backend
	config core.RuntimeConfig
	logger *log.Logger
	clock  *clock.Clock // shared by every game model so old ticks are dropped

	state   arcadeState
	menu    MenuModel
	options OptionsModel
	scores  ScoreboardModel
	game    Model
	gameID  string

	quitting bool
}

// NewArcadeModel creates the flow starting at the menu. store may be nil.
func NewArcadeModel(ctx context.Context, store storage.Backend, cfg core.RuntimeConfig, logger *log.Logger) ArcadeModel {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	return ArcadeModel{
		ctx:    ctx,
		store:  store,
		config: cfg,
		logger: logger,
		clock:  clock.New(cfg.TickInterval()),
		menu:   NewMenuModel(ctx, scoreStore(store), cfg),
	}
}

// scoreStore keeps a nil backend a nil interface.
func scoreStore(b storage.Backend) session.ScoreStore {
	if b == nil {
		return nil
	}
	return b
}

// Init initializes the flow.
func (m ArcadeModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen and handles transitions.
func (m ArcadeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.state {
	case stateOptions:
		return m.updateOptions(msg)
	case stateScores:
		return m.updateScores(msg)
	case stateGame:
		return m.updateGame(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m ArcadeModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.state = stateScores
		var lister ScoreLister
		if m.store != nil {
			lister = m.store
		}
		m.scores = NewScoreboardModel(m.ctx, lister, m.config.ScreenW, m.config.ScreenH)
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		m.gameID = m.menu.Selected().GameID
		m.state = stateOptions
		m.options = NewOptionsModel(m.gameID, registry.Options{}, m.config.ScreenW, m.config.ScreenH)
		return m, m.options.Init()
	}

	return m, cmd
}

func (m ArcadeModel) updateOptions(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.options.Update(msg)
	if om, ok := next.(OptionsModel); ok {
		m.options = om
	}

	switch {
	case m.options.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.options.WantsBack():
		return m.backToMenu()
	case m.options.Chosen() != nil:
		return m.startGame(*m.options.Chosen())
	}

	return m, cmd
}

func (m ArcadeModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	if sm, ok := next.(ScoreboardModel); ok {
		m.scores = sm
	}

	switch {
	case m.scores.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		return m.backToMenu()
	}

	return m, cmd
}

func (m ArcadeModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(Model); ok {
		m.game = gm
	}

	switch {
	case m.game.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.game.BackToMenu():
		return m.backToMenu()
	}

	return m, cmd
}

func (m ArcadeModel) startGame(opts registry.Options) (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID, opts)
	if err != nil {
		m.logger.Error("cannot create game", "game", m.gameID, "err", err)
		return m.backToMenu()
	}

	sess := session.New(m.ctx, game, scoreStore(m.store), m.config, m.logger)
	m.game = NewModel(m.ctx, sess, m.clock, m.config, m.logger)
	m.state = stateGame
	m.logger.Debug("game started", "game", m.gameID, "difficulty", opts.Difficulty, "mode", opts.Mode)
	return m, m.game.Init()
}

func (m ArcadeModel) backToMenu() (tea.Model, tea.Cmd) {
	m.state = stateMenu
	m.game = Model{}
	m.menu = NewMenuModel(m.ctx, scoreStore(m.store), m.config)
	return m, m.menu.Init()
}

// View renders the active screen.
func (m ArcadeModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.state {
	case stateOptions:
		return m.options.View()
	case stateScores:
		return m.scores.View()
	case stateGame:
		return m.game.View()
	default:
		return m.menu.View()
	}
}
