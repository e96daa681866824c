package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tickarcade/internal/clock"
	"github.com/vovakirdan/tickarcade/internal/core"
	"github.com/vovakirdan/tickarcade/internal/session"
)

// flashFor is how long a rejected-input message stays on screen.
const flashFor = 2 * time.Second

// Model is the Bubble Tea model that hosts one game session.
// Keys are queued on the session; the session applies them on the next tick.
type Model struct {
	ctx     context.Context
	session *session.Session
	clock   *clock.Clock
	screen  *core.Screen
	keys    *KeyMapper
	logger  *log.Logger

	flash      string
	flashUntil time.Time

	standalone bool // Back outside a round quits the program
	quitting   bool
	backToMenu bool
}

// NewModel creates a model for sess. A nil clk gets a private clock; hosts
// that swap models in one program share a clock so stale ticks are dropped.
func NewModel(ctx context.Context, sess *session.Session, clk *clock.Clock, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if clk == nil {
		clk = clock.New(sess.Interval())
	}
	if logger == nil {
		logger = log.New(os.Stderr)
	}

	return Model{
		ctx:     ctx,
		session: sess,
		clock:   clk,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:    NewKeyMapper(sess.Game().ID()),
		logger:  logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.clock, m.session.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		m.session.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	in, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.session.Stop(m.ctx)
		m.quitting = true
		return m, tea.Quit
	}

	switch in.Action {
	case core.ActionNone:
		return m, nil

	case core.ActionBack:
		// Pausable games pause first; the rest leave the round at once.
		if m.session.Status() == session.Running && m.session.CanPause() {
			m.session.Queue(core.Press(core.ActionPause))
			return m, nil
		}
		m.session.Stop(m.ctx)
		m.backToMenu = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	m.session.Queue(in)
	return m, nil
}

// handleTick runs one session tick and re-arms the clock with the interval
// the tick left behind.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if !m.clock.Accept(msg.Token) {
		return m, nil
	}

	stepped := m.session.Tick(m.ctx)

	if err := m.session.Snapshot().Err; stepped && err != nil {
		m.flash = err.Error()
		m.flashUntil = msg.At.Add(flashFor)
	} else if msg.At.After(m.flashUntil) {
		m.flash = ""
	}

	return m, tickCmd(m.clock, m.session.Interval())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.render()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.Game().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
	}
}

func (m Model) render() {
	m.screen.Clear()
	m.session.Render(m.screen)
	drawOverlay(m.screen, m.session.Snapshot())
	if m.flash != "" && m.screen.Height() > 0 {
		m.screen.DrawTextColored(1, m.screen.Height()-1, m.flash, core.ColorBrightRed)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.render()
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run plays sess in its own Bubble Tea program until the user quits or
// leaves the finished round. backToMenu reports the latter.
func Run(ctx context.Context, sess *session.Session, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(ctx, sess, nil, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	if m, ok := finalModel.(Model); ok {
		return m.BackToMenu(), nil
	}
	return false, nil
}
