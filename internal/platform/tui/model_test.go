package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tickarcade/internal/config"
	"github.com/vovakirdan/tickarcade/internal/core"
	"github.com/vovakirdan/tickarcade/internal/games/snake"
	"github.com/vovakirdan/tickarcade/internal/games/tictactoe"
	"github.com/vovakirdan/tickarcade/internal/logging"
	"github.com/vovakirdan/tickarcade/internal/session"
	"github.com/vovakirdan/tickarcade/internal/storage"
)

func newTestModel(t *testing.T) (Model, *tictactoe.Game, *session.Session) {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}
	g := tictactoe.New(config.DefaultTicTacToeConfig(), tictactoe.ModeHotseat)
	sess := session.New(context.Background(), g, storage.NewMemory(), cfg, logging.Discard())
	m := NewModel(context.Background(), sess, nil, cfg, logging.Discard())
	m.Init()
	return m, g, sess
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	return send(t, m, TickMsg{Token: m.clock.Current(), At: time.Now()})
}

func TestModel_KeysApplyOnTick(t *testing.T) {
	// Given: a fresh hot-seat tic-tac-toe model
	m, g, sess := newTestModel(t)
	require.Equal(t, session.NotStarted, sess.Status())

	// When: Enter is pressed, nothing happens until the tick
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, session.NotStarted, sess.Status())

	m = tick(t, m)
	assert.Equal(t, session.Running, sess.Status())

	// When: the center digit is pressed and a tick runs
	m = send(t, m, runeKey("5"))
	tick(t, m)

	// Then: X holds the center
	assert.Equal(t, tictactoe.X, g.Snapshot().Board[4])
}

func TestModel_StaleTickIsDropped(t *testing.T) {
	m, _, sess := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	stale := m.clock.Current()
	m.clock.Arm(time.Second) // a newer timer is now live

	send(t, m, TickMsg{Token: stale, At: time.Now()})
	assert.Equal(t, session.NotStarted, sess.Status(), "stale tick must not run")

	tick(t, m)
	assert.Equal(t, session.Running, sess.Status())
}

func TestModel_RejectedMoveIsFlashed(t *testing.T) {
	m, _, _ := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m = send(t, m, runeKey("5"))
	m = tick(t, m)

	m = send(t, m, runeKey("5"))
	m = tick(t, m)

	assert.Contains(t, m.View(), "already occupied")
}

func TestModel_BackWhenNotRunningLeaves(t *testing.T) {
	m, _, _ := newTestModel(t)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, m.BackToMenu())
	assert.False(t, m.IsQuitting())
}

func TestModel_BackLeavesRoundWithoutPause(t *testing.T) {
	// Given: a running hot-seat round, which cannot pause
	m, _, sess := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	require.Equal(t, session.Running, sess.Status())
	require.False(t, sess.CanPause())

	// When: Esc is pressed mid-round
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	// Then: the round is over and the model heads back to the menu
	assert.Equal(t, session.Over, sess.Status())
	assert.True(t, m.BackToMenu())
	assert.False(t, m.IsQuitting())
}

func TestModel_BackPausesPausableGame(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}
	g, err := snake.New(config.DefaultSnakeConfig())
	require.NoError(t, err)
	sess := session.New(context.Background(), g, nil, cfg, logging.Discard())
	m := NewModel(context.Background(), sess, nil, cfg, logging.Discard())
	m.Init()

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m = tick(t, m)

	assert.Equal(t, session.Paused, sess.Status())
	assert.False(t, m.BackToMenu())
}

func TestModel_FlashFadesAfterRoundEnds(t *testing.T) {
	// Given: a rejected move flashed while the round runs
	m, _, sess := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)
	m = send(t, m, runeKey("5"))
	m = tick(t, m)
	m = send(t, m, runeKey("5"))
	m = tick(t, m)
	require.NotEmpty(t, m.flash)

	// When: the round is stopped and ticks keep coming past the flash time
	sess.Stop(context.Background())
	later := time.Now().Add(2 * flashFor)
	m = send(t, m, TickMsg{Token: m.clock.Current(), At: later})

	// Then: the stale error is not flashed again
	assert.Empty(t, m.flash)
}

func TestModel_QuitStopsTheRound(t *testing.T) {
	m, _, sess := newTestModel(t)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, m)

	next, cmd := m.Update(runeKey("q"))

	assert.NotNil(t, cmd)
	assert.True(t, next.(Model).IsQuitting())
	assert.Equal(t, session.Over, sess.Status())
}

func TestDrawOverlay(t *testing.T) {
	dst := core.NewScreen(80, 24)

	drawOverlay(dst, session.Snapshot{Title: "Snake", Status: session.NotStarted})
	assert.Contains(t, dst.String(), "Enter: start")

	dst.Clear()
	drawOverlay(dst, session.Snapshot{Status: session.Paused})
	assert.Contains(t, dst.String(), "PAUSED")

	dst.Clear()
	drawOverlay(dst, session.Snapshot{Status: session.Over, Outcome: "hit wall", Score: 30, Best: 30, NewBest: true})
	out := dst.String()
	assert.Contains(t, out, "GAME OVER - hit wall")
	assert.Contains(t, out, "Score 30  Best 30  NEW BEST!")
	assert.True(t, strings.Contains(dst.Row(23), "┘") || strings.Contains(dst.Row(22), "┘"))

	dst.Clear()
	drawOverlay(dst, session.Snapshot{Status: session.Running})
	assert.Equal(t, "", strings.TrimSpace(dst.String()))
}
