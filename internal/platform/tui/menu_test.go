package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tickarcade/internal/core"
	"github.com/vovakirdan/tickarcade/internal/storage"
)

func TestMenuCursorWraps(t *testing.T) {
	m := NewMenuModel(context.Background(), nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if len(m.items) < 2 {
		t.Fatalf("expected at least 2 games, got %d", len(m.items))
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(MenuModel)
	if m.cursor != len(m.items)-1 {
		t.Errorf("up from the top: cursor = %d, expected %d", m.cursor, len(m.items)-1)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	if m.cursor != 0 {
		t.Errorf("down from the bottom: cursor = %d, expected 0", m.cursor)
	}
}

func TestMenuReadsBestScores(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemory()
	if err := store.SetBestScore(ctx, "tictactoe", 4); err != nil {
		t.Fatal(err)
	}

	m := NewMenuModel(ctx, store, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	for _, item := range m.items {
		want := 0
		if item.GameID == "tictactoe" {
			want = 4
		}
		if item.Best != want {
			t.Errorf("%s best = %d, expected %d", item.GameID, item.Best, want)
		}
	}
}

func TestMenuSelectAndScoreboard(t *testing.T) {
	m := NewMenuModel(context.Background(), nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	sel := next.(MenuModel).Selected()
	if sel == nil || sel.GameID != m.items[0].GameID || cmd == nil {
		t.Fatalf("enter should select the first game and quit, got %+v", sel)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !next.(MenuModel).WantsScoreboard() {
		t.Error("tab should open the scoreboard")
	}
}

func TestCenterTextIsRuneAware(t *testing.T) {
	if got := centerText("ab", 6); got != "  ab" {
		t.Errorf("centerText = %q", got)
	}
	if got := centerText("░░", 4); got != " ░░" {
		t.Errorf("centerText multibyte = %q", got)
	}
	if got := centerText("toolong", 3); got != "toolong" {
		t.Errorf("centerText overflow = %q", got)
	}
}
