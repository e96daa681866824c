// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tickarcade/internal/clock"
)

// TickMsg is sent to trigger a game simulation tick. Token is the clock
// generation the timer was armed with.
type TickMsg struct {
	Token clock.Token
	At    time.Time
}

// tickCmd arms c with interval and returns a command that fires one TickMsg
// tagged with the new token. Older in-flight ticks stop being accepted.
func tickCmd(c *clock.Clock, interval time.Duration) tea.Cmd {
	token := c.Arm(interval)
	return tea.Tick(c.Interval(), func(t time.Time) tea.Msg {
		return TickMsg{Token: token, At: t}
	})
}
