package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tickarcade/internal/core"
	"github.com/vovakirdan/tickarcade/internal/games/snake"
	"github.com/vovakirdan/tickarcade/internal/games/tictactoe"
)

// KeyMapper translates Bubble Tea key messages to game inputs.
// Bindings differ slightly per game: Space pauses Snake and digits pick
// Tic-Tac-Toe cells.
type KeyMapper struct {
	gameID string
}

// NewKeyMapper creates a key mapper for the given game. An empty id gives
// the generic bindings used by menus.
func NewKeyMapper(gameID string) *KeyMapper {
	return &KeyMapper{gameID: gameID}
}

// MapKey translates a key message to an input.
// Returns the input (Action may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (in core.Input, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.Press(core.ActionQuit), true
	}

	if km.gameID == tictactoe.ID && len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		if cell, ok := tictactoe.CellForDigit(int(key[0] - '0')); ok {
			return core.SelectCell(cell), false
		}
	}

	switch key {
	case "w", "up":
		return core.Press(core.ActionUp), false
	case "s", "down":
		return core.Press(core.ActionDown), false
	case "a", "left":
		return core.Press(core.ActionLeft), false
	case "d", "right":
		return core.Press(core.ActionRight), false
	case " ":
		if km.gameID == snake.ID {
			return core.Press(core.ActionPause), false
		}
		return core.Press(core.ActionJump), false
	case "enter":
		return core.Press(core.ActionConfirm), false
	case "b", "esc":
		return core.Press(core.ActionBack), false
	case "p":
		return core.Press(core.ActionPause), false
	case "r":
		return core.Press(core.ActionRestart), false
	}

	return core.Input{}, false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
