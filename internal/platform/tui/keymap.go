package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pixelhop/runner-arcade/internal/input"
)

// Special is a session-level request a key can carry besides a game action.
type Special int

const (
	SpecialNone Special = iota
	SpecialQuit
	SpecialRestart
	SpecialMute
	SpecialScreenshot
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action plus any session-level
// special request. Terminals deliver no key-release events, so actions are
// fed to the input controller's programmatic trigger path.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (input.Action, Special) {
	switch msg.String() {
	case "ctrl+c", "q":
		return input.ActionNone, SpecialQuit
	case "r":
		return input.ActionNone, SpecialRestart
	case "m":
		return input.ActionNone, SpecialMute
	case "ctrl+s":
		return input.ActionNone, SpecialScreenshot
	}

	switch msg.String() {
	case " ", "up", "w":
		return input.ActionJump, SpecialNone
	case "down", "s":
		return input.ActionDown, SpecialNone
	case "left", "a":
		return input.ActionLeft, SpecialNone
	case "right", "d":
		return input.ActionRight, SpecialNone
	case "p", "esc":
		return input.ActionPause, SpecialNone
	case "enter":
		return input.ActionStart, SpecialNone
	}

	return input.ActionNone, SpecialNone
}
