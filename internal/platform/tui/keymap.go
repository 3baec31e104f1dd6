package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nilemile/nilemile/internal/config"
	"github.com/nilemile/nilemile/internal/core"
)

// KeyMapper translates Bubble Tea key messages to simulation input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapIntent translates a key message to a steering intent for the current frame.
func (km *KeyMapper) MapIntent(msg tea.KeyMsg) core.Intent {
	switch msg.String() {
	case "left", "a", "h":
		return core.IntentLeft
	case "right", "d", "l":
		return core.IntentRight
	case "down", "s":
		return core.IntentDuck
	}
	return core.IntentNone
}

// MapCommand translates a key message to a run control command.
// Returns the command (may be CommandNone) and whether it's a quit request.
func (km *KeyMapper) MapCommand(msg tea.KeyMsg) (cmd core.Command, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.CommandNone, true
	case "enter", " ":
		return core.CommandStart, false
	case "r":
		return core.CommandRestart, false
	case "esc", "b":
		return core.CommandAbort, false
	}
	return core.CommandNone, false
}

// MapDifficulty translates a key message to a difficulty selection.
// Only consulted while the menu is shown, so the bindings may overlap
// with steering keys. Returns the difficulty and whether the key selected one.
func (km *KeyMapper) MapDifficulty(msg tea.KeyMsg) (config.Difficulty, bool) {
	switch msg.String() {
	case "e", "1":
		return config.DifficultyEasy, true
	case "h", "2":
		return config.DifficultyHard, true
	}
	return "", false
}
