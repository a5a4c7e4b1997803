package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/greed/internal/core"
)

// KeyMapper translates Bubble Tea key messages to robot directions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a direction.
// Returns the direction (may be DirNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (dir core.Direction, isQuit bool) {
	key := msg.String()

	// Closing the window ends the game
	switch key {
	case "ctrl+c", "q", "esc":
		return core.DirNone, true
	}

	return core.DirectionForKey(key), false
}
