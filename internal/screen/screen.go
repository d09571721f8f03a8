// Package screen defines the contract every application screen implements.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"somabuddy/internal/ui/layout"
)

// Screen is one view in the app. The root model keeps exactly one Screen
// live at a time.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for screens with custom footer
// key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
