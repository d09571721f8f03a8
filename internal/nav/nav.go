// Package nav defines the messages screens emit to request a flow
// transition. The root model translates each message into the matching
// flow operation and swaps the live screen; screens never mutate flow
// state themselves.
package nav

import (
	"somabuddy/internal/content"
	"somabuddy/internal/flow"
	"somabuddy/internal/i18n"
	"somabuddy/internal/roster"
)

// GetStartedMsg leaves the welcome screen for role selection.
type GetStartedMsg struct{}

// RoleChosenMsg carries the role picked on the role-select screen.
type RoleChosenMsg struct {
	Role flow.Role
}

// LoginSubmittedMsg carries a student the login screen already validated
// against the roster.
type LoginSubmittedMsg struct {
	Student roster.Student
}

// StoryChosenMsg carries the story picked in the library.
type StoryChosenMsg struct {
	Story content.Story
}

// SessionFinishedMsg carries a finished reading session's outcome.
type SessionFinishedMsg struct {
	Accuracy     int
	PointsEarned int
}

// ProgressRequestedMsg asks for the logged-in student's progress screen.
type ProgressRequestedMsg struct{}

// LanguageToggledMsg asks to switch the session display language.
type LanguageToggledMsg struct {
	Lang i18n.Lang
}

// BackToRoleSelectMsg is the universal reset: clear identities, show
// role selection.
type BackToRoleSelectMsg struct{}

// BackToStudentLoginMsg returns to the student login screen.
type BackToStudentLoginMsg struct{}

// BackToLibraryMsg returns to the story library.
type BackToLibraryMsg struct{}
