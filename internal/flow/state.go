package flow

import (
	"time"

	"somabuddy/internal/content"
	"somabuddy/internal/i18n"
	"somabuddy/internal/progress"
	"somabuddy/internal/roster"
	"somabuddy/internal/store"
)

// NotificationKind distinguishes toast styles.
type NotificationKind int

const (
	NoteInfo NotificationKind = iota
	NoteSuccess
)

// Notification is a transient message emitted by a transition. The zero
// value means "nothing to show".
type Notification struct {
	Message string
	Kind    NotificationKind
}

// State holds everything the orchestrator owns. At most one of the three
// identity slots is set at any time; the live screen is always consistent
// with which slot is set. All mutation happens in the operations defined
// in flow.go.
type State struct {
	screen  Screen
	student *roster.Student
	teacher *roster.Teacher
	parent  *roster.Parent
	story   *content.Story
	lang    i18n.Lang

	roster    *roster.Roster
	sessions  *progress.Log
	patterns  []progress.ErrorPattern
	seed      *store.Memory
	storyOpen time.Time // when the current story was selected
}

// NewState builds the initial state from seed data: welcome screen, English,
// no identity.
func NewState(seed *store.Memory) *State {
	return &State{
		screen:   ScreenWelcome,
		lang:     i18n.English,
		roster:   roster.New(seed.Students()),
		sessions: progress.NewLog(seed.Sessions()),
		patterns: seed.ErrorPatterns(),
		seed:     seed,
	}
}

// Screen returns the live screen.
func (s *State) Screen() Screen { return s.screen }

// Language returns the session display language.
func (s *State) Language() i18n.Lang { return s.lang }

// Roster returns the student roster the state owns.
func (s *State) Roster() *roster.Roster { return s.roster }

// Sessions returns the session log the state owns.
func (s *State) Sessions() *progress.Log { return s.sessions }

// ErrorPatterns returns the error-pattern reference data.
func (s *State) ErrorPatterns() []progress.ErrorPattern { return s.patterns }

// Student returns the logged-in student, if any.
func (s *State) Student() (roster.Student, bool) {
	if s.student == nil {
		return roster.Student{}, false
	}
	return *s.student, true
}

// Teacher returns the selected teacher, if any.
func (s *State) Teacher() (roster.Teacher, bool) {
	if s.teacher == nil {
		return roster.Teacher{}, false
	}
	return *s.teacher, true
}

// Parent returns the selected parent, if any.
func (s *State) Parent() (roster.Parent, bool) {
	if s.parent == nil {
		return roster.Parent{}, false
	}
	return *s.parent, true
}

// Story returns the story being read, if any.
func (s *State) Story() (content.Story, bool) {
	if s.story == nil {
		return content.Story{}, false
	}
	return *s.story, true
}
