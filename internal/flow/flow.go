package flow

import (
	"time"

	"somabuddy/internal/content"
	"somabuddy/internal/i18n"
	"somabuddy/internal/progress"
	"somabuddy/internal/roster"
)

// GetStarted leaves the welcome splash for role selection.
func (s *State) GetStarted() {
	s.screen = ScreenRoleSelect
}

// SelectRole handles the role-select screen's choice. Students go on to the
// login screen; teachers and parents get the default identity set and land
// directly on their dashboard.
func (s *State) SelectRole(role Role) Notification {
	switch role {
	case RoleStudent:
		s.screen = ScreenStudentLogin
		return Notification{}
	case RoleTeacher:
		t := s.seed.DefaultTeacher()
		s.teacher = &t
		s.screen = ScreenTeacherDashboard
		return Notification{Message: i18n.RoleWelcome(s.lang, t.Name), Kind: NoteInfo}
	case RoleParent:
		p := s.seed.DefaultParent()
		s.parent = &p
		s.screen = ScreenParentDashboard
		return Notification{Message: i18n.RoleWelcome(s.lang, p.Name), Kind: NoteInfo}
	}
	return Notification{}
}

// LoginStudent sets the student identity and adopts the student's stored
// language preference. The login screen is responsible for validating the
// ID against the roster before calling this.
func (s *State) LoginStudent(st roster.Student) Notification {
	s.student = &st
	s.lang = st.Language
	s.screen = ScreenStoryLibrary
	return Notification{Message: i18n.WelcomeBack(s.lang, st.Name), Kind: NoteSuccess}
}

// SelectStory opens a story for reading. The story came from the library
// screen, so no validation happens here.
func (s *State) SelectStory(story content.Story) {
	s.story = &story
	s.storyOpen = time.Now()
	s.screen = ScreenReadingSession
}

// CompleteSession records a finished reading session for the logged-in
// student: points, session count and streak all increase, a session record
// is appended, and the app returns to the library. A call without a
// logged-in student is a no-op.
func (s *State) CompleteSession(accuracy, pointsEarned int) (Notification, bool) {
	if s.student == nil {
		return Notification{}, false
	}

	outcome := roster.SessionOutcome{Accuracy: accuracy, PointsEarned: pointsEarned}
	updated, err := s.roster.Apply(s.student.ID, outcome)
	if err != nil {
		return Notification{}, false
	}
	s.student = &updated

	storyID := 0
	if s.story != nil {
		storyID = s.story.ID
	}
	var elapsed time.Duration
	if !s.storyOpen.IsZero() {
		elapsed = time.Since(s.storyOpen)
	}
	s.sessions.Append(updated.ID, storyID, accuracy, elapsed, pointsEarned)

	s.story = nil
	s.storyOpen = time.Time{}
	s.screen = ScreenStoryLibrary
	return Notification{Message: i18n.SessionComplete(s.lang, pointsEarned), Kind: NoteSuccess}, true
}

// BackToRoleSelect resets all identity slots and returns to role selection.
// This is the universal reset transition.
func (s *State) BackToRoleSelect() {
	s.student = nil
	s.teacher = nil
	s.parent = nil
	s.story = nil
	s.storyOpen = time.Time{}
	s.screen = ScreenRoleSelect
}

// BackToStudentLogin returns to the login screen without touching identity.
func (s *State) BackToStudentLogin() {
	s.screen = ScreenStudentLogin
}

// BackToLibrary returns to the story library. Idempotent: calling it twice
// leaves state identical to calling it once.
func (s *State) BackToLibrary() {
	s.story = nil
	s.storyOpen = time.Time{}
	s.screen = ScreenStoryLibrary
}

// ChangeLanguage switches the session display language. Stored student
// preferences are not touched.
func (s *State) ChangeLanguage(lang i18n.Lang) Notification {
	if !lang.Valid() {
		return Notification{}
	}
	s.lang = lang
	return Notification{Message: i18n.LanguageChanged(lang), Kind: NoteInfo}
}

// ViewProgress moves a logged-in student to the progress screen and returns
// their session records. Without a student identity it is a no-op.
func (s *State) ViewProgress() ([]progress.Record, bool) {
	if s.student == nil {
		return nil, false
	}
	s.screen = ScreenProgress
	return s.sessions.ForStudent(s.student.ID), true
}
