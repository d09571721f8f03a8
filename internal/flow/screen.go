// Package flow is the application core: the closed set of screens, the
// identity slots, and the named transitions between them. Every state
// change in the app goes through an operation in this package.
package flow

// Screen identifies one of the application's views. Exactly one screen is
// live at a time.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenRoleSelect
	ScreenStudentLogin
	ScreenStoryLibrary
	ScreenReadingSession
	ScreenProgress
	ScreenTeacherDashboard
	ScreenParentDashboard
)

func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenRoleSelect:
		return "role-select"
	case ScreenStudentLogin:
		return "student-login"
	case ScreenStoryLibrary:
		return "story-library"
	case ScreenReadingSession:
		return "reading-session"
	case ScreenProgress:
		return "progress"
	case ScreenTeacherDashboard:
		return "teacher-dashboard"
	case ScreenParentDashboard:
		return "parent-dashboard"
	}
	return "unknown"
}

// Role is what the user picks on the role-select screen. Picking a role is
// not authentication.
type Role int

const (
	RoleStudent Role = iota
	RoleTeacher
	RoleParent
)

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleTeacher:
		return "teacher"
	case RoleParent:
		return "parent"
	}
	return "unknown"
}
