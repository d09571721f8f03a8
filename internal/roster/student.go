// Package roster holds the people records: students, teachers and parents.
// The mutable student roster is owned by the flow layer; all mutation goes
// through Roster methods.
package roster

import "somabuddy/internal/i18n"

// ReadingLevel buckets a student's current reading ability.
type ReadingLevel string

const (
	LevelBeginner     ReadingLevel = "beginner"
	LevelIntermediate ReadingLevel = "intermediate"
	LevelAdvanced     ReadingLevel = "advanced"
)

// Student is one learner record.
type Student struct {
	ID            int
	Name          string
	Age           int
	Grade         int
	Level         ReadingLevel
	Points        int
	TotalSessions int
	StreakDays    int
	Language      i18n.Lang
	AvatarColor   string
	TeacherID     int
}

// Teacher is a read-only staff record, selected (not authenticated) on the
// role screen.
type Teacher struct {
	ID     int
	Name   string
	School string
	Email  string
}

// Parent is a read-only guardian record with links to their children.
type Parent struct {
	ID       int
	Name     string
	Email    string
	Children []int
}
