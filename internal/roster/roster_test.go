package roster

import (
	"testing"

	"somabuddy/internal/i18n"
)

func seed() []Student {
	return []Student{
		{ID: 1, Name: "Amina", Age: 8, Grade: 3, Level: LevelBeginner, Points: 150, TotalSessions: 12, StreakDays: 5, Language: i18n.Kiswahili, AvatarColor: "#3b82f6", TeacherID: 1},
		{ID: 2, Name: "Juma", Age: 9, Grade: 4, Level: LevelIntermediate, Points: 230, TotalSessions: 18, StreakDays: 3, Language: i18n.English, AvatarColor: "#8b5cf6", TeacherID: 1},
	}
}

func TestApplyUpdatesOnlyTarget(t *testing.T) {
	r := New(seed())

	updated, err := r.Apply(1, SessionOutcome{Accuracy: 85, PointsEarned: 50})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if updated.Points != 200 {
		t.Errorf("points = %d, want 200", updated.Points)
	}
	if updated.TotalSessions != 13 {
		t.Errorf("totalSessions = %d, want 13", updated.TotalSessions)
	}
	if updated.StreakDays != 6 {
		t.Errorf("streakDays = %d, want 6", updated.StreakDays)
	}

	// Other students untouched.
	other, _ := r.Get(2)
	if other != seed()[1] {
		t.Errorf("student 2 changed: %+v", other)
	}
}

func TestApplyZeroPoints(t *testing.T) {
	r := New(seed())
	updated, err := r.Apply(1, SessionOutcome{Accuracy: 40, PointsEarned: 0})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if updated.Points != 150 {
		t.Errorf("points = %d, want unchanged 150", updated.Points)
	}
	if updated.TotalSessions != 13 {
		t.Errorf("totalSessions should still increment, got %d", updated.TotalSessions)
	}
}

func TestApplyRejectsNegativePoints(t *testing.T) {
	r := New(seed())
	if _, err := r.Apply(1, SessionOutcome{PointsEarned: -10}); err == nil {
		t.Fatal("expected error for negative points")
	}
	s, _ := r.Get(1)
	if s.Points != 150 || s.TotalSessions != 12 {
		t.Errorf("failed apply must not mutate: %+v", s)
	}
}

func TestApplyUnknownStudent(t *testing.T) {
	r := New(seed())
	if _, err := r.Apply(99, SessionOutcome{PointsEarned: 10}); err == nil {
		t.Fatal("expected error for unknown student")
	}
}

func TestSeedIsCopied(t *testing.T) {
	src := seed()
	r := New(src)
	src[0].Points = 9999
	s, _ := r.Get(1)
	if s.Points != 150 {
		t.Errorf("roster shares backing array with caller: points = %d", s.Points)
	}
}
