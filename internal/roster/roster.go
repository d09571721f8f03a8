package roster

import "fmt"

// SessionOutcome carries the deltas a completed reading session applies to a
// student record.
type SessionOutcome struct {
	Accuracy     int
	PointsEarned int
}

// Roster is the mutable, in-memory student collection. It lives for the
// process lifetime; records are never deleted.
type Roster struct {
	students []Student
}

// New creates a Roster seeded with the given students. The slice is copied
// so callers can't mutate records behind the roster's back.
func New(students []Student) *Roster {
	r := &Roster{students: make([]Student, len(students))}
	copy(r.students, students)
	return r
}

// Get returns the student with the given id.
func (r *Roster) Get(id int) (Student, bool) {
	for _, s := range r.students {
		if s.ID == id {
			return s, true
		}
	}
	return Student{}, false
}

// All returns the students in seed order.
func (r *Roster) All() []Student {
	out := make([]Student, len(r.students))
	copy(out, r.students)
	return out
}

// Len returns the number of students.
func (r *Roster) Len() int {
	return len(r.students)
}

// Apply folds a session outcome into the identified student: points,
// total sessions and streak days all increase, nothing else changes.
// Returns the updated record.
func (r *Roster) Apply(id int, out SessionOutcome) (Student, error) {
	if out.PointsEarned < 0 {
		return Student{}, fmt.Errorf("points earned must be non-negative, got %d", out.PointsEarned)
	}
	for i, s := range r.students {
		if s.ID != id {
			continue
		}
		s.Points += out.PointsEarned
		s.TotalSessions++
		s.StreakDays++
		r.students[i] = s
		return s, nil
	}
	return Student{}, fmt.Errorf("student %d not in roster", id)
}
