// Package progress tracks completed reading sessions and builds the
// dashboard reports derived from them.
package progress

import (
	"time"

	"github.com/google/uuid"
)

// Record is one completed reading session.
type Record struct {
	ID           int
	RunID        string // unique per session run
	StudentID    int
	StoryID      int
	Date         time.Time
	Accuracy     int // percent, 0-100
	Duration     time.Duration
	PointsEarned int
}

// ErrorPattern aggregates a phonetic confusion observed across sessions.
// Read-only reference data for the teacher dashboard.
type ErrorPattern struct {
	Type      string
	Frequency int
	Examples  []string
}

// Log is the in-memory session log. Records are appended when a reading
// session completes and never removed.
type Log struct {
	records []Record
	nextID  int
}

// NewLog creates a Log seeded with existing records.
func NewLog(seed []Record) *Log {
	l := &Log{records: make([]Record, len(seed)), nextID: 1}
	copy(l.records, seed)
	for _, r := range seed {
		if r.ID >= l.nextID {
			l.nextID = r.ID + 1
		}
	}
	return l
}

// Append records a completed session and returns the stored record.
func (l *Log) Append(studentID, storyID, accuracy int, duration time.Duration, pointsEarned int) Record {
	rec := Record{
		ID:           l.nextID,
		RunID:        uuid.NewString(),
		StudentID:    studentID,
		StoryID:      storyID,
		Date:         time.Now(),
		Accuracy:     accuracy,
		Duration:     duration,
		PointsEarned: pointsEarned,
	}
	l.nextID++
	l.records = append(l.records, rec)
	return rec
}

// ForStudent returns the records belonging to the given student, oldest
// first. A student with no sessions gets an empty slice, not an error.
func (l *Log) ForStudent(studentID int) []Record {
	out := []Record{}
	for _, r := range l.records {
		if r.StudentID == studentID {
			out = append(out, r)
		}
	}
	return out
}

// All returns every record, oldest first.
func (l *Log) All() []Record {
	out := make([]Record, len(l.records))
	copy(out, l.records)
	return out
}

// Len returns the number of records.
func (l *Log) Len() int {
	return len(l.records)
}
