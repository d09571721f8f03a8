package progress

import (
	"testing"
	"time"

	"somabuddy/internal/roster"
)

func TestAppendAssignsIDsAndRunIDs(t *testing.T) {
	log := NewLog(nil)

	a := log.Append(1, 1, 85, 10*time.Minute, 50)
	b := log.Append(1, 2, 90, 8*time.Minute, 75)

	if a.ID == b.ID {
		t.Error("record ids must be unique")
	}
	if a.RunID == "" || a.RunID == b.RunID {
		t.Error("run ids must be unique and non-empty")
	}
	if log.Len() != 2 {
		t.Errorf("len = %d, want 2", log.Len())
	}
}

func TestAppendAfterSeedContinuesIDs(t *testing.T) {
	seed := []Record{{ID: 7, StudentID: 1, StoryID: 1, Accuracy: 80}}
	log := NewLog(seed)

	rec := log.Append(1, 2, 85, time.Minute, 10)
	if rec.ID != 8 {
		t.Errorf("id = %d, want 8", rec.ID)
	}
}

func TestForStudentEmptyIsNotNil(t *testing.T) {
	log := NewLog([]Record{{ID: 1, StudentID: 1}})

	got := log.ForStudent(42)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no records, got %d", len(got))
	}
}

func TestForStudentFilters(t *testing.T) {
	log := NewLog([]Record{
		{ID: 1, StudentID: 1, Accuracy: 80},
		{ID: 2, StudentID: 2, Accuracy: 90},
		{ID: 3, StudentID: 1, Accuracy: 100},
	})

	got := log.ForStudent(1)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("forStudent(1) = %+v", got)
	}
}

func TestBuildStudentReport(t *testing.T) {
	s := roster.Student{ID: 1, Name: "Amina"}
	recs := []Record{
		{Accuracy: 80, PointsEarned: 50},
		{Accuracy: 90, PointsEarned: 25},
	}

	rep := BuildStudentReport(s, recs)
	if rep.AverageAccuracy != 85 {
		t.Errorf("avg accuracy = %d, want 85", rep.AverageAccuracy)
	}
	if rep.PointsEarned != 75 {
		t.Errorf("points = %d, want 75", rep.PointsEarned)
	}
}

func TestBuildStudentReportEmpty(t *testing.T) {
	rep := BuildStudentReport(roster.Student{ID: 1}, []Record{})
	if rep.AverageAccuracy != 0 || rep.PointsEarned != 0 {
		t.Errorf("empty report should be zeroed: %+v", rep)
	}
}

func TestBuildFamilyReportSkipsUnknownChildren(t *testing.T) {
	ros := roster.New([]roster.Student{{ID: 1, Name: "Amina"}})
	log := NewLog([]Record{{ID: 1, StudentID: 1, Accuracy: 85}})
	p := roster.Parent{ID: 1, Name: "Mr. Kamau", Children: []int{1, 99}}

	rep := BuildFamilyReport(p, ros, log)
	if len(rep.Children) != 1 {
		t.Fatalf("children = %d, want 1", len(rep.Children))
	}
	if rep.Children[0].AverageAccuracy != 85 || rep.Children[0].SessionCount != 1 {
		t.Errorf("rollup = %+v", rep.Children[0])
	}
}

func TestBuildClassReportIncludesPatterns(t *testing.T) {
	tch := roster.Teacher{ID: 1, Name: "Ms. Wanjiku"}
	students := []roster.Student{{ID: 1}, {ID: 2}}
	log := NewLog(nil)
	patterns := []ErrorPattern{{Type: "vowel-swap", Frequency: 5}}

	rep := BuildClassReport(tch, students, log, patterns)
	if len(rep.Students) != 2 {
		t.Errorf("students = %d, want 2", len(rep.Students))
	}
	if len(rep.Patterns) != 1 || rep.Patterns[0].Type != "vowel-swap" {
		t.Errorf("patterns = %+v", rep.Patterns)
	}
}
