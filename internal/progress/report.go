package progress

import "somabuddy/internal/roster"

// StudentReport is the progress view for one logged-in student.
type StudentReport struct {
	Student         roster.Student
	Sessions        []Record // this student's records, oldest first
	AverageAccuracy int      // percent over Sessions, 0 when empty
	PointsEarned    int      // sum over Sessions
}

// BuildStudentReport computes a student's progress view from their records.
func BuildStudentReport(s roster.Student, records []Record) StudentReport {
	rep := StudentReport{Student: s, Sessions: records}
	if len(records) == 0 {
		return rep
	}
	var accSum int
	for _, r := range records {
		accSum += r.Accuracy
		rep.PointsEarned += r.PointsEarned
	}
	rep.AverageAccuracy = accSum / len(records)
	return rep
}

// StudentRollup is one row of a class or family overview.
type StudentRollup struct {
	Student         roster.Student
	SessionCount    int
	AverageAccuracy int
}

// ClassReport is the teacher dashboard view.
type ClassReport struct {
	Teacher  roster.Teacher
	Students []StudentRollup
	Patterns []ErrorPattern
}

// BuildClassReport rolls up every student for the teacher dashboard.
func BuildClassReport(t roster.Teacher, students []roster.Student, log *Log, patterns []ErrorPattern) ClassReport {
	rep := ClassReport{Teacher: t, Patterns: patterns}
	for _, s := range students {
		rep.Students = append(rep.Students, rollup(s, log))
	}
	return rep
}

// FamilyReport is the parent dashboard view.
type FamilyReport struct {
	Parent   roster.Parent
	Children []StudentRollup
}

// BuildFamilyReport rolls up the parent's children only.
func BuildFamilyReport(p roster.Parent, ros *roster.Roster, log *Log) FamilyReport {
	rep := FamilyReport{Parent: p}
	for _, id := range p.Children {
		s, ok := ros.Get(id)
		if !ok {
			continue
		}
		rep.Children = append(rep.Children, rollup(s, log))
	}
	return rep
}

func rollup(s roster.Student, log *Log) StudentRollup {
	recs := log.ForStudent(s.ID)
	r := StudentRollup{Student: s, SessionCount: len(recs)}
	if len(recs) > 0 {
		var sum int
		for _, rec := range recs {
			sum += rec.Accuracy
		}
		r.AverageAccuracy = sum / len(recs)
	}
	return r
}
