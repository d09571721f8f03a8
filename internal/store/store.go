// Package store owns the seed data and hands it out behind narrow read
// interfaces. State lives in memory for the process lifetime only;
// durable persistence is deliberately out of scope.
package store

import (
	"somabuddy/internal/content"
	"somabuddy/internal/progress"
	"somabuddy/internal/roster"
)

// StudentSource provides the seed students.
type StudentSource interface {
	Students() []roster.Student
}

// StorySource provides the story catalog.
type StorySource interface {
	Stories() []content.Story
}

// SessionSource provides historical session records and error patterns.
type SessionSource interface {
	Sessions() []progress.Record
	ErrorPatterns() []progress.ErrorPattern
}

// PeopleSource provides teacher and parent records.
type PeopleSource interface {
	Teachers() []roster.Teacher
	Parents() []roster.Parent
}

// Memory is the in-memory store backing the whole app.
type Memory struct {
	students []roster.Student
	stories  []content.Story
	sessions []progress.Record
	patterns []progress.ErrorPattern
	teachers []roster.Teacher
	parents  []roster.Parent
}

var (
	_ StudentSource = (*Memory)(nil)
	_ StorySource   = (*Memory)(nil)
	_ SessionSource = (*Memory)(nil)
	_ PeopleSource  = (*Memory)(nil)
)

// Students returns the seed student records.
func (m *Memory) Students() []roster.Student {
	return append([]roster.Student(nil), m.students...)
}

// Stories returns the seed story catalog.
func (m *Memory) Stories() []content.Story {
	return append([]content.Story(nil), m.stories...)
}

// Sessions returns the historical session records.
func (m *Memory) Sessions() []progress.Record {
	return append([]progress.Record(nil), m.sessions...)
}

// ErrorPatterns returns the aggregated error-pattern reference data.
func (m *Memory) ErrorPatterns() []progress.ErrorPattern {
	return append([]progress.ErrorPattern(nil), m.patterns...)
}

// Teachers returns the teacher records.
func (m *Memory) Teachers() []roster.Teacher {
	return append([]roster.Teacher(nil), m.teachers...)
}

// Parents returns the parent records.
func (m *Memory) Parents() []roster.Parent {
	return append([]roster.Parent(nil), m.parents...)
}

// DefaultTeacher returns the teacher selected when the teacher role is
// chosen. Role selection is not authentication.
func (m *Memory) DefaultTeacher() roster.Teacher {
	return m.teachers[0]
}

// DefaultParent returns the parent selected when the parent role is chosen.
func (m *Memory) DefaultParent() roster.Parent {
	return m.parents[0]
}
