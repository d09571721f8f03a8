// Package library lists the stories assigned to the logged-in student.
package library

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"somabuddy/internal/content"
	"somabuddy/internal/i18n"
	"somabuddy/internal/nav"
	"somabuddy/internal/roster"
	"somabuddy/internal/screen"
	"somabuddy/internal/ui/components"
	"somabuddy/internal/ui/layout"
	"somabuddy/internal/ui/theme"
)

// LibraryScreen shows the assigned stories as a selectable list.
type LibraryScreen struct {
	lang    i18n.Lang
	student roster.Student
	menu    components.Menu
	empty   bool
}

var _ screen.Screen = (*LibraryScreen)(nil)

// New creates the library screen for a student.
func New(stories []content.Story, student roster.Student, lang i18n.Lang) *LibraryScreen {
	items := make([]components.MenuItem, 0, len(stories))
	for _, st := range stories {
		st := st
		items = append(items, components.MenuItem{
			Label: st.LocalTitle(lang),
			Meta: fmt.Sprintf("%s %d · %d %s · %s",
				i18n.T(lang, i18n.LibraryLevel), st.Level,
				st.Points, i18n.T(lang, i18n.LibraryPoints),
				st.Duration),
			Action: func() tea.Cmd {
				return func() tea.Msg { return nav.StoryChosenMsg{Story: st} }
			},
		})
	}

	return &LibraryScreen{
		lang:    lang,
		student: student,
		menu:    components.NewMenu(items),
		empty:   len(items) == 0,
	}
}

func (l *LibraryScreen) Title() string {
	return i18n.T(l.lang, i18n.LibraryTitle)
}

func (l *LibraryScreen) Init() tea.Cmd {
	return nil
}

func (l *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc":
			return l, func() tea.Msg { return nav.BackToStudentLoginMsg{} }
		case "p":
			return l, func() tea.Msg { return nav.ProgressRequestedMsg{} }
		}
	}

	var cmd tea.Cmd
	l.menu, cmd = l.menu.Update(msg)
	return l, cmd
}

func (l *LibraryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: i18n.T(l.lang, i18n.LoginButton)},
		{Key: "p", Description: i18n.T(l.lang, i18n.LibraryProgress)},
		{Key: "Esc", Description: i18n.T(l.lang, i18n.Back)},
	}
}

func (l *LibraryScreen) View(width, height int) string {
	var sections []string

	greeting := fmt.Sprintf("%s · %s %d · ✦ %d",
		l.student.Name,
		i18n.T(l.lang, i18n.LibraryLevel), levelRank(l.student.Level),
		l.student.Points)
	sections = append(sections, theme.Title.Render(i18n.T(l.lang, i18n.LibraryTitle)))
	sections = append(sections, theme.Subtitle.Render(greeting))
	sections = append(sections, "")

	if l.empty {
		sections = append(sections, theme.Hint.Render(i18n.T(l.lang, i18n.LibraryEmpty)))
	} else {
		sections = append(sections, l.menu.View())
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// levelRank maps the reading level to a 1-3 display number.
func levelRank(level roster.ReadingLevel) int {
	switch level {
	case roster.LevelIntermediate:
		return 2
	case roster.LevelAdvanced:
		return 3
	}
	return 1
}
