// Package teacherdash shows the class overview for a teacher.
package teacherdash

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"somabuddy/internal/i18n"
	"somabuddy/internal/nav"
	"somabuddy/internal/progress"
	"somabuddy/internal/screen"
	"somabuddy/internal/ui/layout"
	"somabuddy/internal/ui/theme"
)

// TeacherDashScreen renders a class report.
type TeacherDashScreen struct {
	lang   i18n.Lang
	report progress.ClassReport
}

var _ screen.Screen = (*TeacherDashScreen)(nil)

// New creates the teacher dashboard from a prepared report.
func New(report progress.ClassReport, lang i18n.Lang) *TeacherDashScreen {
	return &TeacherDashScreen{lang: lang, report: report}
}

func (t *TeacherDashScreen) Title() string {
	return i18n.T(t.lang, i18n.TeacherDashTitle)
}

func (t *TeacherDashScreen) Init() tea.Cmd {
	return nil
}

func (t *TeacherDashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "esc" {
		return t, func() tea.Msg { return nav.BackToRoleSelectMsg{} }
	}
	return t, nil
}

func (t *TeacherDashScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: i18n.T(t.lang, i18n.Back)},
	}
}

func (t *TeacherDashScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render(i18n.T(t.lang, i18n.TeacherDashTitle)))
	sections = append(sections, theme.Subtitle.Render(
		fmt.Sprintf("%s · %s", t.report.Teacher.Name, t.report.Teacher.School)))
	sections = append(sections, "")

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	for _, row := range t.report.Students {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(row.Student.AvatarColor)).Render("●")
		line := fmt.Sprintf("%s %-10s %s", dot, row.Student.Name,
			dim.Render(fmt.Sprintf("%s %-12s  ✦ %-4d  %d/%d%%",
				i18n.T(t.lang, i18n.LibraryLevel), row.Student.Level,
				row.Student.Points, row.SessionCount, row.AverageAccuracy)))
		sections = append(sections, line)
	}

	if len(t.report.Patterns) > 0 {
		sections = append(sections, "")
		sections = append(sections, theme.Body.Render(i18n.T(t.lang, i18n.TeacherPatterns)))
		for _, p := range t.report.Patterns {
			sections = append(sections, dim.Render(
				fmt.Sprintf("  %-16s ×%d  (%s)", p.Type, p.Frequency, strings.Join(p.Examples, ", "))))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
