// Package progressview shows the logged-in student's reading history.
package progressview

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"somabuddy/internal/i18n"
	"somabuddy/internal/nav"
	"somabuddy/internal/progress"
	"somabuddy/internal/screen"
	"somabuddy/internal/ui/components"
	"somabuddy/internal/ui/layout"
	"somabuddy/internal/ui/theme"
)

// maxRecent caps how many session rows are rendered.
const maxRecent = 8

// ProgressScreen renders one student's report.
type ProgressScreen struct {
	lang   i18n.Lang
	report progress.StudentReport
}

var _ screen.Screen = (*ProgressScreen)(nil)

// New creates the progress screen from a prepared report.
func New(report progress.StudentReport, lang i18n.Lang) *ProgressScreen {
	return &ProgressScreen{lang: lang, report: report}
}

func (p *ProgressScreen) Title() string {
	return i18n.T(p.lang, i18n.ProgressTitle)
}

func (p *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "esc", "enter":
			return p, func() tea.Msg { return nav.BackToLibraryMsg{} }
		}
	}
	return p, nil
}

func (p *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: i18n.T(p.lang, i18n.Back)},
	}
}

func (p *ProgressScreen) View(width, height int) string {
	var sections []string

	s := p.report.Student
	sections = append(sections, theme.Title.Render(i18n.T(p.lang, i18n.ProgressTitle)))
	sections = append(sections, theme.Subtitle.Render(s.Name))
	sections = append(sections, "")

	badges := lipgloss.JoinHorizontal(lipgloss.Top,
		components.StatBadge(i18n.T(p.lang, i18n.ProgressSessions), s.TotalSessions),
		" ",
		components.StatBadge(i18n.T(p.lang, i18n.LibraryPoints), s.Points),
		" ",
		components.StatBadge(i18n.T(p.lang, i18n.ProgressStreak), s.StreakDays),
		" ",
		components.StatBadge(i18n.T(p.lang, i18n.ProgressAccuracy), fmt.Sprintf("%d%%", p.report.AverageAccuracy)),
	)
	sections = append(sections, badges)
	sections = append(sections, "")

	if len(p.report.Sessions) == 0 {
		sections = append(sections, theme.Hint.Render(i18n.T(p.lang, i18n.ProgressEmpty)))
	} else {
		recent := p.report.Sessions
		if len(recent) > maxRecent {
			recent = recent[len(recent)-maxRecent:]
		}
		for i := len(recent) - 1; i >= 0; i-- {
			rec := recent[i]
			row := fmt.Sprintf("%s   %s %3d%%   ✦ %d",
				rec.Date.Format("2006-01-02"),
				i18n.T(p.lang, i18n.ProgressAccuracy),
				rec.Accuracy,
				rec.PointsEarned)
			sections = append(sections, theme.Body.Render(row))
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
