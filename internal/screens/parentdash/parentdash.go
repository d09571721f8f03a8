// Package parentdash shows a parent their children's reading progress.
package parentdash

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

// ParentDashScreen renders a family report, one card per child.
type ParentDashScreen struct {
	lang   i18n.Lang
	report progress.FamilyReport
}

var _ screen.Screen = (*ParentDashScreen)(nil)

// New creates the parent dashboard from a prepared report.
func New(report progress.FamilyReport, lang i18n.Lang) *ParentDashScreen {
	return &ParentDashScreen{lang: lang, report: report}
}

func (p *ParentDashScreen) Title() string {
	return i18n.T(p.lang, i18n.ParentDashTitle)
}

func (p *ParentDashScreen) Init() tea.Cmd {
	return nil
}

func (p *ParentDashScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "esc" {
		return p, func() tea.Msg { return nav.BackToRoleSelectMsg{} }
	}
	return p, nil
}

func (p *ParentDashScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: i18n.T(p.lang, i18n.Back)},
	}
}

func (p *ParentDashScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render(i18n.T(p.lang, i18n.ParentDashTitle)))
	sections = append(sections, theme.Subtitle.Render(p.report.Parent.Name))
	sections = append(sections, "")

	for _, child := range p.report.Children {
		name := lipgloss.NewStyle().
			Foreground(lipgloss.Color(child.Student.AvatarColor)).
			Bold(true).
			Render(child.Student.Name)
		badges := lipgloss.JoinHorizontal(lipgloss.Top,
			components.StatBadge(i18n.T(p.lang, i18n.ProgressSessions), fmt.Sprintf("%d", child.SessionCount)),
			" ",
			components.StatBadge(i18n.T(p.lang, i18n.LibraryPoints), fmt.Sprintf("%d", child.Student.Points)),
			" ",
			components.StatBadge(i18n.T(p.lang, i18n.ProgressAccuracy), fmt.Sprintf("%d%%", child.AverageAccuracy)),
			" ",
			components.StatBadge(i18n.T(p.lang, i18n.ProgressStreak), fmt.Sprintf("%d", child.Student.StreakDays)),
		)
		card := theme.Card.Render(lipgloss.JoinVertical(lipgloss.Left, name, badges))
		sections = append(sections, card)
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
