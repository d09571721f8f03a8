// Package roleselect lets the user pick student, teacher or parent.
package roleselect

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"somabuddy/internal/flow"
	"somabuddy/internal/i18n"
	"somabuddy/internal/nav"
	"somabuddy/internal/screen"
	"somabuddy/internal/ui/components"
	"somabuddy/internal/ui/layout"
	"somabuddy/internal/ui/theme"
)

// RoleSelectScreen is the role picker.
type RoleSelectScreen struct {
	lang i18n.Lang
	menu components.Menu
}

var _ screen.Screen = (*RoleSelectScreen)(nil)

// New creates the role-select screen.
func New(lang i18n.Lang) *RoleSelectScreen {
	choose := func(role flow.Role) func() tea.Cmd {
		return func() tea.Cmd {
			return func() tea.Msg { return nav.RoleChosenMsg{Role: role} }
		}
	}

	return &RoleSelectScreen{
		lang: lang,
		menu: components.NewMenu([]components.MenuItem{
			{Label: i18n.T(lang, i18n.RoleStudent), Action: choose(flow.RoleStudent)},
			{Label: i18n.T(lang, i18n.RoleTeacher), Action: choose(flow.RoleTeacher)},
			{Label: i18n.T(lang, i18n.RoleParent), Action: choose(flow.RoleParent)},
		}),
	}
}

func (r *RoleSelectScreen) Title() string {
	return i18n.T(r.lang, i18n.RoleSelectTitle)
}

func (r *RoleSelectScreen) Init() tea.Cmd {
	return nil
}

func (r *RoleSelectScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "l" {
		next := r.lang.Toggle()
		return r, func() tea.Msg { return nav.LanguageToggledMsg{Lang: next} }
	}

	var cmd tea.Cmd
	r.menu, cmd = r.menu.Update(msg)
	return r, cmd
}

func (r *RoleSelectScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "l", Description: r.lang.Toggle().Name()},
	}
}

func (r *RoleSelectScreen) View(width, height int) string {
	title := theme.Title.Render(i18n.T(r.lang, i18n.RoleSelectTitle))
	content := title + "\n\n" + r.menu.View()
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
