// Package login is the student login screen: an ID field plus a quick-access
// list. Lookup and the "not found" message happen here; the flow layer only
// ever sees a valid student.
package login

import (
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"somabuddy/internal/i18n"
	"somabuddy/internal/nav"
	"somabuddy/internal/roster"
	"somabuddy/internal/screen"
	"somabuddy/internal/ui/components"
	"somabuddy/internal/ui/layout"
	"somabuddy/internal/ui/theme"
)

// quickAccessCount is how many students show in the quick-access list.
const quickAccessCount = 3

// LoginScreen collects a student ID.
type LoginScreen struct {
	lang    i18n.Lang
	roster  *roster.Roster
	input   components.TextInput
	quick   []roster.Student
	focus   int // 0 = input, 1 = quick list
	quickAt int
	errMsg  string
}

var _ screen.Screen = (*LoginScreen)(nil)

// New creates the login screen over the given roster.
func New(ros *roster.Roster, lang i18n.Lang) *LoginScreen {
	all := ros.All()
	n := quickAccessCount
	if len(all) < n {
		n = len(all)
	}
	return &LoginScreen{
		lang:   lang,
		roster: ros,
		input:  components.NewTextInput(i18n.T(lang, i18n.LoginPlaceholder), 6),
		quick:  all[:n],
	}
}

func (l *LoginScreen) Title() string {
	return i18n.T(l.lang, i18n.LoginTitle)
}

func (l *LoginScreen) Init() tea.Cmd {
	return nil
}

func (l *LoginScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		var cmd tea.Cmd
		l.input, cmd = l.input.Update(msg)
		return l, cmd
	}

	switch kmsg.String() {
	case "esc":
		return l, func() tea.Msg { return nav.BackToRoleSelectMsg{} }

	case "tab":
		if len(l.quick) > 0 {
			l.focus = 1 - l.focus
		}
		return l, nil

	case "enter":
		if l.focus == 1 {
			st := l.quick[l.quickAt]
			return l, func() tea.Msg { return nav.LoginSubmittedMsg{Student: st} }
		}
		return l, l.submit()

	case "up", "down":
		if l.focus == 1 {
			if kmsg.String() == "up" && l.quickAt > 0 {
				l.quickAt--
			}
			if kmsg.String() == "down" && l.quickAt < len(l.quick)-1 {
				l.quickAt++
			}
			return l, nil
		}
	}

	if l.focus == 0 {
		l.errMsg = ""
		var cmd tea.Cmd
		l.input, cmd = l.input.Update(msg)
		return l, cmd
	}
	return l, nil
}

// submit validates the typed ID against the roster. Unknown IDs surface a
// localized inline error and never reach the flow layer.
func (l *LoginScreen) submit() tea.Cmd {
	raw := strings.TrimSpace(l.input.Value())
	id, err := strconv.Atoi(raw)
	if err != nil {
		l.errMsg = i18n.T(l.lang, i18n.LoginNotFound)
		return nil
	}
	st, ok := l.roster.Get(id)
	if !ok {
		l.errMsg = i18n.T(l.lang, i18n.LoginNotFound)
		return nil
	}
	return func() tea.Msg { return nav.LoginSubmittedMsg{Student: st} }
}

func (l *LoginScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: i18n.T(l.lang, i18n.LoginButton)},
		{Key: "Tab", Description: i18n.T(l.lang, i18n.LoginQuickAccess)},
		{Key: "Esc", Description: i18n.T(l.lang, i18n.Back)},
	}
}

func (l *LoginScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render(i18n.T(l.lang, i18n.LoginTitle)))
	sections = append(sections, theme.Subtitle.Render(i18n.T(l.lang, i18n.LoginSubtitle)))
	sections = append(sections, "")
	sections = append(sections, l.input.View())

	if l.errMsg != "" {
		sections = append(sections, theme.Bad.Render(l.errMsg))
	}

	if len(l.quick) > 0 {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render(i18n.T(l.lang, i18n.LoginQuickAccess)))
		for i, st := range l.quick {
			row := st.Name + "  " +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(
					"#"+strconv.Itoa(st.ID)+" · "+string(st.Level))
			if l.focus == 1 && i == l.quickAt {
				row = theme.Selected.Render("▸ ") + row
			} else {
				row = "  " + row
			}
			// Each student keeps their avatar color as an accent dot.
			dot := lipgloss.NewStyle().Foreground(lipgloss.Color(st.AvatarColor)).Render("●")
			sections = append(sections, dot+" "+row)
		}
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
