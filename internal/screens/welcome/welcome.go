// Package welcome shows the splash screen with the language toggle.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"somabuddy/internal/i18n"
	"somabuddy/internal/nav"
	"somabuddy/internal/screen"
	"somabuddy/internal/ui/layout"
	"somabuddy/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	taglineAt    = 800 * time.Millisecond
	readyAt      = 1600 * time.Millisecond
)

const bookArt = `   ______ ______
  /      Y      \
 /   ~~~ | ~~~   \
|    ~~  |  ~~    |
|   ~~~~ | ~~~~   |
 \       |       /
  \______|______/`

var sparkleFrames = []string{"★", "✦"}

type tickMsg time.Time

// WelcomeScreen plays a short splash, then waits for a key to move on to
// role selection.
type WelcomeScreen struct {
	lang      i18n.Lang
	elapsed   time.Duration
	tickCount int
	done      bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates the welcome screen in the given language.
func New(lang i18n.Lang) *WelcomeScreen {
	return &WelcomeScreen{lang: lang}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if w.elapsed < readyAt {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tea.Tick(tickInterval, func(t time.Time) tea.Msg {
			return tickMsg(t)
		})

	case tea.KeyPressMsg:
		if msg.String() == "l" {
			next := w.lang.Toggle()
			return w, func() tea.Msg { return nav.LanguageToggledMsg{Lang: next} }
		}
		if w.elapsed >= readyAt {
			return w, w.start()
		}
		return w, nil
	}

	return w, nil
}

func (w *WelcomeScreen) start() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	return func() tea.Msg { return nav.GetStartedMsg{} }
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "l", Description: w.lang.Toggle().Name()},
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(bookArt)

	// Sparkles alternate around the book.
	sparkle := sparkleFrames[w.tickCount%len(sparkleFrames)]
	s1 := lipgloss.NewStyle().Foreground(theme.Accent).Render(sparkle)
	s2 := lipgloss.NewStyle().Foreground(theme.Secondary).Render(sparkle)
	lines := strings.Split(rendered, "\n")
	if len(lines) > 1 {
		lines[0] = s1 + "  " + lines[0] + "  " + s2
	}
	if len(lines) > 5 {
		lines[5] = s2 + "  " + lines[5] + "  " + s1
	}
	rendered = strings.Join(lines, "\n")

	sections = append(sections, rendered, "")
	sections = append(sections, theme.Title.Render(i18n.T(w.lang, i18n.AppTitle)))
	sections = append(sections, theme.Subtitle.Render(i18n.T(w.lang, i18n.AppSubtitle)))

	if w.elapsed >= taglineAt {
		sections = append(sections, "")
		sections = append(sections, theme.Body.Render(i18n.T(w.lang, i18n.AppTagline)))
	}

	if w.elapsed >= readyAt {
		sections = append(sections, "")
		sections = append(sections, theme.Hint.Render(i18n.T(w.lang, i18n.PressAnyKey)))
	}

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
