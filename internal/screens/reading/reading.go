// Package reading is the reading session screen: the story text paged in
// the student's language, with per-page tricky-word marking that feeds the
// accuracy score.
package reading

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"somabuddy/internal/content"
	"somabuddy/internal/i18n"
	"somabuddy/internal/nav"
	"somabuddy/internal/screen"
	"somabuddy/internal/ui/components"
	"somabuddy/internal/ui/layout"
	"somabuddy/internal/ui/theme"
)

// ReadingScreen pages through one story.
type ReadingScreen struct {
	lang   i18n.Lang
	story  content.Story
	pages  []string
	page   int
	tricky map[int]bool // pages the student marked as hard
	done   bool
}

var _ screen.Screen = (*ReadingScreen)(nil)

// New creates a reading session for the given story.
func New(story content.Story, lang i18n.Lang) *ReadingScreen {
	return &ReadingScreen{
		lang:   lang,
		story:  story,
		pages:  story.Pages(lang),
		tricky: make(map[int]bool),
	}
}

func (r *ReadingScreen) Title() string {
	return r.story.LocalTitle(r.lang)
}

func (r *ReadingScreen) Init() tea.Cmd {
	return nil
}

func (r *ReadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return r, nil
	}

	switch kmsg.String() {
	case "esc":
		return r, func() tea.Msg { return nav.BackToLibraryMsg{} }

	case "left", "h":
		if r.page > 0 {
			r.page--
		}

	case "right", "l", "space":
		if r.page < len(r.pages)-1 {
			r.page++
		}

	case "m":
		r.tricky[r.page] = !r.tricky[r.page]

	case "enter":
		if r.page == len(r.pages)-1 {
			return r, r.finish()
		}
		r.page++
	}

	return r, nil
}

// finish computes the session outcome and reports it once.
func (r *ReadingScreen) finish() tea.Cmd {
	if r.done {
		return nil
	}
	r.done = true
	accuracy := r.Accuracy()
	points := r.story.Points
	return func() tea.Msg {
		return nav.SessionFinishedMsg{Accuracy: accuracy, PointsEarned: points}
	}
}

// Accuracy scores the session: each clean page counts fully, each page
// marked tricky counts half.
func (r *ReadingScreen) Accuracy() int {
	total := len(r.pages)
	if total == 0 {
		return 100
	}
	score := 0
	for i := 0; i < total; i++ {
		if r.tricky[i] {
			score += 50
		} else {
			score += 100
		}
	}
	return score / total
}

func (r *ReadingScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: i18n.T(r.lang, i18n.ReadingPage)},
		{Key: "m", Description: i18n.T(r.lang, i18n.ReadingTricky)},
	}
	if r.page == len(r.pages)-1 {
		hints = append(hints, layout.KeyHint{Key: "Enter", Description: i18n.T(r.lang, i18n.ReadingFinish)})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: i18n.T(r.lang, i18n.ReadingGiveUp)})
	return hints
}

func (r *ReadingScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Render(r.story.LocalTitle(r.lang)))
	sections = append(sections, theme.Subtitle.Render(r.story.Author))
	sections = append(sections, "")

	textWidth := width - 20
	if textWidth < 30 {
		textWidth = 30
	}
	body := theme.StoryText.Width(textWidth).Render(r.pages[r.page])
	if r.tricky[r.page] {
		body = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Render(body)
	}
	sections = append(sections, body)
	sections = append(sections, "")

	sections = append(sections, components.ProgressBar(r.page+1, len(r.pages), 40))
	sections = append(sections, theme.Hint.Render(
		fmt.Sprintf("%s %d/%d", i18n.T(r.lang, i18n.ReadingPage), r.page+1, len(r.pages))))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
