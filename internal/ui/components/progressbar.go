package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"somabuddy/internal/ui/theme"
)

// ProgressBar renders reading progress as a filled bar. done/total are
// clamped so a bad ratio never panics the view.
func ProgressBar(done, total, width int) string {
	if width < 2 {
		width = 2
	}
	if total < 1 {
		total = 1
	}
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}

	filled := done * width / total
	empty := width - filled

	bar := lipgloss.NewStyle().Foreground(theme.Success).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", empty))
	return bar
}
