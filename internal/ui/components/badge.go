package components

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"somabuddy/internal/ui/theme"
)

// StatBadge renders a labeled value chip for dashboards.
func StatBadge(label string, value any) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(
			lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(fmt.Sprintf("%v", value)) +
				"\n" +
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(label),
		)
}
