package components

import (
	"strings"

	"github.com/abhisek/mathplay/internal/ui/theme"
)

// Button renders a single button label, highlighted when active.
func Button(label string, active bool) string {
	if active {
		return theme.ButtonActive.Render("▸ " + label)
	}
	return theme.ButtonInactive.Render(label)
}

// ButtonRow renders buttons side by side with the one at active
// highlighted. An out-of-range active highlights none.
func ButtonRow(labels []string, active int) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = Button(l, i == active)
	}
	return strings.Join(parts, "   ")
}
