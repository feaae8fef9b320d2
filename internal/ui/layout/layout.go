package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/ui/theme"
)

// The arcade needs room for the cabinet frame and four choice rows.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// Header is what the top bar shows. Round is empty outside a game.
type Header struct {
	Title string
	Stars int
	Round string
}

var bar = lipgloss.NewStyle().
	Background(theme.BgCard).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.Border)

// IsTooSmall returns true if the terminal is below minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage renders the "terminal too small" message.
func RenderMinSizeMessage(width, height int) string {
	return lipgloss.NewStyle().
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Width(width).
		Height(height).
		Render(fmt.Sprintf(
			"Terminal too small!\n\nPlease resize to at\nleast %d x %d\n\nCurrent: %d x %d",
			MinWidth, MinHeight, width, height,
		))
}

// RenderHeader draws the brand on the left, the screen title centered and
// the round progress plus star total on the right.
func RenderHeader(h Header, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("  Mathplay")
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(h.Title)

	right := theme.Star.Render(fmt.Sprintf("★ %d", h.Stars))
	if h.Round != "" {
		right = lipgloss.NewStyle().Foreground(theme.Accent).Render(h.Round) + "   " + right
	}

	inner := max(width-4, 0)
	leftGap := max((inner-lipgloss.Width(center))/2-lipgloss.Width(left), 1)
	rightGap := max(inner-lipgloss.Width(left)-leftGap-lipgloss.Width(center)-lipgloss.Width(right), 1)

	content := left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
	return bar.Width(width).Render(content)
}

// RenderFooter renders the key hints. When they do not fit, hints are
// dropped from the front so the trailing ones (quit) stay visible.
func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(h.Key)+
			" "+theme.Caption.Render(h.Description))
	}

	content := "  " + strings.Join(parts, "   ")
	for len(parts) > 1 && lipgloss.Width(content) > width-4 {
		parts = parts[1:]
		content = "  " + strings.Join(parts, "   ")
	}
	return bar.Width(width).Render(content)
}

// RenderFrame stacks header, content and footer, giving the content all
// rows the bars leave free.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return header + "\n" + body + "\n" + footer
}
