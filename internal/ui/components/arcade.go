package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/ui/theme"
)

const bannerArt = ` ███╗   ███╗ █████╗ ████████╗██╗  ██╗██████╗ ██╗      █████╗ ██╗   ██╗
 ████╗ ████║██╔══██╗╚══██╔══╝██║  ██║██╔══██╗██║     ██╔══██╗╚██╗ ██╔╝
 ██╔████╔██║███████║   ██║   ███████║██████╔╝██║     ███████║ ╚████╔╝
 ██║╚██╔╝██║██╔══██║   ██║   ██╔══██║██╔═══╝ ██║     ██╔══██║  ╚██╔╝
 ██║ ╚═╝ ██║██║  ██║   ██║   ██║  ██║██║     ███████╗██║  ██║   ██║
 ╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝╚═╝     ╚══════╝╚═╝  ╚═╝   ╚═╝`

// BannerWidth is the column width of the full block-letter banner.
const BannerWidth = 70

const bannerCompact = "M · A · T · H · P · L · A · Y"

// Banner returns the block-letter title in color, or the spaced-out
// compact form when width cannot fit the full art.
func Banner(width int, style lipgloss.Style) string {
	if width < BannerWidth {
		return style.Bold(true).Render(bannerCompact)
	}
	return style.Bold(true).Render(bannerArt)
}

// ContentWidth returns the uniform inner width used for all arcade sections.
// All boxes are rendered at this width so they visually align.
func ContentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	return min(max(w, 20), BannerWidth+2)
}

// CabinetFrame wraps content in a double-border cabinet frame,
// centering vertically and horizontally within the given dimensions.
func CabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard wraps content in a rounded-border card at the given content width.
func ArcadeCard(content string, cw int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// LevelBadge renders one level slot: its number and star rating, or a
// lock when the level is not open yet.
func LevelBadge(level int, stars string, unlocked, selected bool) string {
	body := fmt.Sprintf("Lv %d %s", level, stars)
	if !unlocked {
		body = fmt.Sprintf("Lv %d %s", level, strings.Repeat("·", 3))
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	switch {
	case selected && unlocked:
		style = style.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow)
	case selected:
		style = style.Foreground(theme.Locked).BorderForeground(theme.Accent)
	case unlocked:
		style = style.Foreground(theme.ArcadeYellow).BorderForeground(theme.Border)
	default:
		style = style.Foreground(theme.Locked).BorderForeground(theme.Border)
	}
	return style.Render(body)
}
