package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/rewards"
	"github.com/abhisek/mathplay/internal/ui/components"
	"github.com/abhisek/mathplay/internal/ui/theme"
)

// renderTitle returns the banner, or its compact fallback.
func renderTitle(cw int, compact bool) string {
	w := cw
	if compact {
		w = 0
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(components.Banner(w, lipgloss.NewStyle().Foreground(theme.ArcadeYellow)))
}

// renderStatsBar renders the star dashboard in a bordered box matching content width.
func renderStatsBar(p rewards.Progress, games []catalog.Game, cw int, compact bool) string {
	starStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	clearedStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	openStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var cleared, open, total int
	for _, g := range games {
		for _, lv := range g.Levels() {
			total++
			if p.Stars(g.ID, lv) > 0 {
				cleared++
			}
			if p.Unlocked(g.ID, lv) {
				open++
			}
		}
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			starStyle.Render(fmt.Sprintf("★%d", p.TotalStars())),
			clearedStyle.Render(fmt.Sprintf("◆%d", cleared)),
			openStyle.Render(fmt.Sprintf("▸%d/%d", open, total)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			starStyle.Render(fmt.Sprintf("★ %d STARS", p.TotalStars())),
			clearedStyle.Render(fmt.Sprintf("◆ %d CLEARED", cleared)),
			openStyle.Render(fmt.Sprintf("▸ %d/%d OPEN", open, total)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// visibleRange returns the [start, end) window of n rows that keeps
// selected on screen with at most rows entries.
func visibleRange(selected, n, rows int) (int, int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	start := min(max(selected-rows/2, 0), n-rows)
	return start, start + rows
}

// renderGameList renders the mini-games as text rows with their star
// totals, windowed to rows entries.
func renderGameList(games []catalog.Game, selected int, p rewards.Progress, cw, rows int) string {
	if len(games) == 0 {
		return ""
	}
	maxStars := rewards.MaxStars * len(games[0].Levels())
	start, end := visibleRange(selected, len(games), rows)

	var lines []string
	if start > 0 {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("▲"))
	}
	for i := start; i < end; i++ {
		g := games[i]
		label := fmt.Sprintf("%-16s %-15s ★ %2d/%d", g.Title, g.Family.DisplayName(), p.GameStars(g.ID), maxStars)
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ "+label+" "))
		} else {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   "+label+" "))
		}
	}
	if end < len(games) {
		lines = append(lines, lipgloss.NewStyle().Foreground(theme.TextDim).Render("▼"))
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// renderLevelRow renders the level badges of g with level highlighted.
func renderLevelRow(g catalog.Game, level int, p rewards.Progress, cw int) string {
	var badges []string
	for _, lv := range g.Levels() {
		badges = append(badges, components.LevelBadge(lv, rewards.StarString(p.Stars(g.ID, lv)), p.Unlocked(g.ID, lv), lv == level))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinHorizontal(lipgloss.Top, badges...))
}

// renderMascotBox renders the mascot and its line centered at content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	line := lipgloss.NewStyle().Foreground(theme.Text).Italic(true).Render(MascotLine(variant))
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.JoinHorizontal(lipgloss.Center, RenderMascot(variant), "   ", line))
}

// renderNote renders a dim one-line note under the level row.
func renderNote(text string, cw int, warn bool) string {
	fg := theme.TextDim
	if warn {
		fg = theme.Accent
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.TrimSpace(text))
}
