package game

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/problemgen"
	"github.com/abhisek/mathplay/internal/session"
	"github.com/abhisek/mathplay/internal/ui/components"
	"github.com/abhisek/mathplay/internal/ui/theme"
)

// maxHintItems caps the counting aid; larger pictures stop helping.
const maxHintItems = 60

func (s *GameScreen) View(width, height int) string {
	if s.quitConfirm {
		return s.renderQuitConfirm(width)
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(theme.Rule.Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	p := s.current()
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	b.WriteString(center.Inherit(theme.Prompt).Render(s.game.PromptFor(p)))
	b.WriteString("\n\n")
	b.WriteString(center.Render(theme.RenderExpression(p) + theme.Expression.Render(" = ?")))
	b.WriteString("\n\n")

	feedback := s.sess.Phase() == session.PhaseFeedback
	if hint := renderHint(p, feedback); hint != "" && height > 20 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hint))
		b.WriteString("\n\n")
	}

	if s.typing {
		b.WriteString(center.Render("Answer: " + s.input.View()))
		if s.inputErr != "" {
			b.WriteString("\n")
			b.WriteString(center.Inherit(theme.Incorrect).Render(s.inputErr))
		}
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	}
	b.WriteString("\n")

	if feedback {
		b.WriteString(s.renderFeedback(width, p))
	}
	return b.String()
}

func (s *GameScreen) renderInfoLine(width int) string {
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s  ·  Level %d", s.game.Family.DisplayName(), s.level))

	right := components.RoundDots(s.results, s.sess.CurrentRound(), s.sess.TotalRounds()) +
		theme.Caption.Render(fmt.Sprintf("   %d correct", s.sess.CorrectCount()))

	line := left
	if pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4; pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func (s *GameScreen) renderFeedback(width int, p problemgen.Problem) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n")
	if s.lastCorrect {
		b.WriteString(center.Inherit(theme.Correct).Render("Correct!"))
	} else {
		b.WriteString(center.Inherit(theme.Incorrect).Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(center.Inherit(theme.Caption).Render(
			fmt.Sprintf("You said %d. %s = %d", s.lastAnswer, p.Expression(), p.Answer)))
	}
	b.WriteString("\n\n")

	label := "Press any key to continue..."
	if s.sess.CurrentRound() == s.sess.TotalRounds() {
		label = "Press any key to see your stars..."
	}
	b.WriteString(center.Inherit(theme.Caption).Render(label))
	return b.String()
}

// renderHint draws multiply problems as equal groups. Division shows the
// dividend as loose items until feedback reveals the groups.
func renderHint(p problemgen.Problem, reveal bool) string {
	h := p.Hint
	if h == nil || h.Total() == 0 || h.Total() > maxHintItems {
		return ""
	}

	item, caption := theme.HintItem, theme.Caption

	if p.Op == problemgen.OpDivide && !reveal {
		var rows []string
		for left := h.Total(); left > 0; left -= 10 {
			rows = append(rows, item.Render(strings.Repeat("● ", min(left, 10))))
		}
		rows = append(rows, caption.Render(fmt.Sprintf("Share %d into %d equal groups", h.Total(), h.GroupCount)))
		return lipgloss.JoinVertical(lipgloss.Center, rows...)
	}

	groups := make([]string, h.GroupCount)
	for i := range groups {
		groups[i] = "[" + item.Render(strings.Repeat("●", h.ItemsPerGroup)) + "]"
	}
	var rows []string
	for i := 0; i < len(groups); i += 5 {
		rows = append(rows, strings.Join(groups[i:min(i+5, len(groups))], " "))
	}
	rows = append(rows, caption.Render(fmt.Sprintf("%d groups of %d", h.GroupCount, h.ItemsPerGroup)))
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (s *GameScreen) renderQuitConfirm(width int) string {
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(center.Inherit(theme.Prompt).Render("Stop playing?"))
	b.WriteString("\n")
	b.WriteString(center.Inherit(theme.Caption).Render("Stars are only earned for finished games."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ButtonRow([]string{"[Y] Stop", "[N] Keep going"}, s.quitSelected)))
	return b.String()
}
