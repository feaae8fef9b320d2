package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/rewards"
	"github.com/abhisek/mathplay/internal/router"
	"github.com/abhisek/mathplay/internal/screen"
	"github.com/abhisek/mathplay/internal/session"
	"github.com/abhisek/mathplay/internal/ui/components"
	"github.com/abhisek/mathplay/internal/ui/layout"
	"github.com/abhisek/mathplay/internal/ui/theme"
)

// Launcher builds a new play-through of the same game at level.
type Launcher func(level int) screen.Screen

// SummaryScreen shows how a finished play-through went.
type SummaryScreen struct {
	game    catalog.Game
	level   int
	summary session.Summary
	award   rewards.Award
	launch  Launcher
	menu    components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen. A nil launch leaves only the way home.
func New(game catalog.Game, level int, sum session.Summary, award rewards.Award, launch Launcher) *SummaryScreen {
	s := &SummaryScreen{
		game:    game,
		level:   level,
		summary: sum,
		award:   award,
		launch:  launch,
	}
	s.menu = s.buildMenu()
	return s
}

func (s *SummaryScreen) lastLevel() int {
	levels := s.game.Levels()
	return levels[len(levels)-1]
}

// nextLevelEarned reports whether this play rated well enough to open
// the following level.
func (s *SummaryScreen) nextLevelEarned() bool {
	return s.award.Stars >= rewards.UnlockStars && s.level < s.lastLevel()
}

func (s *SummaryScreen) buildMenu() components.Menu {
	home := components.MenuItem{
		Label:  "Back to games",
		Action: func() tea.Cmd { return popCmd },
	}
	if s.launch == nil {
		return components.NewMenu([]components.MenuItem{home})
	}

	items := []components.MenuItem{{
		Label:  "Play again",
		Detail: fmt.Sprintf("Level %d", s.level),
		Action: func() tea.Cmd { return s.play(s.level) },
	}}
	if s.level < s.lastLevel() {
		next := components.MenuItem{
			Label:  "Next level",
			Detail: fmt.Sprintf("Level %d", s.level+1),
			Action: func() tea.Cmd { return s.play(s.level + 1) },
		}
		if !s.nextLevelEarned() {
			next.Disabled = true
			next.Detail = fmt.Sprintf("needs %s", rewards.StarString(rewards.UnlockStars))
		}
		items = append(items, next)
	}
	items = append(items, home)

	m := components.NewMenu(items)
	m.LabelWidth = 14
	if s.nextLevelEarned() {
		m.Selected = 1
	}
	return m
}

func popCmd() tea.Msg { return router.PopScreenMsg{} }

func (s *SummaryScreen) play(level int) tea.Cmd {
	next := s.launch(level)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Select"},
	}
	if s.launch != nil {
		hints = append(hints, layout.KeyHint{Key: "R", Description: "Play again"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Home"})
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "esc":
		return s, popCmd
	case "r", "R":
		if s.launch != nil {
			return s, s.play(s.level)
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	center := func(st lipgloss.Style, text string) string {
		return st.Width(width).Align(lipgloss.Center).Render(text)
	}

	var b strings.Builder

	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		fmt.Sprintf("%s  ·  Level %d", s.game.Title, s.level)))
	b.WriteString("\n\n")

	b.WriteString(center(theme.Star.Bold(true), rewards.StarString(s.award.Stars)))
	b.WriteString("\n")
	b.WriteString(center(theme.Prompt, rewards.Cheer(s.award.Stars)))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	statsLine := fmt.Sprintf("Correct: %d/%d        Accuracy: %d%%        Time: %d:%02d",
		sum.Correct, sum.TotalRounds, sum.Accuracy, mins, secs)
	b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Text), statsLine))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("Accuracy", float64(sum.Accuracy)/100, true, min(width-8, 50))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	if s.award.NewBest && s.award.Stars > 0 {
		b.WriteString(center(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true), "New best for this level!"))
		b.WriteString("\n")
	}
	if s.award.UnlockedLevel > 0 {
		b.WriteString(center(theme.Correct, fmt.Sprintf("Level %d unlocked!", s.award.UnlockedLevel)))
		b.WriteString("\n")
	} else if s.award.Stars < rewards.UnlockStars && s.level < s.lastLevel() {
		b.WriteString(center(theme.Caption,
			fmt.Sprintf("Earn %d stars to unlock level %d.", rewards.UnlockStars, s.level+1)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	return b.String()
}
