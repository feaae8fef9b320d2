package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/rewards"
	"github.com/abhisek/mathplay/internal/router"
	"github.com/abhisek/mathplay/internal/screen"
	"github.com/abhisek/mathplay/internal/store"
	"github.com/abhisek/mathplay/internal/ui/layout"
	"github.com/abhisek/mathplay/internal/ui/theme"
)

// pageSize is how many recent plays are loaded.
const pageSize = 50

// Reader is the slice of the result store the history screen reads.
type Reader interface {
	QueryPlayResults(ctx context.Context, opts store.QueryOpts) ([]store.PlayResultRecord, error)
	SessionAnswers(ctx context.Context, sessionID string) ([]store.AnswerEventRecord, error)
}

type historyLoadedMsg struct {
	Results []store.PlayResultRecord
	Err     error
}

type answersLoadedMsg struct {
	SessionID string
	Answers   []store.AnswerEventRecord
	Err       error
}

// HistoryScreen lists past plays. Enter expands a play into its answers.
type HistoryScreen struct {
	repo     Reader
	results  []store.PlayResultRecord
	answers  map[string][]store.AnswerEventRecord
	selected int
	expanded map[int]bool
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(repo Reader) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		answers:  make(map[string][]store.AnswerEventRecord),
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		results, err := s.repo.QueryPlayResults(context.Background(), store.QueryOpts{Limit: pageSize})
		return historyLoadedMsg{Results: results, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answers"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.results = msg.Results
		}
		s.loaded = true
		return s, nil

	case answersLoadedMsg:
		if msg.Err == nil {
			s.answers[msg.SessionID] = msg.Answers
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.results)-1 {
				s.selected++
			}
		case "enter":
			if s.selected >= len(s.results) {
				return s, nil
			}
			s.expanded[s.selected] = !s.expanded[s.selected]
			if s.expanded[s.selected] {
				return s, s.loadAnswers(s.results[s.selected].SessionID)
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) loadAnswers(sessionID string) tea.Cmd {
	if _, ok := s.answers[sessionID]; ok {
		return nil
	}
	return func() tea.Msg {
		answers, err := s.repo.SessionAnswers(context.Background(), sessionID)
		return answersLoadedMsg{SessionID: sessionID, Answers: answers, Err: err}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.results) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No games played yet. Pick one and earn some stars!")
	}

	var lines []string
	for i, r := range s.results {
		prefix := "  "
		if i == s.selected {
			prefix = "▸ "
		}

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		lines = append(lines, style.Render(prefix+resultLine(r)))

		if s.expanded[i] {
			lines = append(lines, s.answerLines(r.SessionID)...)
		}
	}

	return "\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n"))
}

func resultLine(r store.PlayResultRecord) string {
	title := r.GameID
	if g, err := catalog.Get(r.GameID); err == nil {
		title = g.Title
	}

	stars := rewards.StarString(r.Stars)
	if !r.Completed {
		stars = "stopped"
	}

	mins := int(r.Duration.Minutes())
	secs := int(r.Duration.Seconds()) % 60
	return fmt.Sprintf("%s  %-16s Lv %d  %d/%d  %3d%%  %d:%02d  %s",
		r.Timestamp.Format("Jan 02 15:04"), title, r.Level,
		r.Correct, r.TotalRounds, r.Accuracy, mins, secs, stars)
}

func (s *HistoryScreen) answerLines(sessionID string) []string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim).Italic(true)

	answers, ok := s.answers[sessionID]
	if !ok {
		return []string{dim.Render("      Loading answers...")}
	}
	if len(answers) == 0 {
		return []string{dim.Render("      No answers recorded")}
	}

	var lines []string
	for _, a := range answers {
		mark := theme.Correct.Render("✓")
		detail := fmt.Sprintf("%d", a.LearnerAnswer)
		if !a.Correct {
			mark = theme.Incorrect.Render("✗")
			detail = fmt.Sprintf("%d (answer %d)", a.LearnerAnswer, a.CorrectAnswer)
		}
		lines = append(lines, fmt.Sprintf("      %s %d. %s  %s", mark, a.Round, a.QuestionText, detail))
	}
	return lines
}
