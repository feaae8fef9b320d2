package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/problemgen"
	"github.com/abhisek/mathplay/internal/rewards"
	"github.com/abhisek/mathplay/internal/router"
	"github.com/abhisek/mathplay/internal/screen"
	"github.com/abhisek/mathplay/internal/screens/summary"
	"github.com/abhisek/mathplay/internal/session"
	"github.com/abhisek/mathplay/internal/store"
	"github.com/abhisek/mathplay/internal/ui/components"
	"github.com/abhisek/mathplay/internal/ui/layout"
)

// DefaultFeedbackDelay is how long feedback stays up before the next round.
const DefaultFeedbackDelay = 1200 * time.Millisecond

// AnswerRecorder persists submitted answers.
type AnswerRecorder interface {
	AppendAnswerEvent(ctx context.Context, data store.AnswerEventData) error
}

// Options holds the game screen's dependencies.
type Options struct {
	Generator *problemgen.Generator
	Rewards   *rewards.Service
	Answers   AnswerRecorder
	Logger    *slog.Logger

	// FeedbackDelay is the auto-advance delay. Zero waits for a key press.
	FeedbackDelay time.Duration

	// Rounds overrides the game's round count when positive.
	Rounds int
}

// GameScreen implements screen.Screen for one play-through of a mini-game.
type GameScreen struct {
	game  catalog.Game
	level int
	opts  Options

	sess     *session.Session
	problems []problemgen.Problem

	choice components.MultiChoice
	input  components.AnswerInput
	typing bool

	// inputErr is shown under the text input after an unparseable entry.
	inputErr string

	results     []bool
	lastCorrect bool
	lastAnswer  int
	roundStart  time.Time

	quitConfirm  bool
	quitSelected int
	finished     bool
}

var _ screen.Screen = (*GameScreen)(nil)
var _ screen.KeyHintProvider = (*GameScreen)(nil)
var _ screen.EscapeHandler = (*GameScreen)(nil)
var _ screen.RoundProvider = (*GameScreen)(nil)

// New creates a GameScreen for game at level. The problem batch is drawn
// up front, one problem per round.
func New(game catalog.Game, level int, opts Options) *GameScreen {
	if opts.Generator == nil {
		opts.Generator = problemgen.New()
	}
	if opts.Rewards == nil {
		opts.Rewards = rewards.NewService(nil, opts.Logger)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	rounds := game.RoundCount()
	if opts.Rounds > 0 {
		rounds = opts.Rounds
	}
	level = problemgen.NormalizeLevel(level)

	sess := session.New(rounds, session.WithLogger(opts.Logger))
	return &GameScreen{
		game:     game,
		level:    level,
		opts:     opts,
		sess:     sess,
		problems: opts.Generator.Generate(game.Family, level, sess.TotalRounds()),
		input:    components.NewAnswerInput(6),
	}
}

func (s *GameScreen) Init() tea.Cmd {
	s.sess.Start()
	s.prepareRound()
	s.opts.Logger.Debug("game started",
		"session_id", s.sess.ID(),
		"game", s.game.ID,
		"level", s.level,
		"rounds", s.sess.TotalRounds(),
	)
	return s.input.Init()
}

func (s *GameScreen) Title() string {
	return s.game.Title
}

// RoundLabel returns the header round counter.
func (s *GameScreen) RoundLabel() string {
	return fmt.Sprintf("Lv %d  Round %d/%d", s.level, s.sess.CurrentRound(), s.sess.TotalRounds())
}

// HandlesEscape reports that Esc opens the quit dialog instead of popping.
func (s *GameScreen) HandlesEscape() bool {
	return true
}

func (s *GameScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.quitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "Stop playing"},
			{Key: "N", Description: "Keep going"},
		}
	case s.sess.Phase() == session.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Next"},
		}
	case s.typing:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Choices"},
			{Key: "Esc", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Answer"},
		{Key: "↑↓", Description: "Select"},
		{Key: "Tab", Description: "Type it"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *GameScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case feedbackDoneMsg:
		if s.quitConfirm || msg.Round != s.sess.CurrentRound() || s.sess.Phase() != session.PhaseFeedback {
			return s, nil
		}
		return s, s.advance()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Cursor blink and friends.
	if s.typing && s.sess.Phase() == session.PhasePlaying && !s.quitConfirm {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// current returns the problem for the current round.
func (s *GameScreen) current() problemgen.Problem {
	idx := s.sess.ProblemIndex()
	if idx < 0 || idx >= len(s.problems) {
		return problemgen.Problem{}
	}
	return s.problems[idx]
}

func (s *GameScreen) prepareRound() {
	p := s.current()
	s.choice = components.NewMultiChoice(p.Choices, p.CorrectIndex())
	s.input.Reset()
	s.inputErr = ""
	s.roundStart = time.Now()
}

func (s *GameScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.finished {
		return s, nil
	}

	if s.quitConfirm {
		switch key {
		case "y", "Y":
			return s, s.stop()
		case "n", "N", "esc":
			s.quitConfirm = false
		case "left", "right", "tab", "h", "l":
			s.quitSelected = 1 - s.quitSelected
		case "enter":
			if s.quitSelected == 0 {
				return s, s.stop()
			}
			s.quitConfirm = false
		}
		return s, nil
	}

	switch s.sess.Phase() {
	case session.PhaseFeedback:
		if key == "esc" {
			s.openQuitConfirm()
			return s, nil
		}
		return s, s.advance()

	case session.PhasePlaying:
		switch key {
		case "esc":
			s.openQuitConfirm()
			return s, nil
		case "tab":
			s.typing = !s.typing
			s.inputErr = ""
			return s, nil
		}

		if s.typing {
			if key == "enter" {
				value, err := s.input.Answer()
				if err != nil {
					s.inputErr = "Type a whole number"
					return s, nil
				}
				return s, s.submit(value, "typed")
			}
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}

		s.choice, _ = s.choice.Update(msg)
		if value, ok := s.choice.Chosen(); ok {
			return s, s.submit(value, "choice")
		}
	}

	return s, nil
}

func (s *GameScreen) openQuitConfirm() {
	s.quitConfirm = true
	s.quitSelected = 1
}

// submit grades value against the current problem and schedules the
// auto-advance tick.
func (s *GameScreen) submit(value int, format string) tea.Cmd {
	p := s.current()
	round := s.sess.CurrentRound()
	correct := p.IsCorrect(value)

	s.sess.SubmitAnswer(correct)
	if s.sess.Phase() != session.PhaseFeedback {
		return nil
	}

	s.results = append(s.results, correct)
	s.lastCorrect = correct
	s.lastAnswer = value
	if format == "typed" {
		s.input.Mark(correct)
	}

	err := s.saveAnswer(store.AnswerEventData{
		SessionID:     s.sess.ID(),
		GameID:        s.game.ID,
		Round:         round,
		QuestionText:  p.Text(),
		CorrectAnswer: p.Answer,
		LearnerAnswer: value,
		Correct:       correct,
		TimeMs:        time.Since(s.roundStart).Milliseconds(),
		AnswerFormat:  format,
	})
	if err != nil {
		s.opts.Logger.Warn("answer not saved", "session_id", s.sess.ID(), "round", round, "error", err)
	}

	if s.opts.FeedbackDelay <= 0 {
		return nil
	}
	return tea.Tick(s.opts.FeedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{Round: round}
	})
}

// advance leaves feedback. After the last round it records the result
// and swaps this screen for the summary.
func (s *GameScreen) advance() tea.Cmd {
	s.sess.NextRound()
	if !s.sess.Done() {
		s.prepareRound()
		return nil
	}

	s.finished = true
	sum := s.sess.Summary()
	award := s.record(sum)
	next := summary.New(s.game, s.level, sum, award, s.rematch)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// stop abandons the play-through. It is still recorded, without stars.
func (s *GameScreen) stop() tea.Cmd {
	s.quitConfirm = false
	s.finished = true
	s.record(s.sess.Summary())
	return func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *GameScreen) saveAnswer(data store.AnswerEventData) error {
	if s.opts.Answers == nil {
		return nil
	}
	return s.opts.Answers.AppendAnswerEvent(context.Background(), data)
}

func (s *GameScreen) record(sum session.Summary) rewards.Award {
	award, err := s.opts.Rewards.Record(context.Background(), s.game, s.level, sum)
	if err != nil {
		s.opts.Logger.Warn("play result not saved", "session_id", sum.SessionID, "error", err)
	}
	return award
}

// rematch builds a fresh play-through of the same game at level.
func (s *GameScreen) rematch(level int) screen.Screen {
	return New(s.game, level, s.opts)
}
