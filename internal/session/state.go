package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Phase represents the current phase of a play-through.
type Phase int

const (
	PhaseIntro    Phase = iota // Created, waiting for Start
	PhasePlaying               // A round's problem is on screen
	PhaseFeedback              // Showing the result of the last answer
	PhaseComplete              // All rounds answered (terminal)
)

// String returns the lowercase name of the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhasePlaying:
		return "playing"
	case PhaseFeedback:
		return "feedback"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Session tracks the lifecycle of one play-through of a fixed number of
// rounds. It is created fresh per play-through and never reset in place.
//
// Every mutator re-reads the current phase and silently ignores calls that
// are not valid from it, so late timer callbacks are harmless. A Session is
// safe to drive from multiple goroutines.
type Session struct {
	mu sync.Mutex

	id          string
	phase       Phase
	round       int
	totalRounds int
	correct     int
	answered    int

	startedAt  time.Time
	finishedAt time.Time

	now    func() time.Time
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger reports ignored out-of-phase calls at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// WithClock overrides the time source used for StartedAt and FinishedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		if now != nil {
			s.now = now
		}
	}
}

// WithID sets the session ID instead of generating a random UUID.
func WithID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.id = id
		}
	}
}

// New creates a session of totalRounds rounds in PhaseIntro. A
// non-positive totalRounds is treated as a single round.
func New(totalRounds int, opts ...Option) *Session {
	s := &Session{
		phase:       PhaseIntro,
		round:       1,
		totalRounds: max(totalRounds, 1),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.New().String()
	}
	return s
}
