package session

import (
	"context"
	"log/slog"
	"time"
)

// Start begins the first round. Valid only from PhaseIntro; otherwise a
// no-op, so repeated mount effects are harmless.
func (s *Session) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseIntro {
		s.ignored("start")
		return
	}
	s.round = 1
	s.correct = 0
	s.answered = 0
	s.startedAt = s.now()
	s.phase = PhasePlaying
}

// SubmitAnswer records the answer for the current round and moves to
// PhaseFeedback. Valid only from PhasePlaying; a stale call from an earlier
// round's timer is ignored and never double-counts.
func (s *Session) SubmitAnswer(correct bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhasePlaying {
		s.ignored("submit_answer")
		return
	}
	s.answered++
	if correct {
		s.correct++
	}
	s.phase = PhaseFeedback
}

// NextRound leaves PhaseFeedback: to PhaseComplete after the last round,
// otherwise to the next round in PhasePlaying. No-op from any other phase.
func (s *Session) NextRound() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseFeedback {
		s.ignored("next_round")
		return
	}
	if s.round >= s.totalRounds {
		s.phase = PhaseComplete
		s.finishedAt = s.now()
		return
	}
	s.round++
	s.phase = PhasePlaying
}

// ID returns the session's unique identifier.
func (s *Session) ID() string {
	return s.id
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// CurrentRound returns the 1-indexed current round.
func (s *Session) CurrentRound() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.round
}

// TotalRounds returns the fixed number of rounds.
func (s *Session) TotalRounds() int {
	return s.totalRounds
}

// CorrectCount returns the number of correct answers so far.
func (s *Session) CorrectCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.correct
}

// AnsweredCount returns the number of answers submitted so far.
func (s *Session) AnsweredCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.answered
}

// Accuracy returns the rounded percentage of correct answers, or 0 before
// the first answer.
func (s *Session) Accuracy() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Accuracy(s.correct, s.answered)
}

// Done reports whether the session reached PhaseComplete.
func (s *Session) Done() bool {
	return s.Phase() == PhaseComplete
}

// StartedAt returns when Start took effect, or the zero time.
func (s *Session) StartedAt() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.startedAt
}

// ProblemIndex returns the index into a pre-generated problem batch for
// the current round.
func (s *Session) ProblemIndex() int {
	return s.CurrentRound() - 1
}

// ignored logs a call that was absorbed by the phase guard.
// Callers hold s.mu.
func (s *Session) ignored(op string) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(context.Background(), slog.LevelDebug, "session call ignored",
		slog.String("session_id", s.id),
		slog.String("op", op),
		slog.String("phase", s.phase.String()),
		slog.Int("round", s.round),
	)
}
