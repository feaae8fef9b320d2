package session

import "time"

// Summary is a point-in-time copy of a session's results, for reporting
// and persistence.
type Summary struct {
	SessionID     string
	Phase         Phase
	TotalRounds   int
	RoundsReached int
	Answered      int
	Correct       int
	Accuracy      int
	StartedAt     time.Time
	FinishedAt    time.Time
	Duration      time.Duration
}

// Completed reports whether the summarized session reached PhaseComplete.
func (s Summary) Completed() bool {
	return s.Phase == PhaseComplete
}

// Summary captures the current results. For sessions that have not
// completed, Duration is measured up to now.
func (s *Session) Summary() Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	sum := Summary{
		SessionID:     s.id,
		Phase:         s.phase,
		TotalRounds:   s.totalRounds,
		RoundsReached: s.round,
		Answered:      s.answered,
		Correct:       s.correct,
		Accuracy:      Accuracy(s.correct, s.answered),
		StartedAt:     s.startedAt,
		FinishedAt:    s.finishedAt,
	}
	if s.phase == PhaseIntro {
		sum.RoundsReached = 0
	}
	switch {
	case sum.StartedAt.IsZero():
	case !sum.FinishedAt.IsZero():
		sum.Duration = sum.FinishedAt.Sub(sum.StartedAt)
	default:
		sum.Duration = s.now().Sub(sum.StartedAt)
	}
	return sum
}
