package rewards

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/mathplay/internal/catalog"
	"github.com/abhisek/mathplay/internal/session"
	"github.com/abhisek/mathplay/internal/store"
)

// Award is the outcome of recording a play-through.
type Award struct {
	Stars int

	// NewBest is set when the rating beats the previous best for the level.
	NewBest bool

	// UnlockedLevel is the level this play opened, or 0.
	UnlockedLevel int
}

// Service rates finished play-throughs and tracks unlocks.
type Service struct {
	repo   store.ResultRepo
	logger *slog.Logger
}

// NewService creates a Service. A nil repo keeps everything in memory
// for the lifetime of one play; a nil logger discards output.
func NewService(repo store.ResultRepo, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Progress loads the best ratings from the store.
func (s *Service) Progress(ctx context.Context) (Progress, error) {
	if s.repo == nil {
		return NewProgress(nil), nil
	}
	best, err := s.repo.BestStars(ctx)
	if err != nil {
		return NewProgress(nil), fmt.Errorf("load progress: %w", err)
	}
	return NewProgress(best), nil
}

// Record rates a session summary and persists it. Abandoned sessions are
// stored but earn no stars. The Award is valid even when err is non-nil.
func (s *Service) Record(ctx context.Context, game catalog.Game, level int, sum session.Summary) (Award, error) {
	award := Award{}
	if sum.Completed() {
		award.Stars = Stars(sum.Accuracy)
	}

	before, err := s.Progress(ctx)
	if err != nil {
		s.logger.Warn("progress unavailable", "error", err)
	}
	after := before.with(game.ID, level, award.Stars)

	award.NewBest = award.Stars > before.Stars(game.ID, level)
	if next := level + 1; !before.Unlocked(game.ID, next) && after.Unlocked(game.ID, next) {
		award.UnlockedLevel = next
	}

	if s.repo == nil {
		return award, nil
	}
	err = s.repo.AppendPlayResult(ctx, store.PlayResultData{
		SessionID:   sum.SessionID,
		GameID:      game.ID,
		Family:      string(game.Family),
		Level:       level,
		TotalRounds: sum.TotalRounds,
		Answered:    sum.Answered,
		Correct:     sum.Correct,
		Accuracy:    sum.Accuracy,
		Stars:       award.Stars,
		Completed:   sum.Completed(),
		Duration:    sum.Duration,
	})
	if err != nil {
		return award, fmt.Errorf("record play result: %w", err)
	}

	s.logger.Info("play recorded",
		"session_id", sum.SessionID,
		"game", game.ID,
		"level", level,
		"accuracy", sum.Accuracy,
		"stars", award.Stars,
	)
	return award, nil
}
