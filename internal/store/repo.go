package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
	GameID string    // exact game match (empty = all games)
}

// PlayResultData captures the outcome of one play-through.
type PlayResultData struct {
	SessionID   string
	GameID      string
	Family      string
	Level       int
	TotalRounds int
	Answered    int
	Correct     int
	Accuracy    int
	Stars       int
	Completed   bool
	Duration    time.Duration
}

// PlayResultRecord is a stored play result.
type PlayResultRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	PlayResultData
}

// AnswerEventData captures a single submitted answer.
type AnswerEventData struct {
	SessionID     string
	GameID        string
	Round         int
	QuestionText  string
	CorrectAnswer int
	LearnerAnswer int
	Correct       bool
	TimeMs        int64
	AnswerFormat  string // "choice" or "typed"
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// LevelKey identifies one level of one game.
type LevelKey struct {
	GameID string
	Level  int
}

// ResultRepo provides append and query access to play history.
type ResultRepo interface {
	// AppendPlayResult records a finished or abandoned play-through.
	AppendPlayResult(ctx context.Context, data PlayResultData) error

	// AppendAnswerEvent records one submitted answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QueryPlayResults returns play results, newest first.
	QueryPlayResults(ctx context.Context, opts QueryOpts) ([]PlayResultRecord, error)

	// LatestPlayResult returns the newest result for a game, or ErrNotFound.
	LatestPlayResult(ctx context.Context, gameID string) (*PlayResultRecord, error)

	// SessionAnswers returns the answers of one session in the order given.
	SessionAnswers(ctx context.Context, sessionID string) ([]AnswerEventRecord, error)

	// BestStars returns the highest stars earned per game level.
	BestStars(ctx context.Context) (map[LevelKey]int, error)

	// Reset deletes all play history and returns the number of play
	// results removed.
	Reset(ctx context.Context) (int, error)
}
