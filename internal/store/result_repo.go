package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// builder creates SQLite-flavored statements.
var builder = entsql.Dialect(dialect.SQLite)

var playResultColumns = []string{
	"id", "sequence", "timestamp", "session_id", "game_id", "family", "level",
	"total_rounds", "answered", "correct", "accuracy", "stars", "completed", "duration_ms",
}

var answerEventColumns = []string{
	"id", "sequence", "timestamp", "session_id", "game_id", "round", "question_text",
	"correct_answer", "learner_answer", "correct", "time_ms", "answer_format",
}

// resultRepo implements ResultRepo with ent's SQL builders.
type resultRepo struct {
	db *sql.DB
}

func now() time.Time {
	return time.Now().UTC()
}

func (r *resultRepo) AppendPlayResult(ctx context.Context, data PlayResultData) error {
	_, err := appendRow(ctx, r.db, playResultsTable, playResultColumns[2:],
		now(), data.SessionID, data.GameID, data.Family, data.Level,
		data.TotalRounds, data.Answered, data.Correct, data.Accuracy, data.Stars,
		data.Completed, data.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("save play result: %w", err)
	}
	return nil
}

func (r *resultRepo) AppendAnswerEvent(ctx context.Context, data AnswerEventData) error {
	_, err := appendRow(ctx, r.db, answerEventsTable, answerEventColumns[2:],
		now(), data.SessionID, data.GameID, data.Round, data.QuestionText,
		data.CorrectAnswer, data.LearnerAnswer, data.Correct, data.TimeMs, data.AnswerFormat,
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

func (r *resultRepo) QueryPlayResults(ctx context.Context, opts QueryOpts) ([]PlayResultRecord, error) {
	sel := builder.Select(playResultColumns...).
		From(builder.Table(playResultsTable)).
		OrderBy(entsql.Desc("sequence"))

	if opts.Limit > 0 {
		sel = sel.Limit(opts.Limit)
	}
	if opts.After > 0 {
		sel = sel.Where(entsql.GT("sequence", opts.After))
	}
	if opts.Before > 0 {
		sel = sel.Where(entsql.LT("sequence", opts.Before))
	}
	if !opts.From.IsZero() {
		sel = sel.Where(entsql.GTE("timestamp", opts.From))
	}
	if !opts.To.IsZero() {
		sel = sel.Where(entsql.LTE("timestamp", opts.To))
	}
	if opts.GameID != "" {
		sel = sel.Where(entsql.EQ("game_id", opts.GameID))
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query play results: %w", err)
	}
	defer rows.Close()

	var records []PlayResultRecord
	for rows.Next() {
		rec, err := scanPlayResult(rows)
		if err != nil {
			return nil, fmt.Errorf("scan play result: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *resultRepo) LatestPlayResult(ctx context.Context, gameID string) (*PlayResultRecord, error) {
	records, err := r.QueryPlayResults(ctx, QueryOpts{Limit: 1, GameID: gameID})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("play result for %q: %w", gameID, ErrNotFound)
	}
	return &records[0], nil
}

func (r *resultRepo) SessionAnswers(ctx context.Context, sessionID string) ([]AnswerEventRecord, error) {
	query, args := builder.Select(answerEventColumns...).
		From(builder.Table(answerEventsTable)).
		Where(entsql.EQ("session_id", sessionID)).
		OrderBy("sequence").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query session answers: %w", err)
	}
	defer rows.Close()

	var records []AnswerEventRecord
	for rows.Next() {
		var rec AnswerEventRecord
		err := rows.Scan(
			&rec.ID, &rec.Sequence, &rec.Timestamp, &rec.SessionID, &rec.GameID,
			&rec.Round, &rec.QuestionText, &rec.CorrectAnswer, &rec.LearnerAnswer,
			&rec.Correct, &rec.TimeMs, &rec.AnswerFormat,
		)
		if err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (r *resultRepo) BestStars(ctx context.Context) (map[LevelKey]int, error) {
	query, args := builder.Select("game_id", "level", entsql.Max("stars")).
		From(builder.Table(playResultsTable)).
		GroupBy("game_id", "level").
		Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query best stars: %w", err)
	}
	defer rows.Close()

	best := make(map[LevelKey]int)
	for rows.Next() {
		var key LevelKey
		var stars int
		if err := rows.Scan(&key.GameID, &key.Level, &stars); err != nil {
			return nil, fmt.Errorf("scan best stars: %w", err)
		}
		best[key] = stars
	}
	return best, rows.Err()
}

func (r *resultRepo) Reset(ctx context.Context) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin reset: %w", err)
	}
	defer tx.Rollback()

	query, args := builder.Delete(answerEventsTable).Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, fmt.Errorf("delete answer events: %w", err)
	}

	query, args = builder.Delete(playResultsTable).Query()
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete play results: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count deleted results: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit reset: %w", err)
	}
	return int(n), nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlayResult(row rowScanner) (PlayResultRecord, error) {
	var rec PlayResultRecord
	var durationMs int64
	err := row.Scan(
		&rec.ID, &rec.Sequence, &rec.Timestamp, &rec.SessionID, &rec.GameID,
		&rec.Family, &rec.Level, &rec.TotalRounds, &rec.Answered, &rec.Correct,
		&rec.Accuracy, &rec.Stars, &rec.Completed, &durationMs,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return rec, ErrNotFound
		}
		return rec, err
	}
	rec.Duration = time.Duration(durationMs) * time.Millisecond
	return rec, nil
}
