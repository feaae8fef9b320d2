package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Play results and answer events live in separate tables but share one
// ordering: a result's sequence is always above the answers that led to
// it. ent has no counter primitive, so the row is managed with raw SQL.

// ensureSequence creates and seeds the counter row.
func ensureSequence(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS global_sequence (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		next_val INTEGER NOT NULL DEFAULT 1
	)`)
	if err != nil {
		return fmt.Errorf("create sequence table: %w", err)
	}
	if _, err := db.ExecContext(ctx, `INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1)`); err != nil {
		return fmt.Errorf("seed sequence: %w", err)
	}
	return nil
}

// nextSequence claims a number inside tx. Rolling tx back releases the
// claim, so failed inserts leave no gaps.
func nextSequence(ctx context.Context, tx *sql.Tx) (int64, error) {
	var seq int64
	err := tx.QueryRowContext(ctx,
		`UPDATE global_sequence SET next_val = next_val + 1 WHERE id = 1 RETURNING next_val - 1`,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return seq, nil
}

// appendRow inserts one row into table with a freshly claimed sequence.
// columns and values exclude the sequence itself.
func appendRow(ctx context.Context, db *sql.DB, table string, columns []string, values ...any) (int64, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	seq, err := nextSequence(ctx, tx)
	if err != nil {
		return 0, err
	}

	query, args := builder.Insert(table).
		Columns(append([]string{"sequence"}, columns...)...).
		Values(append([]any{seq}, values...)...).
		Query()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return seq, nil
}
