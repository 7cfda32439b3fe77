package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/tieubaoca/policy-insights-be/database"
	"github.com/tieubaoca/policy-insights-be/types"
)

type queryRepo struct {
	db *sql.DB
}

func NewQueryRepo(store *database.Store) database.QueryStore {
	return &queryRepo{
		db: store.DB(),
	}
}

// Append inserts one record. The record's ID is filled in on return; a zero
// Timestamp is replaced with the current time.
func (r *queryRepo) Append(ctx context.Context, record *types.QueryRecord) error {
	if record.Timestamp.IsZero() {
		record.Timestamp = time.Now()
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO queries (timestamp, context, question, answer, ok)
		VALUES (?, ?, ?, ?, ?)`,
		record.Timestamp.UnixNano(), record.Context, record.Question, record.Answer, record.OK)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	record.ID = id
	return nil
}

// List returns every record in insertion order. A fresh store yields an
// empty slice, not an error.
func (r *queryRepo) List(ctx context.Context) ([]types.QueryRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, timestamp, context, question, answer, ok
		FROM queries ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

// Recent returns the n most recent records, newest first.
func (r *queryRepo) Recent(ctx context.Context, n int) ([]types.QueryRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, timestamp, context, question, answer, ok
		FROM queries ORDER BY timestamp DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecords(rows)
}

func (r *queryRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM queries`).Scan(&count)
	return count, err
}

func scanRecords(rows *sql.Rows) ([]types.QueryRecord, error) {
	records := make([]types.QueryRecord, 0)
	for rows.Next() {
		var rec types.QueryRecord
		var ts int64
		if err := rows.Scan(&rec.ID, &ts, &rec.Context, &rec.Question, &rec.Answer, &rec.OK); err != nil {
			return nil, err
		}
		rec.Timestamp = time.Unix(0, ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}
