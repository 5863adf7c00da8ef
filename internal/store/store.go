// Package store persists scan summaries so operators can review recent
// activity. The detection core never touches it; the server writes a record
// per scan when history is enabled.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Varshith07827/AI-PII-Detector/pkg/pii/types"
)

// Record is one persisted scan summary. Only aggregates are stored; neither
// the input text nor any detected value is written to disk.
type Record struct {
	ID           string           `json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	Source       string           `json:"source"`
	Mode         string           `json:"mode"`
	Score        int              `json:"score"`
	Bucket       types.RiskBucket `json:"bucket"`
	Annotations  int              `json:"annotations"`
	Placeholders int              `json:"placeholders"`
}

// Store wraps the sqlite scan-history database.
type Store struct {
	db *sql.DB
}

// New opens (and if needed initializes) the database at path.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) migrate(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS scans (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	source TEXT NOT NULL,
	mode TEXT NOT NULL,
	score INTEGER NOT NULL,
	bucket TEXT NOT NULL,
	annotations INTEGER NOT NULL,
	placeholders INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_scans_created_at ON scans(created_at);
`
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Save inserts one scan record.
func (s *Store) Save(ctx context.Context, record Record) error {
	const query = `INSERT INTO scans (id, created_at, source, mode, score, bucket, annotations, placeholders)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.CreatedAt.UTC().Format(time.RFC3339Nano),
		record.Source,
		record.Mode,
		record.Score,
		string(record.Bucket),
		record.Annotations,
		record.Placeholders,
	)
	if err != nil {
		return fmt.Errorf("failed to save scan record: %w", err)
	}
	return nil
}

// Recent returns up to limit records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 20
	}

	const query = `SELECT id, created_at, source, mode, score, bucket, annotations, placeholders
FROM scans ORDER BY created_at DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query scan records: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var createdAt, bucket string
		if err := rows.Scan(&r.ID, &createdAt, &r.Source, &r.Mode, &r.Score, &bucket, &r.Annotations, &r.Placeholders); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			r.CreatedAt = t
		}
		r.Bucket = types.RiskBucket(bucket)
		records = append(records, r)
	}
	return records, rows.Err()
}
