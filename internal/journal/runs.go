package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timestampLayout is fixed width so created_at sorts chronologically as text.
const timestampLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Source identifies which expansion path produced a run.
type Source string

const (
	SourceAPI    Source = "api"
	SourceManual Source = "manual"
)

// Run records one saved expansion.
type Run struct {
	ID             string
	Question       string
	Tag            string
	Source         Source
	PatternsAdded  int
	ResponsesAdded int
	CreatedTag     bool
	DatasetPath    string
	BackupPath     string
	CreatedAt      time.Time
}

// Recorder persists and lists runs.
type Recorder interface {
	Record(ctx context.Context, r *Run) error
	ListRecent(ctx context.Context, limit int) ([]*Run, error)
}

// SQLiteJournal implements Recorder on SQLite.
type SQLiteJournal struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteJournal creates a journal on an opened database.
func NewSQLiteJournal(db *sql.DB) *SQLiteJournal {
	return &SQLiteJournal{db: db, now: time.Now}
}

// Record inserts r, assigning an ID and timestamp when unset.
func (j *SQLiteJournal) Record(ctx context.Context, r *Run) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = j.now().UTC()
	}

	query := `INSERT INTO expansion_runs (id, question, tag, source, patterns_added, responses_added,
		created_tag, dataset_path, backup_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := j.db.ExecContext(ctx, query,
		r.ID,
		r.Question,
		r.Tag,
		string(r.Source),
		r.PatternsAdded,
		r.ResponsesAdded,
		boolToInt(r.CreatedTag),
		r.DatasetPath,
		r.BackupPath,
		r.CreatedAt.UTC().Format(timestampLayout),
	)
	if err != nil {
		return fmt.Errorf("inserting expansion run: %w", err)
	}
	return nil
}

// ListRecent returns up to limit runs, newest first.
func (j *SQLiteJournal) ListRecent(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `SELECT id, question, tag, source, patterns_added, responses_added,
		created_tag, dataset_path, backup_path, created_at
		FROM expansion_runs ORDER BY created_at DESC LIMIT ?`
	rows, err := j.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing expansion runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		var (
			r          Run
			source     string
			createdTag int
			createdAt  string
		)
		if err := rows.Scan(&r.ID, &r.Question, &r.Tag, &source, &r.PatternsAdded, &r.ResponsesAdded,
			&createdTag, &r.DatasetPath, &r.BackupPath, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning expansion run: %w", err)
		}
		r.Source = Source(source)
		r.CreatedTag = createdTag != 0
		r.CreatedAt, err = time.Parse(timestampLayout, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at %q: %w", createdAt, err)
		}
		runs = append(runs, &r)
	}
	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
