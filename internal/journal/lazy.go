package journal

import (
	"context"
	"database/sql"
	"sync"
)

// LazyJournal opens its database on first use, so runs that never record or
// list anything leave no file behind.
type LazyJournal struct {
	path string

	mu      sync.Mutex
	db      *sql.DB
	journal *SQLiteJournal
	err     error
}

// NewLazyJournal returns a journal for the database at path. Nothing is
// opened until Record or ListRecent is called.
func NewLazyJournal(path string) *LazyJournal {
	return &LazyJournal{path: path}
}

func (l *LazyJournal) open() (*SQLiteJournal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.journal != nil || l.err != nil {
		return l.journal, l.err
	}
	db, err := OpenDB(l.path)
	if err != nil {
		l.err = err
		return nil, err
	}
	l.db = db
	l.journal = NewSQLiteJournal(db)
	return l.journal, nil
}

func (l *LazyJournal) Record(ctx context.Context, r *Run) error {
	j, err := l.open()
	if err != nil {
		return err
	}
	return j.Record(ctx, r)
}

func (l *LazyJournal) ListRecent(ctx context.Context, limit int) ([]*Run, error) {
	j, err := l.open()
	if err != nil {
		return nil, err
	}
	return j.ListRecent(ctx, limit)
}

// Close closes the database if it was opened.
func (l *LazyJournal) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.db == nil {
		return nil
	}
	err := l.db.Close()
	l.db, l.journal = nil, nil
	return err
}
