package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/core"
)

// SQLiteStore is a SQLite implementation of the RunRecorder interface.
type SQLiteStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewSQLiteStore opens the database at dbPath and bootstraps the schema.
func NewSQLiteStore(dbPath string, logger *zap.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS training_runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT,
			model_type TEXT,
			accuracy REAL,
			cv_mean REAL,
			cv_std REAL,
			selected BOOLEAN,
			created_at TIMESTAMP
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_run_id ON training_runs(run_id)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return &SQLiteStore{
		db:     db,
		logger: logger,
	}, nil
}

// Record inserts one candidate outcome.
func (s *SQLiteStore) Record(ctx context.Context, entry *core.RunEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO training_runs (run_id, model_type, accuracy, cv_mean, cv_std, selected, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.RunID, entry.ModelType, entry.Accuracy, entry.CVMean, entry.CVStd, entry.Selected,
		entry.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to insert run entry: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
