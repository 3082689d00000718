package history

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/core"
)

// MySQLStore is a MySQL implementation of the RunRecorder interface.
type MySQLStore struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewMySQLStore connects with the given DSN and bootstraps the schema.
func NewMySQLStore(dsn string, logger *zap.Logger) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping MySQL: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS training_runs (
			id BIGINT AUTO_INCREMENT PRIMARY KEY,
			run_id VARCHAR(64),
			model_type VARCHAR(64),
			accuracy DOUBLE,
			cv_mean DOUBLE,
			cv_std DOUBLE,
			selected BOOLEAN,
			created_at TIMESTAMP,
			INDEX idx_run_id (run_id)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLStore{
		db:     db,
		logger: logger,
	}, nil
}

// Record inserts one candidate outcome.
func (s *MySQLStore) Record(ctx context.Context, entry *core.RunEntry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO training_runs (run_id, model_type, accuracy, cv_mean, cv_std, selected, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, entry.RunID, entry.ModelType, entry.Accuracy, entry.CVMean, entry.CVStd, entry.Selected, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert run entry: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
