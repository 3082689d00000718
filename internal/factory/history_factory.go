package factory

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/adapters/history"
	"github.com/seabroker/email-classifier/internal/config"
	"github.com/seabroker/email-classifier/internal/core"
)

// HistoryFactory creates run recorders based on configuration
type HistoryFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewHistoryFactory creates a new history factory
func NewHistoryFactory(cfg *config.Config, logger *zap.Logger) *HistoryFactory {
	return &HistoryFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateRunRecorder creates a run recorder based on the configuration
func (f *HistoryFactory) CreateRunRecorder() (core.RunRecorder, error) {
	historyType := f.cfg.GetString("history.type")

	switch historyType {
	case "memory":
		return history.NewMemoryStore(f.logger), nil
	case "sqlite":
		sqlitePath := f.cfg.GetString("history.sqlite_path")
		// Ensure directory exists
		if err := os.MkdirAll(filepath.Dir(sqlitePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
		}
		return history.NewSQLiteStore(sqlitePath, f.logger)
	case "mysql":
		mysqlDSN := f.cfg.GetString("history.mysql_dsn")
		return history.NewMySQLStore(mysqlDSN, f.logger)
	default:
		return nil, fmt.Errorf("unsupported history type: %s", historyType)
	}
}
