package factory

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/config"
	"github.com/seabroker/email-classifier/internal/core"
	"github.com/seabroker/email-classifier/internal/corpus"
)

// CorpusFactory creates corpus sources based on configuration
type CorpusFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewCorpusFactory creates a new corpus factory
func NewCorpusFactory(cfg *config.Config, logger *zap.Logger) *CorpusFactory {
	return &CorpusFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateCorpusSource creates a corpus source based on the configuration
func (f *CorpusFactory) CreateCorpusSource() (core.CorpusSource, error) {
	sourceType := f.cfg.GetString("corpus.source")

	switch sourceType {
	case "sample":
		return corpus.NewSampleSource(), nil
	case "file":
		path := f.cfg.GetString("corpus.path")
		return corpus.NewFileSource(path, f.logger), nil
	default:
		return nil, fmt.Errorf("unsupported corpus source: %s", sourceType)
	}
}
