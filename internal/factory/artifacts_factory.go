package factory

import (
	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/adapters/artifacts"
	"github.com/seabroker/email-classifier/internal/config"
	"github.com/seabroker/email-classifier/internal/core"
)

// ArtifactFactory creates artifact stores based on configuration
type ArtifactFactory struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewArtifactFactory creates a new artifact factory
func NewArtifactFactory(cfg *config.Config, logger *zap.Logger) *ArtifactFactory {
	return &ArtifactFactory{
		cfg:    cfg,
		logger: logger,
	}
}

// CreateArtifactStore creates an artifact store rooted at the configured directory
func (f *ArtifactFactory) CreateArtifactStore() (core.ArtifactStore, error) {
	return artifacts.NewFSStore(f.cfg.GetString("artifacts.dir"), f.logger)
}
