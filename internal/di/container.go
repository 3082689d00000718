package di

import (
	"go.uber.org/dig"

	"github.com/seabroker/email-classifier/internal/config"
	"github.com/seabroker/email-classifier/internal/core"
	"github.com/seabroker/email-classifier/internal/dataset"
	"github.com/seabroker/email-classifier/internal/factory"
	"github.com/seabroker/email-classifier/internal/features"
	"github.com/seabroker/email-classifier/internal/logging"
	"github.com/seabroker/email-classifier/internal/trainer"
)

// BuildContainer creates and configures a dependency injection container
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	// Register configuration
	if err := container.Provide(config.New); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(logging.InitLogger); err != nil {
		return nil, err
	}

	// Register factories
	if err := container.Provide(factory.NewCorpusFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewHistoryFactory); err != nil {
		return nil, err
	}
	if err := container.Provide(factory.NewArtifactFactory); err != nil {
		return nil, err
	}

	// Register corpus source
	if err := container.Provide(func(f *factory.CorpusFactory) (core.CorpusSource, error) {
		return f.CreateCorpusSource()
	}); err != nil {
		return nil, err
	}

	// Register run recorder
	if err := container.Provide(func(f *factory.HistoryFactory) (core.RunRecorder, error) {
		return f.CreateRunRecorder()
	}); err != nil {
		return nil, err
	}

	// Register artifact store
	if err := container.Provide(func(f *factory.ArtifactFactory) (core.ArtifactStore, error) {
		return f.CreateArtifactStore()
	}); err != nil {
		return nil, err
	}

	// Register feature extractor and dataset builder
	if err := container.Provide(features.NewExtractor); err != nil {
		return nil, err
	}
	if err := container.Provide(dataset.NewBuilder); err != nil {
		return nil, err
	}

	// Register trainer
	if err := container.Provide(trainer.New); err != nil {
		return nil, err
	}

	return container, nil
}
