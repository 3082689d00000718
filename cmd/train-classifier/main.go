package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/config"
	"github.com/seabroker/email-classifier/internal/core"
	"github.com/seabroker/email-classifier/internal/corpus"
	"github.com/seabroker/email-classifier/internal/dataset"
	"github.com/seabroker/email-classifier/internal/di"
	"github.com/seabroker/email-classifier/internal/inference"
	"github.com/seabroker/email-classifier/internal/trainer"
)

func main() {
	// Build the dependency injection container
	container, err := di.BuildContainer()
	if err != nil {
		fmt.Printf("Failed to build dependency container: %v\n", err)
		os.Exit(1)
	}

	// Run the training job
	if err := container.Invoke(run); err != nil {
		fmt.Printf("Training run failed: %v\n", err)
		os.Exit(1)
	}
}

// run is the batch training job with all dependencies injected
func run(
	cfg *config.Config,
	logger *zap.Logger,
	source core.CorpusSource,
	builder *dataset.Builder,
	tr *trainer.Trainer,
	store core.ArtifactStore,
	history core.RunRecorder,
) error {
	defer logger.Sync()
	defer history.Close()

	ctx := context.Background()

	emails, err := source.Emails(ctx)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}

	if exportPath := cfg.GetString("corpus.export_path"); exportPath != "" {
		if err := corpus.WriteJSON(exportPath, emails); err != nil {
			return err
		}
		logger.Info("Exported raw corpus", zap.String("path", exportPath))
	}

	ds, err := builder.Build(emails)
	if err != nil {
		return err
	}

	if cfg.GetBool("dataset.write_snapshot") {
		snapshotPath := cfg.GetString("dataset.snapshot_path")
		if err := dataset.WriteSnapshot(snapshotPath, ds); err != nil {
			return err
		}
		logger.Info("Wrote dataset snapshot", zap.String("path", snapshotPath))
	}

	tcfg := trainer.DefaultConfig()
	tcfg.TestFraction = cfg.GetFloat64("training.test_fraction")
	tcfg.RandomSeed = cfg.GetInt64("training.random_seed")
	tcfg.CVFolds = cfg.GetInt("training.cv_folds")

	bundle, err := tr.Train(ctx, ds, tcfg)
	if err != nil {
		return err
	}

	if err := store.Save(ctx, bundle); err != nil {
		return err
	}

	inference.SmokeTest(bundle, logger)

	logger.Info("Training run complete",
		zap.String("model_type", bundle.Metadata.ModelType),
		zap.Float64("accuracy", bundle.Metadata.Accuracy),
		zap.Bool("needs_scaling", bundle.Metadata.NeedsScaling))
	return nil
}
