// Package dataset builds the tabular feature matrix a training run consumes.
package dataset

import (
	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/core"
	"github.com/seabroker/email-classifier/internal/features"
)

// Builder applies the feature extractor to every labeled record of a corpus.
type Builder struct {
	extractor *features.Extractor
	logger    *zap.Logger
}

// NewBuilder creates a new dataset builder.
func NewBuilder(extractor *features.Extractor, logger *zap.Logger) *Builder {
	return &Builder{
		extractor: extractor,
		logger:    logger,
	}
}

// Build extracts features for each record in input order. Output row order
// equals input order. A feature-width mismatch inside one build returns a
// SchemaError.
func (b *Builder) Build(corpus []core.EmailRecord) (*core.Dataset, error) {
	ds := &core.Dataset{
		Columns: core.FeatureColumns(),
		Rows:    make([][]float64, 0, len(corpus)),
		Labels:  make([]core.Label, 0, len(corpus)),
	}

	for i, email := range corpus {
		vec := b.extractor.Extract(email).Vector()
		if len(vec) != len(ds.Columns) {
			return nil, &core.SchemaError{Row: i, Want: len(ds.Columns), Got: len(vec)}
		}
		ds.Rows = append(ds.Rows, vec)
		ds.Labels = append(ds.Labels, email.Label)
	}

	counts := make(map[core.Label]int)
	for _, label := range ds.Labels {
		counts[label]++
	}
	b.logger.Info("Built dataset",
		zap.Int("rows", ds.Len()),
		zap.Int("columns", len(ds.Columns)),
		zap.Int("cargo", counts[core.LabelCargo]),
		zap.Int("vessel", counts[core.LabelVessel]))

	return ds, nil
}
