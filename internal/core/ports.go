package core

import (
	"context"
	"time"
)

// Classifier is the uniform contract every candidate model family implements.
// Labels are encoded as class indexes (see Classes).
type Classifier interface {
	// Fit trains the model on the given feature matrix and encoded labels.
	Fit(X [][]float64, y []int) error

	// Predict returns the encoded class for each row.
	Predict(X [][]float64) ([]int, error)

	// PredictProba returns per-class probabilities for each row, aligned
	// with Classes().
	PredictProba(X [][]float64) ([][]float64, error)
}

// FeatureScaler maps a feature matrix into the space a scale-sensitive model
// was fitted in.
type FeatureScaler interface {
	Transform(X [][]float64) [][]float64
}

// CorpusSource supplies the labeled emails for a training run.
type CorpusSource interface {
	Emails(ctx context.Context) ([]EmailRecord, error)
}

// ArtifactStore persists and reloads a trained bundle. Save is all-or-nothing:
// a failure on any artifact fails the whole run.
type ArtifactStore interface {
	Save(ctx context.Context, bundle *TrainedArtifactBundle) error
	Load(ctx context.Context) (*TrainedArtifactBundle, error)
}

// RunEntry is one candidate's outcome within a training run.
type RunEntry struct {
	RunID     string
	ModelType string
	Accuracy  float64
	CVMean    float64
	CVStd     float64
	Selected  bool
	CreatedAt time.Time
}

// RunRecorder keeps a history of training runs for later inspection. It is
/// diagnostic: recording failures are logged by implementations, never fatal.
type RunRecorder interface {
	Record(ctx context.Context, entry *RunEntry) error
	Close() error
}
