package trainer

import (
	"github.com/seabroker/email-classifier/internal/core"
	"github.com/seabroker/email-classifier/internal/ml"
)

// Candidate describes one model family entered into the comparison.
type Candidate struct {
	Name         string
	NeedsScaling bool
	New          func(seed int64) core.Classifier
}

// DefaultCandidates returns the fixed model grid in declaration order.
// Order matters: equal held-out accuracies break to the earliest entry.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{
			Name: "RandomForest",
			New: func(seed int64) core.Classifier {
				return ml.NewRandomForest(seed)
			},
		},
		{
			Name: "GradientBoosting",
			New: func(seed int64) core.Classifier {
				return ml.NewGradientBoosting(seed)
			},
		},
		{
			Name:         "LogisticRegression",
			NeedsScaling: true,
			New: func(seed int64) core.Classifier {
				return ml.NewLogisticRegression()
			},
		},
		{
			Name:         "SVM",
			NeedsScaling: true,
			New: func(seed int64) core.Classifier {
				return ml.NewSVM(seed)
			},
		},
	}
}

// Config controls one training run.
type Config struct {
	TestFraction float64
	RandomSeed   int64
	CVFolds      int
	Candidates   []Candidate
}

// DefaultConfig returns the reference configuration: 80/20 split, seed 42,
// 5-fold cross-validation, the default candidate grid.
func DefaultConfig() Config {
	return Config{
		TestFraction: 0.2,
		RandomSeed:   42,
		CVFolds:      5,
		Candidates:   DefaultCandidates(),
	}
}
