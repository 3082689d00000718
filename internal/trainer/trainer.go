// Package trainer runs the compare/select/refit pipeline: fit every
// candidate family, evaluate on the held-out partition, cross-validate,
// select the best, and refit it on the full dataset for shipping.
package trainer

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/seabroker/email-classifier/internal/core"
	"github.com/seabroker/email-classifier/internal/ml"
)

// Trainer trains and selects a classifier over a built dataset.
type Trainer struct {
	logger  *zap.Logger
	history core.RunRecorder
}

// New creates a trainer. history may record to any backing store; recording
// failures are logged and never abort a run.
func New(logger *zap.Logger, history core.RunRecorder) *Trainer {
	return &Trainer{
		logger:  logger,
		history: history,
	}
}

type candidateResult struct {
	spec      Candidate
	accuracy  float64
	cvMean    float64
	cvStd     float64
	confusion [2][2]int
}

// Train runs the full pipeline and returns the artifact bundle for the
// selected model. The reported metadata accuracy is the held-out accuracy
// from the selection step, not a re-evaluation of the full-data refit.
func (t *Trainer) Train(ctx context.Context, ds *core.Dataset, cfg Config) (*core.TrainedArtifactBundle, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, core.ErrEmptyDataset
	}

	y := make([]int, ds.Len())
	for i, label := range ds.Labels {
		idx := label.Index()
		if idx < 0 {
			return nil, fmt.Errorf("row %d has unknown label %q", i, label)
		}
		y[i] = idx
	}

	if err := checkClassSizes(y, cfg); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	trainIdx, testIdx := stratifiedSplit(y, cfg.TestFraction, rng)

	xTrain := selectRows(ds.Rows, trainIdx)
	xTest := selectRows(ds.Rows, testIdx)
	yTrain := selectLabels(y, trainIdx)
	yTest := selectLabels(y, testIdx)

	// Comparison scaler: fitted on the train partition only so test-set
	// statistics never leak into the scores. The shipped scaler is a
	// separate instance refitted on the full matrix below.
	compareScaler := ml.NewStandardScaler()
	xTrainScaled := compareScaler.FitTransform(xTrain)
	xTestScaled := compareScaler.Transform(xTest)

	runID := fmt.Sprintf("%s-seed%d", time.Now().UTC().Format("20060102T150405Z"), cfg.RandomSeed)
	t.logger.Info("Training and evaluating models",
		zap.String("run_id", runID),
		zap.Int("train_rows", len(trainIdx)),
		zap.Int("test_rows", len(testIdx)),
		zap.Int("cv_folds", cfg.CVFolds))

	var best *candidateResult
	results := make([]*candidateResult, 0, len(cfg.Candidates))

	for _, cand := range cfg.Candidates {
		trX, teX := xTrain, xTest
		if cand.NeedsScaling {
			trX, teX = xTrainScaled, xTestScaled
		}

		res, err := t.evaluateCandidate(cand, cfg, trX, teX, yTrain, yTest)
		if err != nil {
			t.logger.Warn("Candidate excluded from selection", zap.String("model", cand.Name), zap.Error(err))
			continue
		}
		results = append(results, res)

		t.logger.Info("Candidate evaluated",
			zap.String("model", cand.Name),
			zap.Float64("test_accuracy", res.accuracy),
			zap.Float64("cv_mean", res.cvMean),
			zap.Float64("cv_spread", 2*res.cvStd),
			zap.Ints("confusion_cargo", res.confusion[0][:]),
			zap.Ints("confusion_vessel", res.confusion[1][:]))

		// Strictly greater: on a tie the first-declared candidate wins.
		if best == nil || res.accuracy > best.accuracy {
			best = res
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: %d candidates attempted", core.ErrNoViableModel, len(cfg.Candidates))
	}

	t.recordRun(ctx, runID, results, best)
	t.logger.Info("Best model selected",
		zap.String("model", best.spec.Name),
		zap.Float64("test_accuracy", best.accuracy))

	// Refit on the entire dataset so the shipped model sees all labeled
	// data. Scale-sensitive families get a scaler refitted on the full
	// matrix; that instance is the one that travels in the bundle.
	final := best.spec.New(cfg.RandomSeed)
	var finalScaler *ml.StandardScaler
	xAll := ds.Rows
	if best.spec.NeedsScaling {
		finalScaler = ml.NewStandardScaler()
		xAll = finalScaler.FitTransform(ds.Rows)
	}
	if err := final.Fit(xAll, y); err != nil {
		return nil, &core.CandidateFitError{ModelType: best.spec.Name, Err: fmt.Errorf("full-data refit: %w", err)}
	}

	bundle := &core.TrainedArtifactBundle{
		Model: final,
		Metadata: core.ModelMetadata{
			ModelType:      best.spec.Name,
			Accuracy:       best.accuracy,
			FeatureColumns: ds.Columns,
			Classes:        core.ClassStrings(),
			NeedsScaling:   best.spec.NeedsScaling,
		},
	}
	if finalScaler != nil {
		bundle.Scaler = finalScaler
	}
	return bundle, nil
}

func (t *Trainer) evaluateCandidate(cand Candidate, cfg Config, trX, teX [][]float64, yTrain, yTest []int) (*candidateResult, error) {
	model := cand.New(cfg.RandomSeed)
	if err := model.Fit(trX, yTrain); err != nil {
		return nil, &core.CandidateFitError{ModelType: cand.Name, Err: err}
	}
	preds, err := model.Predict(teX)
	if err != nil {
		return nil, &core.CandidateFitError{ModelType: cand.Name, Err: err}
	}

	cvMean, cvStd, err := crossValidate(cand, cfg, trX, yTrain)
	if err != nil {
		return nil, err
	}

	return &candidateResult{
		spec:      cand,
		accuracy:  accuracy(preds, yTest),
		cvMean:    cvMean,
		cvStd:     cvStd,
		confusion: confusionMatrix(yTest, preds),
	}, nil
}

// checkClassSizes fails fast when a class cannot cover the configured folds
// after the test partition is carved off.
func checkClassSizes(y []int, cfg Config) error {
	counts := [2]int{}
	for _, class := range y {
		counts[class]++
	}
	for class, count := range counts {
		if count == 0 {
			return fmt.Errorf("%w: class %s has no examples", core.ErrInsufficientData, core.Classes()[class])
		}
		nTest := int(math.Round(float64(count) * cfg.TestFraction))
		if nTest < 1 {
			nTest = 1
		}
		if count-nTest < cfg.CVFolds {
			return fmt.Errorf("%w: class %s has %d examples, need at least %d after the test split",
				core.ErrInsufficientData, core.Classes()[class], count, cfg.CVFolds+nTest)
		}
	}
	return nil
}

func (t *Trainer) recordRun(ctx context.Context, runID string, results []*candidateResult, best *candidateResult) {
	now := time.Now().UTC()
	for _, res := range results {
		entry := &core.RunEntry{
			RunID:     runID,
			ModelType: res.spec.Name,
			Accuracy:  res.accuracy,
			CVMean:    res.cvMean,
			CVStd:     res.cvStd,
			Selected:  res == best,
			CreatedAt: now,
		}
		if err := t.history.Record(ctx, entry); err != nil {
			t.logger.Error("Failed to record run history", zap.Error(err), zap.String("model", res.spec.Name))
		}
	}
}
