package trainer

import (
	"math"
	"math/rand"

	"github.com/seabroker/email-classifier/internal/core"
)

// crossValidate runs stratified k-fold cross-validation over the given view
// of the training partition, fitting a fresh model per fold, and returns the
// mean and standard deviation of the fold accuracies.
func crossValidate(cand Candidate, cfg Config, X [][]float64, y []int) (mean, std float64, err error) {
	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	folds := stratifiedFolds(y, cfg.CVFolds, rng)

	scores := make([]float64, 0, cfg.CVFolds)
	for f, holdout := range folds {
		var trainIdx []int
		for g, fold := range folds {
			if g != f {
				trainIdx = append(trainIdx, fold...)
			}
		}

		model := cand.New(cfg.RandomSeed)
		if err := model.Fit(selectRows(X, trainIdx), selectLabels(y, trainIdx)); err != nil {
			return 0, 0, &core.CandidateFitError{ModelType: cand.Name, Err: err}
		}
		preds, err := model.Predict(selectRows(X, holdout))
		if err != nil {
			return 0, 0, &core.CandidateFitError{ModelType: cand.Name, Err: err}
		}
		scores = append(scores, accuracy(preds, selectLabels(y, holdout)))
	}

	for _, s := range scores {
		mean += s
	}
	mean /= float64(len(scores))
	for _, s := range scores {
		d := s - mean
		std += d * d
	}
	std = math.Sqrt(std / float64(len(scores)))
	return mean, std, nil
}

func accuracy(preds, truth []int) float64 {
	if len(truth) == 0 {
		return 0
	}
	correct := 0
	for i, p := range preds {
		if p == truth[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(truth))
}

// confusionMatrix tallies truth rows against prediction columns over the two
// classes.
func confusionMatrix(truth, preds []int) [2][2]int {
	var m [2][2]int
	for i, t := range truth {
		m[t][preds[i]]++
	}
	return m
}
