package ml

import (
	"errors"
	"math"
)

// LogisticRegression is a binary logistic classifier trained by batch
// gradient descent with a small L2 penalty. Inputs are expected to be
// standardized; the trainer pairs this family with a fitted scaler.
type LogisticRegression struct {
	MaxIter int       `json:"max_iter"`
	LR      float64   `json:"learning_rate"`
	Tol     float64   `json:"tolerance"`
	L2      float64   `json:"l2"`
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// NewLogisticRegression creates a classifier with the fixed preset:
// at most 1000 iterations.
func NewLogisticRegression() *LogisticRegression {
	return &LogisticRegression{
		MaxIter: 1000,
		LR:      0.1,
		Tol:     1e-6,
		L2:      0.01,
	}
}

// Fit trains the classifier.
func (l *LogisticRegression) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("empty training set")
	}
	n := float64(len(X))
	cols := len(X[0])
	l.Weights = make([]float64, cols)
	l.Bias = 0

	prevLoss := math.Inf(1)
	gradW := make([]float64, cols)

	for iter := 0; iter < l.MaxIter; iter++ {
		for j := range gradW {
			gradW[j] = 0
		}
		gradB := 0.0
		loss := 0.0

		for i, row := range X {
			p := sigmoid(l.decision(row))
			err := p - float64(y[i])
			for j, v := range row {
				gradW[j] += err * v
			}
			gradB += err

			// Clamp keeps the log finite when a prediction saturates.
			pc := math.Min(math.Max(p, 1e-12), 1-1e-12)
			if y[i] == 1 {
				loss -= math.Log(pc)
			} else {
				loss -= math.Log(1 - pc)
			}
		}
		loss /= n

		if math.IsNaN(loss) || math.IsInf(loss, 0) {
			return errors.New("gradient descent diverged")
		}

		for j := range l.Weights {
			l.Weights[j] -= l.LR * (gradW[j]/n + l.L2*l.Weights[j])
		}
		l.Bias -= l.LR * gradB / n

		if math.Abs(prevLoss-loss) < l.Tol {
			break
		}
		prevLoss = loss
	}
	return nil
}

func (l *LogisticRegression) decision(row []float64) float64 {
	z := l.Bias
	for j, v := range row {
		z += l.Weights[j] * v
	}
	return z
}

// Predict returns the most likely class per row.
func (l *LogisticRegression) Predict(X [][]float64) ([]int, error) {
	probs, err := l.PredictProba(X)
	if err != nil {
		return nil, err
	}
	return argmaxRows(probs), nil
}

// PredictProba returns per-class probabilities.
func (l *LogisticRegression) PredictProba(X [][]float64) ([][]float64, error) {
	if l.Weights == nil {
		return nil, errors.New("model is not fitted")
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		p1 := sigmoid(l.decision(row))
		out[i] = []float64{1 - p1, p1}
	}
	return out, nil
}
