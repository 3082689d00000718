package ml

import (
	"math"
	"reflect"
	"testing"
)

// separable returns a small two-feature dataset where class 1 sits above the
// diagonal and class 0 below it.
func separable() ([][]float64, []int) {
	X := [][]float64{
		{0.1, 0.9}, {0.2, 1.1}, {0.0, 1.4}, {0.3, 1.2}, {0.1, 1.0},
		{0.2, 0.8}, {0.4, 1.3}, {0.3, 0.9}, {0.0, 1.2}, {0.2, 1.0},
		{0.9, 0.1}, {1.1, 0.2}, {1.4, 0.0}, {1.2, 0.3}, {1.0, 0.1},
		{0.8, 0.2}, {1.3, 0.4}, {0.9, 0.3}, {1.2, 0.0}, {1.0, 0.2},
	}
	y := []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	return X, y
}

func assertLearnsSeparable(t *testing.T, model interface {
	Fit(X [][]float64, y []int) error
	Predict(X [][]float64) ([]int, error)
	PredictProba(X [][]float64) ([][]float64, error)
}) {
	t.Helper()
	X, y := separable()
	if err := model.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	preds, err := model.Predict(X)
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	correct := 0
	for i, p := range preds {
		if p == y[i] {
			correct++
		}
	}
	if acc := float64(correct) / float64(len(y)); acc < 0.95 {
		t.Fatalf("training accuracy %.2f on separable data", acc)
	}

	probs, err := model.PredictProba(X)
	if err != nil {
		t.Fatalf("PredictProba failed: %v", err)
	}
	for i, row := range probs {
		if len(row) != 2 {
			t.Fatalf("row %d has %d probabilities", i, len(row))
		}
		if sum := row[0] + row[1]; math.Abs(sum-1) > 1e-9 {
			t.Fatalf("row %d probabilities sum to %g", i, sum)
		}
	}
}

func TestRandomForestLearnsSeparable(t *testing.T) {
	assertLearnsSeparable(t, NewRandomForest(42))
}

func TestGradientBoostingLearnsSeparable(t *testing.T) {
	assertLearnsSeparable(t, NewGradientBoosting(42))
}

func TestLogisticRegressionLearnsSeparable(t *testing.T) {
	assertLearnsSeparable(t, NewLogisticRegression())
}

func TestSVMLearnsSeparable(t *testing.T) {
	assertLearnsSeparable(t, NewSVM(42))
}

func TestRandomForestDeterministicForSeed(t *testing.T) {
	X, y := separable()

	a := NewRandomForest(42)
	b := NewRandomForest(42)
	if err := a.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if err := b.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	pa, _ := a.PredictProba(X)
	pb, _ := b.PredictProba(X)
	if !reflect.DeepEqual(pa, pb) {
		t.Fatalf("same seed produced different forests")
	}
}

func TestGradientBoostingRejectsSingleClass(t *testing.T) {
	X := [][]float64{{1}, {2}, {3}}
	y := []int{1, 1, 1}
	if err := NewGradientBoosting(42).Fit(X, y); err == nil {
		t.Fatalf("expected an error for a single-class training set")
	}
}

func TestPredictBeforeFit(t *testing.T) {
	X := [][]float64{{1, 2}}
	if _, err := NewRandomForest(42).Predict(X); err == nil {
		t.Errorf("forest should refuse to predict before Fit")
	}
	if _, err := NewLogisticRegression().PredictProba(X); err == nil {
		t.Errorf("logistic regression should refuse to predict before Fit")
	}
	if _, err := NewSVM(42).Predict(X); err == nil {
		t.Errorf("svm should refuse to predict before Fit")
	}
}

func TestSVMProbabilitiesFollowDecision(t *testing.T) {
	X, y := separable()
	svm := NewSVM(42)
	if err := svm.Fit(X, y); err != nil {
		t.Fatalf("Fit failed: %v", err)
	}

	probs, err := svm.PredictProba([][]float64{{0.1, 1.3}, {1.3, 0.1}})
	if err != nil {
		t.Fatalf("PredictProba failed: %v", err)
	}
	if probs[0][1] <= probs[1][1] {
		t.Fatalf("class-1 point should carry the higher class-1 probability: %v", probs)
	}
}
