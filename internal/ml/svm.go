package ml

import (
	"errors"
	"math"
	"math/rand"
)

// SVM is a soft-margin support vector classifier with an RBF kernel, trained
// by simplified SMO. Probabilities come from a Platt-style sigmoid fitted on
// the training decision values. Like the logistic family it expects
// standardized inputs.
type SVM struct {
	C         float64 `json:"c"`
	Gamma     float64 `json:"gamma"`
	Tol       float64 `json:"tolerance"`
	MaxPasses int     `json:"max_passes"`
	Seed      int64   `json:"seed"`

	SupportVectors [][]float64 `json:"support_vectors"`
	// Coefs holds alpha_i * y_i for each support vector, y in {-1, +1}.
	Coefs []float64 `json:"coefs"`
	Bias  float64   `json:"bias"`

	PlattA float64 `json:"platt_a"`
	PlattB float64 `json:"platt_b"`
}

// NewSVM creates a classifier with the fixed preset: C=1, RBF kernel with
// the scale heuristic for gamma, probability calibration enabled.
func NewSVM(seed int64) *SVM {
	return &SVM{
		C:         1.0,
		Tol:       1e-3,
		MaxPasses: 10,
		Seed:      seed,
	}
}

// Fit trains the classifier.
func (s *SVM) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("empty training set")
	}
	n := len(X)
	cols := len(X[0])

	// gamma = 1 / (n_features * var(X)), the "scale" heuristic.
	s.Gamma = 1.0 / (float64(cols) * matrixVariance(X))

	signed := make([]float64, n)
	for i, label := range y {
		if label == 1 {
			signed[i] = 1
		} else {
			signed[i] = -1
		}
	}

	kernel := make([][]float64, n)
	for i := range kernel {
		kernel[i] = make([]float64, n)
		for j := range kernel[i] {
			kernel[i][j] = s.rbf(X[i], X[j])
		}
	}

	alphas := make([]float64, n)
	b := 0.0
	rng := rand.New(rand.NewSource(s.Seed))

	decision := func(i int) float64 {
		sum := b
		for j := 0; j < n; j++ {
			if alphas[j] > 0 {
				sum += alphas[j] * signed[j] * kernel[i][j]
			}
		}
		return sum
	}

	passes := 0
	for passes < s.MaxPasses {
		changed := 0
		for i := 0; i < n; i++ {
			ei := decision(i) - signed[i]
			if (signed[i]*ei < -s.Tol && alphas[i] < s.C) || (signed[i]*ei > s.Tol && alphas[i] > 0) {
				j := rng.Intn(n - 1)
				if j >= i {
					j++
				}
				ej := decision(j) - signed[j]

				aiOld, ajOld := alphas[i], alphas[j]
				var lo, hi float64
				if signed[i] != signed[j] {
					lo = math.Max(0, ajOld-aiOld)
					hi = math.Min(s.C, s.C+ajOld-aiOld)
				} else {
					lo = math.Max(0, aiOld+ajOld-s.C)
					hi = math.Min(s.C, aiOld+ajOld)
				}
				if lo == hi {
					continue
				}

				eta := 2*kernel[i][j] - kernel[i][i] - kernel[j][j]
				if eta >= 0 {
					continue
				}

				aj := ajOld - signed[j]*(ei-ej)/eta
				aj = math.Min(math.Max(aj, lo), hi)
				if math.Abs(aj-ajOld) < 1e-5 {
					continue
				}
				ai := aiOld + signed[i]*signed[j]*(ajOld-aj)

				b1 := b - ei - signed[i]*(ai-aiOld)*kernel[i][i] - signed[j]*(aj-ajOld)*kernel[i][j]
				b2 := b - ej - signed[i]*(ai-aiOld)*kernel[i][j] - signed[j]*(aj-ajOld)*kernel[j][j]
				switch {
				case ai > 0 && ai < s.C:
					b = b1
				case aj > 0 && aj < s.C:
					b = b2
				default:
					b = (b1 + b2) / 2
				}

				alphas[i], alphas[j] = ai, aj
				changed++
			}
		}
		if changed == 0 {
			passes++
		} else {
			passes = 0
		}
	}

	s.SupportVectors = nil
	s.Coefs = nil
	for i, a := range alphas {
		if a > 1e-8 {
			sv := make([]float64, cols)
			copy(sv, X[i])
			s.SupportVectors = append(s.SupportVectors, sv)
			s.Coefs = append(s.Coefs, a*signed[i])
		}
	}
	s.Bias = b
	if len(s.SupportVectors) == 0 {
		return errors.New("no support vectors found")
	}

	s.fitPlatt(X, y)
	return nil
}

// fitPlatt calibrates a 1-D sigmoid p = sigmoid(A*f + B) over the training
// decision values by gradient descent on the log loss.
func (s *SVM) fitPlatt(X [][]float64, y []int) {
	decisions := make([]float64, len(X))
	for i, row := range X {
		decisions[i] = s.decision(row)
	}

	a, b := 1.0, 0.0
	n := float64(len(X))
	for iter := 0; iter < 500; iter++ {
		gradA, gradB := 0.0, 0.0
		for i, f := range decisions {
			p := sigmoid(a*f + b)
			err := p - float64(y[i])
			gradA += err * f
			gradB += err
		}
		a -= 0.1 * gradA / n
		b -= 0.1 * gradB / n
	}
	s.PlattA, s.PlattB = a, b
}

func (s *SVM) decision(row []float64) float64 {
	sum := s.Bias
	for i, sv := range s.SupportVectors {
		sum += s.Coefs[i] * s.rbf(sv, row)
	}
	return sum
}

func (s *SVM) rbf(a, b []float64) float64 {
	dist := 0.0
	for i := range a {
		d := a[i] - b[i]
		dist += d * d
	}
	return math.Exp(-s.Gamma * dist)
}

// Predict returns the most likely class per row.
func (s *SVM) Predict(X [][]float64) ([]int, error) {
	if len(s.SupportVectors) == 0 {
		return nil, errors.New("model is not fitted")
	}
	labels := make([]int, len(X))
	for i, row := range X {
		if s.decision(row) >= 0 {
			labels[i] = 1
		}
	}
	return labels, nil
}

// PredictProba returns Platt-calibrated per-class probabilities.
func (s *SVM) PredictProba(X [][]float64) ([][]float64, error) {
	if len(s.SupportVectors) == 0 {
		return nil, errors.New("model is not fitted")
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		p1 := sigmoid(s.PlattA*s.decision(row) + s.PlattB)
		out[i] = []float64{1 - p1, p1}
	}
	return out, nil
}

func matrixVariance(X [][]float64) float64 {
	var sum, sq, count float64
	for _, row := range X {
		for _, v := range row {
			sum += v
			sq += v * v
			count++
		}
	}
	if count == 0 {
		return 1
	}
	mean := sum / count
	variance := sq/count - mean*mean
	if variance <= 0 {
		return 1
	}
	return variance
}
