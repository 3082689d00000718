// Package ml implements the candidate classifier families and the feature
// scaler. All models are deterministic given their seed and expose the same
// Fit/Predict/PredictProba surface over float64 matrices with labels encoded
// as class indexes.
package ml

import "math"

// StandardScaler centers each column at zero mean and unit variance.
// Columns with zero variance pass through unscaled.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

// NewStandardScaler creates an unfitted scaler.
func NewStandardScaler() *StandardScaler {
	return &StandardScaler{}
}

// Fit computes per-column mean and standard deviation.
func (s *StandardScaler) Fit(X [][]float64) {
	if len(X) == 0 {
		s.Mean = nil
		s.Scale = nil
		return
	}
	cols := len(X[0])
	s.Mean = make([]float64, cols)
	s.Scale = make([]float64, cols)

	for _, row := range X {
		for j, v := range row {
			s.Mean[j] += v
		}
	}
	n := float64(len(X))
	for j := range s.Mean {
		s.Mean[j] /= n
	}

	for _, row := range X {
		for j, v := range row {
			d := v - s.Mean[j]
			s.Scale[j] += d * d
		}
	}
	for j := range s.Scale {
		s.Scale[j] = math.Sqrt(s.Scale[j] / n)
		if s.Scale[j] == 0 {
			s.Scale[j] = 1
		}
	}
}

// Transform maps a matrix into the fitted space. The input is not modified.
func (s *StandardScaler) Transform(X [][]float64) [][]float64 {
	out := make([][]float64, len(X))
	for i, row := range X {
		scaled := make([]float64, len(row))
		for j, v := range row {
			scaled[j] = (v - s.Mean[j]) / s.Scale[j]
		}
		out[i] = scaled
	}
	return out
}

// FitTransform fits the scaler and returns the scaled matrix.
func (s *StandardScaler) FitTransform(X [][]float64) [][]float64 {
	s.Fit(X)
	return s.Transform(X)
}
