package ml

import (
	"math"
	"testing"
)

func TestScalerZeroMeanUnitVariance(t *testing.T) {
	X := [][]float64{{1, 10}, {2, 20}, {3, 30}, {4, 40}}
	s := NewStandardScaler()
	scaled := s.FitTransform(X)

	for j := 0; j < 2; j++ {
		var mean, variance float64
		for _, row := range scaled {
			mean += row[j]
		}
		mean /= float64(len(scaled))
		for _, row := range scaled {
			d := row[j] - mean
			variance += d * d
		}
		variance /= float64(len(scaled))

		if math.Abs(mean) > 1e-9 {
			t.Errorf("column %d mean = %g, want 0", j, mean)
		}
		if math.Abs(variance-1) > 1e-9 {
			t.Errorf("column %d variance = %g, want 1", j, variance)
		}
	}
}

func TestScalerConstantColumn(t *testing.T) {
	X := [][]float64{{5, 1}, {5, 2}, {5, 3}}
	s := NewStandardScaler()
	scaled := s.FitTransform(X)
	for i := range scaled {
		if scaled[i][0] != 0 {
			t.Fatalf("constant column should center to 0, got %g", scaled[i][0])
		}
	}
}

func TestScalerDoesNotMutateInput(t *testing.T) {
	X := [][]float64{{1, 2}, {3, 4}}
	s := NewStandardScaler()
	s.FitTransform(X)
	if X[0][0] != 1 || X[1][1] != 4 {
		t.Fatalf("input matrix was mutated: %v", X)
	}
}
