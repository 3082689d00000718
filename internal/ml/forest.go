package ml

import (
	"errors"
	"math"
	"math/rand"
)

// RandomForest is a bagged ensemble of classification trees. Each tree is
// fitted on a bootstrap sample with a sqrt-sized feature subsample per node,
// and probabilities are the average of per-tree leaf fractions.
type RandomForest struct {
	NumTrees        int         `json:"num_trees"`
	MaxDepth        int         `json:"max_depth"`
	MinSamplesSplit int         `json:"min_samples_split"`
	MinSamplesLeaf  int         `json:"min_samples_leaf"`
	Seed            int64       `json:"seed"`
	Trees           []*TreeNode `json:"trees"`
}

// NewRandomForest creates a forest with the fixed preset: 100 trees,
// max depth 10, min split 2, min leaf 1.
func NewRandomForest(seed int64) *RandomForest {
	return &RandomForest{
		NumTrees:        100,
		MaxDepth:        10,
		MinSamplesSplit: 2,
		MinSamplesLeaf:  1,
		Seed:            seed,
	}
}

// Fit trains the ensemble.
func (f *RandomForest) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("empty training set")
	}
	rng := rand.New(rand.NewSource(f.Seed))

	targets := make([]float64, len(y))
	for i, label := range y {
		targets[i] = float64(label)
	}

	maxFeatures := int(math.Sqrt(float64(len(X[0]))))
	if maxFeatures < 1 {
		maxFeatures = 1
	}
	cfg := treeConfig{
		maxDepth:        f.MaxDepth,
		minSamplesSplit: f.MinSamplesSplit,
		minSamplesLeaf:  f.MinSamplesLeaf,
		maxFeatures:     maxFeatures,
	}

	f.Trees = make([]*TreeNode, f.NumTrees)
	for t := 0; t < f.NumTrees; t++ {
		sample := make([]int, len(X))
		for i := range sample {
			sample[i] = rng.Intn(len(X))
		}
		f.Trees[t] = buildTree(X, targets, sample, 0, cfg, rng)
	}
	return nil
}

// Predict returns the majority class per row.
func (f *RandomForest) Predict(X [][]float64) ([]int, error) {
	probs, err := f.PredictProba(X)
	if err != nil {
		return nil, err
	}
	return argmaxRows(probs), nil
}

// PredictProba averages leaf class fractions across the ensemble.
func (f *RandomForest) PredictProba(X [][]float64) ([][]float64, error) {
	if len(f.Trees) == 0 {
		return nil, errors.New("forest is not fitted")
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		sum := 0.0
		for _, tree := range f.Trees {
			sum += tree.Apply(row).Value
		}
		p1 := sum / float64(len(f.Trees))
		out[i] = []float64{1 - p1, p1}
	}
	return out, nil
}

func argmaxRows(probs [][]float64) []int {
	labels := make([]int, len(probs))
	for i, row := range probs {
		best := 0
		for j, p := range row {
			if p > row[best] {
				best = j
			}
		}
		labels[i] = best
	}
	return labels
}
