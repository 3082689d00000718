package ml

import (
	"errors"
	"math"
)

// GradientBoosting is a boosted ensemble for binary log-loss: shallow
// regression trees fitted stage-wise to the probability residuals, with a
// Newton step per leaf.
type GradientBoosting struct {
	NumStages    int         `json:"num_stages"`
	LearningRate float64     `json:"learning_rate"`
	MaxDepth     int         `json:"max_depth"`
	Seed         int64       `json:"seed"`
	InitRaw      float64     `json:"init_raw"`
	Trees        []*TreeNode `json:"trees"`
}

// NewGradientBoosting creates an ensemble with the fixed preset: 100 stages,
// learning rate 0.1, max depth 5.
func NewGradientBoosting(seed int64) *GradientBoosting {
	return &GradientBoosting{
		NumStages:    100,
		LearningRate: 0.1,
		MaxDepth:     5,
		Seed:         seed,
	}
}

// Fit trains the ensemble.
func (g *GradientBoosting) Fit(X [][]float64, y []int) error {
	if len(X) == 0 {
		return errors.New("empty training set")
	}
	pos := 0
	for _, label := range y {
		pos += label
	}
	if pos == 0 || pos == len(y) {
		return errors.New("training set contains a single class")
	}

	prior := float64(pos) / float64(len(y))
	g.InitRaw = math.Log(prior / (1 - prior))

	idx := make([]int, len(X))
	for i := range idx {
		idx[i] = i
	}
	cfg := treeConfig{
		maxDepth:        g.MaxDepth,
		minSamplesSplit: 2,
		minSamplesLeaf:  1,
	}

	raw := make([]float64, len(X))
	for i := range raw {
		raw[i] = g.InitRaw
	}
	residuals := make([]float64, len(X))

	g.Trees = make([]*TreeNode, 0, g.NumStages)
	for stage := 0; stage < g.NumStages; stage++ {
		for i := range X {
			residuals[i] = float64(y[i]) - sigmoid(raw[i])
		}
		tree := buildTree(X, residuals, idx, 0, cfg, nil)
		g.newtonLeaves(tree, X, y, raw, idx)

		for i, row := range X {
			raw[i] += g.LearningRate * tree.Apply(row).Value
		}
		g.Trees = append(g.Trees, tree)
	}
	return nil
}

// newtonLeaves replaces each leaf's fitted mean with the one-step Newton
// value sum(residual) / sum(p*(1-p)) over the samples routed to that leaf.
func (g *GradientBoosting) newtonLeaves(tree *TreeNode, X [][]float64, y []int, raw []float64, idx []int) {
	grad := make(map[*TreeNode]float64)
	hess := make(map[*TreeNode]float64)
	for _, i := range idx {
		leaf := tree.Apply(X[i])
		p := sigmoid(raw[i])
		grad[leaf] += float64(y[i]) - p
		hess[leaf] += p * (1 - p)
	}
	for leaf, h := range hess {
		if h < 1e-12 {
			leaf.Value = 0
			continue
		}
		leaf.Value = grad[leaf] / h
	}
}

// Predict returns the most likely class per row.
func (g *GradientBoosting) Predict(X [][]float64) ([]int, error) {
	probs, err := g.PredictProba(X)
	if err != nil {
		return nil, err
	}
	return argmaxRows(probs), nil
}

// PredictProba returns per-class probabilities.
func (g *GradientBoosting) PredictProba(X [][]float64) ([][]float64, error) {
	if len(g.Trees) == 0 {
		return nil, errors.New("ensemble is not fitted")
	}
	out := make([][]float64, len(X))
	for i, row := range X {
		raw := g.InitRaw
		for _, tree := range g.Trees {
			raw += g.LearningRate * tree.Apply(row).Value
		}
		p1 := sigmoid(raw)
		out[i] = []float64{1 - p1, p1}
	}
	return out, nil
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
