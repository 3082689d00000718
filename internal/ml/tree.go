package ml

import (
	"math"
	"math/rand"
	"sort"
)

// TreeNode is one node of a fitted decision tree. Leaves carry a single
// value: the class-1 fraction for classification trees, the fitted target
// for regression trees. For binary 0/1 targets variance reduction orders
// splits identically to gini impurity, so one split criterion serves both
// uses.
type TreeNode struct {
	Feature   int       `json:"feature"`
	Threshold float64   `json:"threshold"`
	Left      *TreeNode `json:"left,omitempty"`
	Right     *TreeNode `json:"right,omitempty"`
	Leaf      bool      `json:"leaf"`
	Value     float64   `json:"value"`
}

type treeConfig struct {
	maxDepth        int
	minSamplesSplit int
	minSamplesLeaf  int
	// maxFeatures limits how many features each node considers; 0 means all.
	maxFeatures int
}

// buildTree fits a tree on the rows of X selected by idx against continuous
// targets t. rng drives the per-node feature subsample and must be non-nil
// when cfg.maxFeatures > 0.
func buildTree(X [][]float64, t []float64, idx []int, depth int, cfg treeConfig, rng *rand.Rand) *TreeNode {
	mean := meanTarget(t, idx)
	if depth >= cfg.maxDepth || len(idx) < cfg.minSamplesSplit || pureTargets(t, idx) {
		return &TreeNode{Leaf: true, Value: mean}
	}

	feature, threshold, ok := bestSplit(X, t, idx, cfg, rng)
	if !ok {
		return &TreeNode{Leaf: true, Value: mean}
	}

	var left, right []int
	for _, i := range idx {
		if X[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) < cfg.minSamplesLeaf || len(right) < cfg.minSamplesLeaf {
		return &TreeNode{Leaf: true, Value: mean}
	}

	return &TreeNode{
		Feature:   feature,
		Threshold: threshold,
		Left:      buildTree(X, t, left, depth+1, cfg, rng),
		Right:     buildTree(X, t, right, depth+1, cfg, rng),
	}
}

// bestSplit scans candidate features for the split with the largest weighted
// variance reduction. Thresholds are midpoints between consecutive distinct
// values.
func bestSplit(X [][]float64, t []float64, idx []int, cfg treeConfig, rng *rand.Rand) (int, float64, bool) {
	nFeatures := len(X[idx[0]])
	candidates := make([]int, nFeatures)
	for j := range candidates {
		candidates[j] = j
	}
	if cfg.maxFeatures > 0 && cfg.maxFeatures < nFeatures {
		rng.Shuffle(nFeatures, func(a, b int) {
			candidates[a], candidates[b] = candidates[b], candidates[a]
		})
		candidates = candidates[:cfg.maxFeatures]
		sort.Ints(candidates)
	}

	bestFeature := -1
	bestThreshold := 0.0
	bestScore := math.Inf(1)

	sorted := make([]int, len(idx))
	for _, feature := range candidates {
		copy(sorted, idx)
		f := feature
		sort.SliceStable(sorted, func(a, b int) bool {
			return X[sorted[a]][f] < X[sorted[b]][f]
		})

		// Prefix sums over the sorted order let each threshold be scored
		// in constant time.
		var sumLeft, sqLeft float64
		var sumRight, sqRight float64
		for _, i := range sorted {
			sumRight += t[i]
			sqRight += t[i] * t[i]
		}

		for k := 0; k < len(sorted)-1; k++ {
			v := t[sorted[k]]
			sumLeft += v
			sqLeft += v * v
			sumRight -= v
			sqRight -= v * v

			cur, next := X[sorted[k]][f], X[sorted[k+1]][f]
			if cur == next {
				continue
			}
			nl, nr := k+1, len(sorted)-k-1
			if nl < cfg.minSamplesLeaf || nr < cfg.minSamplesLeaf {
				continue
			}

			// Weighted sum of child variances, up to a constant factor.
			score := (sqLeft - sumLeft*sumLeft/float64(nl)) +
				(sqRight - sumRight*sumRight/float64(nr))
			if score < bestScore {
				bestScore = score
				bestFeature = f
				bestThreshold = (cur + next) / 2
			}
		}
	}

	if bestFeature < 0 {
		return 0, 0, false
	}
	return bestFeature, bestThreshold, true
}

// Apply walks the tree for a single row and returns the reached leaf.
func (n *TreeNode) Apply(row []float64) *TreeNode {
	node := n
	for !node.Leaf {
		if row[node.Feature] <= node.Threshold {
			node = node.Left
		} else {
			node = node.Right
		}
	}
	return node
}

func meanTarget(t []float64, idx []int) float64 {
	if len(idx) == 0 {
		return 0
	}
	sum := 0.0
	for _, i := range idx {
		sum += t[i]
	}
	return sum / float64(len(idx))
}

func pureTargets(t []float64, idx []int) bool {
	for _, i := range idx[1:] {
		if t[i] != t[idx[0]] {
			return false
		}
	}
	return true
}
