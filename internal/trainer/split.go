package trainer

import (
	"math"
	"math/rand"
	"sort"
)

// stratifiedSplit partitions row indexes into train and test sets, drawing
// from each class in proportion to testFraction. Both partitions come back
// sorted so downstream work is independent of shuffle order.
func stratifiedSplit(y []int, testFraction float64, rng *rand.Rand) (train, test []int) {
	for _, class := range classOrder(y) {
		idx := classIndexes(y, class)
		rng.Shuffle(len(idx), func(a, b int) {
			idx[a], idx[b] = idx[b], idx[a]
		})
		nTest := int(math.Round(float64(len(idx)) * testFraction))
		if nTest < 1 {
			nTest = 1
		}
		if nTest >= len(idx) {
			nTest = len(idx) - 1
		}
		test = append(test, idx[:nTest]...)
		train = append(train, idx[nTest:]...)
	}
	sort.Ints(train)
	sort.Ints(test)
	return train, test
}

// stratifiedFolds assigns each row to one of k folds, class by class, after
// a seeded shuffle within each class.
func stratifiedFolds(y []int, k int, rng *rand.Rand) [][]int {
	folds := make([][]int, k)
	for _, class := range classOrder(y) {
		idx := classIndexes(y, class)
		rng.Shuffle(len(idx), func(a, b int) {
			idx[a], idx[b] = idx[b], idx[a]
		})
		for n, i := range idx {
			folds[n%k] = append(folds[n%k], i)
		}
	}
	for _, fold := range folds {
		sort.Ints(fold)
	}
	return folds
}

func classOrder(y []int) []int {
	seen := map[int]bool{}
	var order []int
	for _, class := range y {
		if !seen[class] {
			seen[class] = true
			order = append(order, class)
		}
	}
	sort.Ints(order)
	return order
}

func classIndexes(y []int, class int) []int {
	var idx []int
	for i, c := range y {
		if c == class {
			idx = append(idx, i)
		}
	}
	return idx
}

func selectRows(X [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for n, i := range idx {
		out[n] = X[i]
	}
	return out
}

func selectLabels(y []int, idx []int) []int {
	out := make([]int, len(idx))
	for n, i := range idx {
		out[n] = y[i]
	}
	return out
}
