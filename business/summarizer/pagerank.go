package summarizer

import (
	"errors"
	"math"
)

var ErrNotConverged = errors.New("centrality did not converge")

// pageRank scores the nodes of a weighted undirected graph given as a dense
// adjacency matrix (0 = no edge). Each node spreads its score over its edges in
// proportion to their weight; nodes without edges spread it uniformly. The
// iteration stops when the L1 change drops below n*tol.
func pageRank(adj [][]float64, damping float64, maxIter int, tol float64) ([]float64, error) {
	n := len(adj)
	if n == 0 {
		return nil, nil
	}

	outWeight := make([]float64, n)
	for i, row := range adj {
		for _, w := range row {
			outWeight[i] += w
		}
	}

	uniform := 1 / float64(n)
	x := make([]float64, n)
	for i := range x {
		x[i] = uniform
	}

	next := make([]float64, n)
	for iter := 0; iter < maxIter; iter++ {
		var dangling float64
		for i := range x {
			if outWeight[i] == 0 {
				dangling += x[i]
			}
		}

		base := damping*dangling*uniform + (1-damping)*uniform
		for j := range next {
			next[j] = base
		}
		for i, row := range adj {
			if outWeight[i] == 0 {
				continue
			}
			share := damping * x[i] / outWeight[i]
			for j, w := range row {
				if w != 0 {
					next[j] += share * w
				}
			}
		}

		var diff float64
		for i := range x {
			diff += math.Abs(next[i] - x[i])
		}
		x, next = next, x

		if diff < float64(n)*tol {
			return x, nil
		}
	}

	return nil, ErrNotConverged
}
