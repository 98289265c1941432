package similarity

import "sort"

// Ranked is a row index with its score.
type Ranked struct {
	Index int
	Score float64
}

// TopK returns up to k indices ordered by score descending. Equal scores keep
// ascending index order. Indices for which skip returns true are left out.
// k <= 0 returns every eligible index.
func TopK(scores []float64, k int, skip func(i int) bool) []Ranked {
	ranked := make([]Ranked, 0, len(scores))
	for i, s := range scores {
		if skip != nil && skip(i) {
			continue
		}
		ranked = append(ranked, Ranked{Index: i, Score: s})
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	if k > 0 && k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}
