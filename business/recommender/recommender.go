package recommender

import (
	"fmt"

	"mySmartMarket/business/similarity"
	"mySmartMarket/business/textnorm"
	"mySmartMarket/domain"
)

// DefaultK is used when a caller asks for k <= 0.
const DefaultK = 5

// Recommender ranks catalog records by cosine similarity of their hybrid
// feature vectors. It holds no catalog state and is safe for concurrent use.
//
// Every call rebuilds the full n×n similarity matrix, so time and memory grow
// quadratically with catalog size.
type Recommender struct {
	vectorizer *Vectorizer
}

func New(normalizer *textnorm.Normalizer) *Recommender {
	return &Recommender{vectorizer: NewVectorizer(normalizer)}
}

// Recommend returns up to k records most similar to targetID, best first.
// The target itself is never included. A catalog holding only the target
// yields an empty slice.
func (r *Recommender) Recommend(catalog []domain.Product, targetID uint64, k int) ([]domain.ScoredProduct, error) {
	if k <= 0 {
		k = DefaultK
	}

	m, err := r.vectorizer.BuildFeatures(catalog)
	if err != nil {
		return nil, err
	}

	target, ok := m.Row(targetID)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrProductNotFound, targetID)
	}

	sim := similarity.CosineMatrix(m.Rows)

	ranked := similarity.TopK(sim[target], k, func(i int) bool { return i == target })

	out := make([]domain.ScoredProduct, 0, len(ranked))
	for _, rk := range ranked {
		out = append(out, domain.ScoredProduct{
			ProductID: m.ID(rk.Index),
			Score:     rk.Score,
		})
	}

	return out, nil
}

// Similarity returns the score between two records of catalog.
func (r *Recommender) Similarity(catalog []domain.Product, idA, idB uint64) (float64, error) {
	m, err := r.vectorizer.BuildFeatures(catalog)
	if err != nil {
		return 0, err
	}

	a, ok := m.Row(idA)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrProductNotFound, idA)
	}
	b, ok := m.Row(idB)
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrProductNotFound, idB)
	}

	return similarity.CosineMatrix(m.Rows)[a][b], nil
}
