package recommender

import (
	"errors"
	"fmt"

	"mySmartMarket/business/similarity"
	"mySmartMarket/business/textnorm"
	"mySmartMarket/domain"
)

// NumericColumns names the scaled block appended after the TF-IDF columns.
var NumericColumns = []string{"currentPrice", "originalPrice", "discount", "stock"}

// FeatureMatrix is the hybrid representation of one catalog snapshot.
type FeatureMatrix struct {
	Rows       [][]float64
	Vocabulary []string

	ids   []uint64
	rowOf map[uint64]int
}

// Row returns the row index of id.
func (m *FeatureMatrix) Row(id uint64) (int, bool) {
	i, ok := m.rowOf[id]
	return i, ok
}

// ID returns the product id stored at row i.
func (m *FeatureMatrix) ID(i int) uint64 {
	return m.ids[i]
}

func (m *FeatureMatrix) Len() int {
	return len(m.ids)
}

// Vectorizer turns catalog records into a FeatureMatrix.
type Vectorizer struct {
	normalizer *textnorm.Normalizer
}

func NewVectorizer(normalizer *textnorm.Normalizer) *Vectorizer {
	return &Vectorizer{normalizer: normalizer}
}

// BuildFeatures normalizes names, weights them with TF-IDF and appends the
// min-max scaled numeric columns. catalog is not modified.
func (v *Vectorizer) BuildFeatures(catalog []domain.Product) (*FeatureMatrix, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCorpus
	}

	m := &FeatureMatrix{
		ids:   make([]uint64, len(catalog)),
		rowOf: make(map[uint64]int, len(catalog)),
	}

	names := make([]string, len(catalog))
	numeric := make([][]float64, len(catalog))

	for i, p := range catalog {
		if _, dup := m.rowOf[p.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateProductID, p.ID)
		}
		m.rowOf[p.ID] = i
		m.ids[i] = p.ID

		// p is a copy; an undiscounted record is priced at its current price.
		if p.Discount == 0 {
			p.OriginalPrice = p.CurrentPrice
		}

		names[i] = v.normalizer.Normalize(p.Name, textnorm.ModeCatalogName)
		numeric[i] = []float64{p.CurrentPrice, p.OriginalPrice, p.Discount, float64(p.Stock)}
	}

	var text [][]float64
	tfidf, err := similarity.FitTransform(names)
	switch {
	case err == nil:
		text = tfidf.Rows
		m.Vocabulary = tfidf.Vocabulary
	case errors.Is(err, similarity.ErrEmptyVocabulary):
		// no usable names; rank on the numeric block alone
	default:
		return nil, fmt.Errorf("failed to vectorize names: %w", err)
	}

	m.Rows = similarity.HStack(text, similarity.MinMaxScale(numeric))

	return m, nil
}
