//go:build !integration

package product

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mySmartMarket/business/recommender"
	"mySmartMarket/business/textnorm"
	"mySmartMarket/domain"
)

type fakeProductRepo struct {
	products []domain.Product
	err      error
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uint64) (domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, domain.ErrNotFound
}

func (f *fakeProductRepo) FindAll(context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func (f *fakeProductRepo) FindByCategory(_ context.Context, categoryID uint64) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range f.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, f.err
}

func (f *fakeProductRepo) SearchByName(context.Context, string) ([]domain.Product, error) {
	return f.products, f.err
}

type recordingRecommender struct {
	gotK int
}

func (r *recordingRecommender) Recommend(catalog []domain.Product, _ uint64, k int) ([]domain.ScoredProduct, error) {
	r.gotK = k
	return []domain.ScoredProduct{}, nil
}

func catalog() []domain.Product {
	return []domain.Product{
		{ID: 1, Name: "jam tangan kw", CurrentPrice: 50000, CategoryID: 3},
		{ID: 2, Name: "jam tangan original", CurrentPrice: 50000, CategoryID: 3},
		{ID: 3, Name: "sepatu lari", CurrentPrice: 50000, CategoryID: 4},
	}
}

func newRecommender(t *testing.T) *recommender.Recommender {
	t.Helper()
	lex, err := textnorm.DefaultLexicon()
	require.NoError(t, err)
	return recommender.New(textnorm.NewNormalizer(lex, nil))
}

func TestGetRecommendations(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{products: catalog()}, newRecommender(t), 5, 50)

	got, err := svc.GetRecommendations(context.Background(), 1, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, uint64(2), got[0].ID)
	assert.Equal(t, "jam tangan original", got[0].Name)
	assert.Equal(t, uint64(3), got[1].ID)
	assert.Greater(t, got[0].SimilarityScore, got[1].SimilarityScore)
}

func TestGetRecommendations_KBounds(t *testing.T) {
	rec := &recordingRecommender{}
	svc := NewProductService(&fakeProductRepo{products: catalog()}, rec, 4, 10)

	_, err := svc.GetRecommendations(context.Background(), 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, rec.gotK)

	_, err = svc.GetRecommendations(context.Background(), 1, 99)
	require.NoError(t, err)
	assert.Equal(t, 10, rec.gotK)
}

func TestGetRecommendations_Errors(t *testing.T) {
	ctx := context.Background()

	svc := NewProductService(&fakeProductRepo{products: catalog()}, newRecommender(t), 5, 50)
	_, err := svc.GetRecommendations(ctx, 77, 5)
	assert.ErrorIs(t, err, recommender.ErrProductNotFound)

	_, err = svc.GetRecommendations(ctx, 0, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	empty := NewProductService(&fakeProductRepo{}, newRecommender(t), 5, 50)
	_, err = empty.GetRecommendations(ctx, 1, 5)
	assert.ErrorIs(t, err, recommender.ErrEmptyCorpus)

	dbErr := errors.New("connection refused")
	broken := NewProductService(&fakeProductRepo{err: dbErr}, newRecommender(t), 5, 50)
	_, err = broken.GetRecommendations(ctx, 1, 5)
	assert.ErrorIs(t, err, dbErr)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = svc.GetRecommendations(canceled, 1, 5)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetProductByID(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{products: catalog()}, newRecommender(t), 5, 50)

	p, err := svc.GetProductByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, "sepatu lari", p.Name)

	_, err = svc.GetProductByID(context.Background(), 9)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetProductByID(context.Background(), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidID)
}

func TestGetProductsByCategory(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{products: catalog()}, newRecommender(t), 5, 50)

	got, err := svc.GetProductsByCategory(context.Background(), 3)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSearchProducts_RequiresName(t *testing.T) {
	svc := NewProductService(&fakeProductRepo{products: catalog()}, newRecommender(t), 5, 50)

	_, err := svc.SearchProducts(context.Background(), "  ")
	assert.Error(t, err)

	got, err := svc.SearchProducts(context.Background(), "jam")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
