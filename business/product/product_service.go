package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mySmartMarket/business/recommender"
	"mySmartMarket/domain"
	"mySmartMarket/pkg/logger"
	"mySmartMarket/pkg/metrics"
)

// ProductRepository contract interface
type ProductRepository interface {
	FindByID(ctx context.Context, id uint64) (domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByCategory(ctx context.Context, categoryID uint64) ([]domain.Product, error)
	SearchByName(ctx context.Context, name string) ([]domain.Product, error)
}

// Recommender ranks a catalog snapshot against one of its records.
type Recommender interface {
	Recommend(catalog []domain.Product, targetID uint64, k int) ([]domain.ScoredProduct, error)
}

type productService struct {
	productRepo ProductRepository
	recommender Recommender
	defaultK    int
	maxK        int
}

func NewProductService(productRepo ProductRepository, rec Recommender, defaultK, maxK int) *productService {
	return &productService{
		productRepo: productRepo,
		recommender: rec,
		defaultK:    defaultK,
		maxK:        maxK,
	}
}

func (s *productService) GetAllProducts(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all product", "error", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uint64) (domain.Product, error) {
	if id == 0 {
		return domain.Product{}, domain.ErrInvalidID
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get product by id")
		return domain.Product{}, fmt.Errorf("context error: %w", err)
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("failed to find product by id", "id", id, "error", err)
		}
		return domain.Product{}, err
	}

	return product, nil
}

func (s *productService) GetProductsByCategory(ctx context.Context, categoryID uint64) ([]domain.Product, error) {
	if categoryID == 0 {
		return nil, domain.ErrInvalidID
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get products by category")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		logger.Error("failed to find products by category", "category_id", categoryID, "error", err)
		return nil, err
	}

	return products, nil
}

func (s *productService) SearchProducts(ctx context.Context, name string) ([]domain.Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("search name is required")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when search products")
		return nil, fmt.Errorf("context error: %w", err)
	}

	products, err := s.productRepo.SearchByName(ctx, name)
	if err != nil {
		logger.Error("failed to search products", "name", name, "error", err)
		return nil, err
	}

	return products, nil
}

// GetRecommendations ranks the full catalog against productID and returns the
// top k records with their scores. k <= 0 uses the configured default and k is
// capped at the configured maximum.
func (s *productService) GetRecommendations(ctx context.Context, productID uint64, k int) ([]domain.RecommendedProduct, error) {
	if productID == 0 {
		return nil, domain.ErrInvalidID
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get recommendations")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if k <= 0 {
		k = s.defaultK
	}
	if s.maxK > 0 && k > s.maxK {
		k = s.maxK
	}

	log := logger.FromContext(ctx)

	catalog, err := s.productRepo.FindAll(ctx)
	if err != nil {
		log.Error("failed to load catalog", "error", err)
		metrics.RecommendRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	metrics.CatalogSize.Set(float64(len(catalog)))

	start := time.Now()
	scored, err := s.recommender.Recommend(catalog, productID, k)
	metrics.RecommendDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.RecommendRequests.WithLabelValues(outcome(err)).Inc()
		log.Warn("recommendation failed", "product_id", productID, "error", err)
		return nil, err
	}
	metrics.RecommendRequests.WithLabelValues("ok").Inc()

	byID := make(map[uint64]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	out := make([]domain.RecommendedProduct, 0, len(scored))
	for _, sp := range scored {
		out = append(out, domain.RecommendedProduct{
			Product:         byID[sp.ProductID],
			SimilarityScore: sp.Score,
		})
	}

	log.Debug("recommendations computed", "product_id", productID, "k", k, "results", len(out), "catalog", len(catalog))

	return out, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, recommender.ErrProductNotFound):
		return "not_found"
	case errors.Is(err, recommender.ErrEmptyCorpus):
		return "empty_corpus"
	default:
		return "error"
	}
}
