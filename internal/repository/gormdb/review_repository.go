package gormdb

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"mySmartMarket/domain"
)

type ReviewRepository struct {
	DB *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{
		DB: db,
	}
}

func (r *ReviewRepository) FindAll(ctx context.Context) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var reviews []domain.Review
	err := r.DB.WithContext(ctx).Order("id").Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}

	return reviews, nil
}

func (r *ReviewRepository) FindByProduct(ctx context.Context, productID uint64) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var reviews []domain.Review
	err := r.DB.WithContext(ctx).
		Where(map[string]any{"productId": productID}).
		Order("id").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews by product: %w", err)
	}

	return reviews, nil
}

// FindByCategory returns the reviews of every product in the category.
func (r *ReviewRepository) FindByCategory(ctx context.Context, categoryID uint64) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var productIDs []uint64
	err := r.DB.WithContext(ctx).
		Model(&domain.Product{}).
		Where(map[string]any{"categoryId": categoryID}).
		Pluck("id", &productIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find products of category: %w", err)
	}
	if len(productIDs) == 0 {
		return []domain.Review{}, nil
	}

	var reviews []domain.Review
	err = r.DB.WithContext(ctx).
		Where(map[string]any{"productId": productIDs}).
		Order("id").
		Find(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews by category: %w", err)
	}

	return reviews, nil
}
