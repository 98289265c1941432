package gormdb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mySmartMarket/domain"
)

type SentimentRepository struct {
	DB *gorm.DB
}

func NewSentimentRepository(db *gorm.DB) *SentimentRepository {
	return &SentimentRepository{
		DB: db,
	}
}

func (r *SentimentRepository) FindByProduct(ctx context.Context, productID uint64) (domain.SentimentPrediction, error) {
	if err := ctx.Err(); err != nil {
		return domain.SentimentPrediction{}, fmt.Errorf("context error: %w", err)
	}

	var prediction domain.SentimentPrediction

	err := r.DB.WithContext(ctx).Where(map[string]any{"productId": productID}).First(&prediction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SentimentPrediction{}, fmt.Errorf("sentiment for product %d: %w", productID, domain.ErrNotFound)
		}
		return domain.SentimentPrediction{}, fmt.Errorf("failed to find sentiment: %w", err)
	}

	return prediction, nil
}
