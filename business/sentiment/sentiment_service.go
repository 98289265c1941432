package sentiment

import (
	"context"
	"errors"
	"fmt"

	"mySmartMarket/domain"
	"mySmartMarket/pkg/logger"
)

// SentimentRepository reads aggregates written by the classification job.
type SentimentRepository interface {
	FindByProduct(ctx context.Context, productID uint64) (domain.SentimentPrediction, error)
}

type sentimentService struct {
	sentimentRepo SentimentRepository
}

func NewSentimentService(sentimentRepo SentimentRepository) *sentimentService {
	return &sentimentService{
		sentimentRepo: sentimentRepo,
	}
}

func (s *sentimentService) GetByProduct(ctx context.Context, productID uint64) (domain.SentimentPrediction, error) {
	if productID == 0 {
		return domain.SentimentPrediction{}, domain.ErrInvalidID
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get sentiment")
		return domain.SentimentPrediction{}, fmt.Errorf("context error: %w", err)
	}

	prediction, err := s.sentimentRepo.FindByProduct(ctx, productID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("failed to find sentiment", "product_id", productID, "error", err)
		}
		return domain.SentimentPrediction{}, err
	}

	return prediction, nil
}
