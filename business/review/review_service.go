package review

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"mySmartMarket/domain"
	"mySmartMarket/pkg/logger"
)

// Messages returned in place of a summary.
const (
	NoReviewsMessage   = "Belum ada review tersedia untuk produk ini."
	UnusableMessage    = "Review tersedia tetapi konten tidak dapat diproses."
	FetchFailedMessage = "Gagal mengambil data review."
)

// Shorter reviews carry too little text to rank.
const minReviewLength = 6

// ReviewRepository contract interface
type ReviewRepository interface {
	FindAll(ctx context.Context) ([]domain.Review, error)
	FindByProduct(ctx context.Context, productID uint64) ([]domain.Review, error)
	FindByCategory(ctx context.Context, categoryID uint64) ([]domain.Review, error)
}

// Summarizer condenses review texts into one string.
type Summarizer interface {
	Summarize(units []string) string
}

type reviewService struct {
	reviewRepo ReviewRepository
	summarizer Summarizer
}

func NewReviewService(reviewRepo ReviewRepository, summarizer Summarizer) *reviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		summarizer: summarizer,
	}
}

func (s *reviewService) GetAllReviews(ctx context.Context) ([]domain.Review, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when get all reviews")
		return nil, fmt.Errorf("context error: %w", err)
	}

	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to find all reviews", "error", err)
		return nil, err
	}

	return reviews, nil
}

func (s *reviewService) GetReviewsByProduct(ctx context.Context, productID uint64) ([]domain.Review, error) {
	if productID == 0 {
		return nil, domain.ErrInvalidID
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get reviews by product")
		return nil, fmt.Errorf("context error: %w", err)
	}

	reviews, err := s.reviewRepo.FindByProduct(ctx, productID)
	if err != nil {
		logger.Error("failed to find reviews by product", "product_id", productID, "error", err)
		return nil, err
	}

	return reviews, nil
}

func (s *reviewService) GetReviewsByCategory(ctx context.Context, categoryID uint64) ([]domain.Review, error) {
	if categoryID == 0 {
		return nil, domain.ErrInvalidID
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when get reviews by category")
		return nil, fmt.Errorf("context error: %w", err)
	}

	reviews, err := s.reviewRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		logger.Error("failed to find reviews by category", "category_id", categoryID, "error", err)
		return nil, err
	}

	return reviews, nil
}

// SummarizeProduct summarizes the reviews of one product. On a fetch failure
// the returned summary carries FetchFailedMessage alongside the error.
func (s *reviewService) SummarizeProduct(ctx context.Context, productID uint64) (domain.ReviewSummary, error) {
	return s.summarize(ctx, productID, s.GetReviewsByProduct)
}

// SummarizeCategory summarizes the reviews of every product in a category.
func (s *reviewService) SummarizeCategory(ctx context.Context, categoryID uint64) (domain.ReviewSummary, error) {
	return s.summarize(ctx, categoryID, s.GetReviewsByCategory)
}

func (s *reviewService) summarize(ctx context.Context, id uint64, fetch func(context.Context, uint64) ([]domain.Review, error)) (domain.ReviewSummary, error) {
	res := domain.ReviewSummary{ProductID: strconv.FormatUint(id, 10)}

	reviews, err := fetch(ctx, id)
	if err != nil {
		res.Summary = FetchFailedMessage
		return res, err
	}

	if len(reviews) == 0 {
		res.Summary = NoReviewsMessage
		return res, nil
	}

	texts := UsableTexts(reviews)
	if len(texts) == 0 {
		res.Summary = UnusableMessage
		return res, nil
	}

	res.Summary = s.summarizer.Summarize(texts)

	logger.FromContext(ctx).Debug("reviews summarized", "id", id, "reviews", len(reviews), "usable", len(texts))

	return res, nil
}

// UsableTexts returns the trimmed review texts long enough to summarize.
func UsableTexts(reviews []domain.Review) []string {
	texts := make([]string, 0, len(reviews))
	for _, r := range reviews {
		texts = append(texts, r.Review)
	}
	return FilterUsable(texts)
}

// FilterUsable trims texts and drops those shorter than six runes.
func FilterUsable(texts []string) []string {
	out := make([]string, 0, len(texts))
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if utf8.RuneCountInString(t) < minReviewLength {
			continue
		}
		out = append(out, t)
	}
	return out
}
