package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"

	"mySmartMarket/domain"
	"mySmartMarket/pkg/logger"
)

type ReviewService interface {
	GetAllReviews(ctx context.Context) ([]domain.Review, error)
	GetReviewsByProduct(ctx context.Context, productID uint64) ([]domain.Review, error)
	GetReviewsByCategory(ctx context.Context, categoryID uint64) ([]domain.Review, error)
	SummarizeProduct(ctx context.Context, productID uint64) (domain.ReviewSummary, error)
	SummarizeCategory(ctx context.Context, categoryID uint64) (domain.ReviewSummary, error)
}

type ReviewHandler struct {
	reviewService ReviewService
	timeout       time.Duration
}

func NewReviewHandler(reviewService ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		timeout:       10 * time.Second,
	}
}

func (h *ReviewHandler) GetAllReviews(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	reviews, err := h.reviewService.GetAllReviews(ctx)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(reviews))
}

func (h *ReviewHandler) GetReviewsByProduct(c echo.Context) error {
	return h.list(c, "invalid product id", h.reviewService.GetReviewsByProduct)
}

func (h *ReviewHandler) GetReviewsByCategory(c echo.Context) error {
	return h.list(c, "invalid category id", h.reviewService.GetReviewsByCategory)
}

// GET /api/v1/products/:id/reviews/summary
func (h *ReviewHandler) SummarizeProduct(c echo.Context) error {
	return h.summary(c, "invalid product id", h.reviewService.SummarizeProduct)
}

// GET /api/v1/categories/:id/reviews/summary
func (h *ReviewHandler) SummarizeCategory(c echo.Context) error {
	return h.summary(c, "invalid category id", h.reviewService.SummarizeCategory)
}

func (h *ReviewHandler) list(c echo.Context, invalidMsg string, fetch func(context.Context, uint64) ([]domain.Review, error)) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: invalidMsg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	reviews, err := fetch(ctx, id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(reviews))
}

// summary answers with the summary body even when fetching reviews failed, so
// clients always get a displayable text.
func (h *ReviewHandler) summary(c echo.Context, invalidMsg string, run func(context.Context, uint64) (domain.ReviewSummary, error)) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: invalidMsg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	res, err := run(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("failed to summarize reviews", "id", id, "error", err)
		return c.JSON(http.StatusInternalServerError, res)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(res))
}
