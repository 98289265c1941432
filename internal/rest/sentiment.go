package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"

	"mySmartMarket/domain"
)

type SentimentService interface {
	GetByProduct(ctx context.Context, productID uint64) (domain.SentimentPrediction, error)
}

type SentimentHandler struct {
	sentimentService SentimentService
	timeout          time.Duration
}

func NewSentimentHandler(sentimentService SentimentService) *SentimentHandler {
	return &SentimentHandler{
		sentimentService: sentimentService,
		timeout:          10 * time.Second,
	}
}

// GET /api/v1/products/:id/sentiment
func (h *SentimentHandler) GetByProduct(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	prediction, err := h.sentimentService.GetByProduct(ctx, id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(prediction))
}
