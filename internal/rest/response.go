package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"mySmartMarket/business/recommender"
	"mySmartMarket/domain"
)

type ResponseError struct {
	Message string `json:"message"`
}

var errInvalidID = errors.New("invalid id")

// parseID reads a positive integer path parameter.
func parseID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// errorResponse maps service errors onto HTTP statuses.
func errorResponse(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidID):
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	case errors.Is(err, recommender.ErrEmptyCorpus):
		return c.JSON(http.StatusNotFound, ResponseError{Message: "no products to recommend from"})
	case errors.Is(err, recommender.ErrProductNotFound), errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusGatewayTimeout, ResponseError{Message: "request timed out"})
	default:
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: "internal server error"})
	}
}
