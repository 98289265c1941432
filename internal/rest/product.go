package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"mySmartMarket/domain"
	"mySmartMarket/pkg/logger"
)

type (
	ProductService interface {
		GetAllProducts(ctx context.Context) ([]domain.Product, error)
		GetProductByID(ctx context.Context, id uint64) (domain.Product, error)
		GetProductsByCategory(ctx context.Context, categoryID uint64) ([]domain.Product, error)
		SearchProducts(ctx context.Context, name string) ([]domain.Product, error)
		GetRecommendations(ctx context.Context, productID uint64, k int) ([]domain.RecommendedProduct, error)
	}

	ProductHandler struct {
		productService ProductService
		validate       *validator.Validate
		timeout        time.Duration
	}

	SearchQuery struct {
		Name string `query:"name" validate:"required,max=100"`
	}

	RecommendQuery struct {
		K int `query:"k" validate:"gte=0"`
	}
)

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validate:       validator.New(),
		timeout:        10 * time.Second,
	}
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetAllProducts(ctx)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

func (h *ProductHandler) GetProductByID(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetProductByID(ctx, id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(product))
}

// GET /api/v1/categories/:id/products
func (h *ProductHandler) GetProductsByCategory(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid category id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetProductsByCategory(ctx, id)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

// GET /api/v1/products/search?name=sepatu
func (h *ProductHandler) SearchProducts(c echo.Context) error {
	var q SearchQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.SearchProducts(ctx, q.Name)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(products))
}

// GET /api/v1/products/:id/recommendations?k=5
func (h *ProductHandler) GetRecommendations(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: "invalid product id"})
	}

	var q RecommendQuery
	if err := c.Bind(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&q); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	recs, err := h.productService.GetRecommendations(ctx, id, q.K)
	if err != nil {
		logger.FromContext(ctx).Warn("failed to get recommendations", "product_id", id, "error", err)
		return errorResponse(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}
