package router

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"mySmartMarket/internal/rest"
)

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, limiter echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/search", handler.SearchProducts)
	products.GET("/:id", handler.GetProductByID)
	products.GET("/:id/recommendations", handler.GetRecommendations, limiter)
}

func SetupCategoryRoutes(api *echo.Group, handler *rest.CategoryHandler, products *rest.ProductHandler) {
	categories := api.Group("/categories")

	categories.GET("", handler.GetAllCategories)
	categories.GET("/:id", handler.GetCategoryByID)
	categories.GET("/:id/products", products.GetProductsByCategory)
}

func SetupReviewRoutes(api *echo.Group, handler *rest.ReviewHandler, limiter echo.MiddlewareFunc) {
	api.GET("/reviews", handler.GetAllReviews)

	api.GET("/products/:id/reviews", handler.GetReviewsByProduct)
	api.GET("/products/:id/reviews/summary", handler.SummarizeProduct, limiter)

	api.GET("/categories/:id/reviews", handler.GetReviewsByCategory)
	api.GET("/categories/:id/reviews/summary", handler.SummarizeCategory, limiter)
}

func SetupSentimentRoutes(api *echo.Group, handler *rest.SentimentHandler) {
	api.GET("/products/:id/sentiment", handler.GetByProduct)
}

func SetupOpsRoutes(e *echo.Echo, health *rest.HealthHandler) {
	e.GET("/healthz", health.Healthz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}
