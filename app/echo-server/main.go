package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"mySmartMarket/app/echo-server/metrics"
	"mySmartMarket/app/echo-server/router"
	"mySmartMarket/business/category"
	"mySmartMarket/business/product"
	"mySmartMarket/business/recommender"
	"mySmartMarket/business/review"
	"mySmartMarket/business/sentiment"
	"mySmartMarket/business/summarizer"
	"mySmartMarket/business/textnorm"
	"mySmartMarket/internal/middleware"
	"mySmartMarket/internal/repository/gormdb"
	"mySmartMarket/internal/rest"
	"mySmartMarket/pkg/config"
	"mySmartMarket/pkg/database"
	"mySmartMarket/pkg/logger"
	engineMetrics "mySmartMarket/pkg/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.App.Environment, cfg.App.LogLevel, cfg.App.LogFile); err != nil {
		logger.Warn("Log file unavailable, logging to stdout only", "file", cfg.App.LogFile, "error", err)
	}
	defer logger.Close()

	logger.Info("Starting "+cfg.App.Name, "version", cfg.App.Version, "env", cfg.App.Environment)

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "driver", cfg.Database.Driver, "error", err)
	}

	logger.Info("Database connected successfully", "driver", cfg.Database.Driver)

	// Init metrics
	metrics.Init()
	engineMetrics.Init()

	// Init text pipeline
	lexicon, err := textnorm.LoadLexiconFile(cfg.App.LexiconPath)
	if err != nil {
		logger.Fatal("Failed to load lexicon", "path", cfg.App.LexiconPath, "error", err)
	}
	logger.Info("Lexicon loaded", "version", lexicon.Version)

	normalizer := textnorm.NewNormalizer(lexicon, textnorm.NewSastrawiStemmer())

	summaryCfg := summarizer.DefaultConfig()
	summaryCfg.TopK = cfg.Summary.TopK
	summaryCfg.Threshold = cfg.Summary.Threshold
	summaryCfg.MaxUnits = cfg.Summary.MaxUnits
	summaryCfg.Separator = cfg.Summary.Separator

	// Init repo
	productRepo := gormdb.NewProductRepository(db)
	categoryRepo := gormdb.NewCategoryRepository(db)
	reviewRepo := gormdb.NewReviewRepository(db)
	sentimentRepo := gormdb.NewSentimentRepository(db)

	// Init service
	productService := product.NewProductService(productRepo, recommender.New(normalizer), cfg.Recommend.DefaultK, cfg.Recommend.MaxK)
	categoryService := category.NewCategoryService(categoryRepo)
	reviewService := review.NewReviewService(reviewRepo, summarizer.New(summaryCfg, normalizer))
	sentimentService := sentiment.NewSentimentService(sentimentRepo)

	// Init handler
	productHandler := rest.NewProductHandler(productService)
	categoryHandler := rest.NewCategoryHandler(categoryService)
	reviewHandler := rest.NewReviewHandler(reviewService)
	sentimentHandler := rest.NewSentimentHandler(sentimentService)
	healthHandler := rest.NewHealthHandler(func() error { return database.Ping(db) }, cfg.App.Version)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = rest.JSONSerializer{}

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(metrics.Middleware())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	// Recommendation and summary requests rebuild their matrices on every
	// call, so they are rate limited per client.
	limiter := echomiddleware.RateLimiterWithConfig(echomiddleware.RateLimiterConfig{
		Store: echomiddleware.NewRateLimiterMemoryStoreWithConfig(echomiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(cfg.Server.RateLimitRPS),
			Burst:     max(1, int(cfg.Server.RateLimitRPS*2)),
			ExpiresIn: 3 * time.Minute,
		}),
	})

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupProductRoutes(api, productHandler, limiter)
	router.SetupCategoryRoutes(api, categoryHandler, productHandler)
	router.SetupReviewRoutes(api, reviewHandler, limiter)
	router.SetupSentimentRoutes(api, sentimentHandler)
	router.SetupOpsRoutes(e, healthHandler)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Server stopped")
}
