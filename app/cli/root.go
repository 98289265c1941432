package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"mySmartMarket/business/product"
	"mySmartMarket/business/recommender"
	"mySmartMarket/business/review"
	"mySmartMarket/business/summarizer"
	"mySmartMarket/business/textnorm"
	"mySmartMarket/domain"
	"mySmartMarket/internal/repository/gormdb"
	"mySmartMarket/pkg/config"
	"mySmartMarket/pkg/database"
	"mySmartMarket/pkg/logger"
)

var (
	// Version is set at build time.
	Version = "1.0.0"

	// Global flags
	useStemmer bool

	cfg        *config.Config
	normalizer *textnorm.Normalizer
	db         *gorm.DB
)

var rootCmd = &cobra.Command{
	Use:   "smartmarket",
	Short: "Offline tools for the product recommender and review summarizer",
	Long: `smartmarket runs the text normalizer, the content-based recommender and the
LexRank review summarizer from the command line, against the configured
database or against local input.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		// stdout carries command output
		logger.SetOutput(os.Stderr, cfg.App.LogLevel)

		lexicon, err := textnorm.LoadLexiconFile(cfg.App.LexiconPath)
		if err != nil {
			return fmt.Errorf("load lexicon: %w", err)
		}

		var stemmer textnorm.Stemmer
		if useStemmer {
			stemmer = textnorm.NewSastrawiStemmer()
		}
		normalizer = textnorm.NewNormalizer(lexicon, stemmer)

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db == nil {
			return
		}
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", err)
			}
		}
		db = nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&useStemmer, "stem", true, "apply the Indonesian stemmer")

	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(summarizeCmd)
}

// openDB connects on first use so commands working on local input never
// need a database.
func openDB() (*gorm.DB, error) {
	if db != nil {
		return db, nil
	}

	conn, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	db = conn

	return db, nil
}

func newSummarizer() *summarizer.Summarizer {
	sc := summarizer.DefaultConfig()
	sc.TopK = cfg.Summary.TopK
	sc.Threshold = cfg.Summary.Threshold
	sc.MaxUnits = cfg.Summary.MaxUnits
	sc.Separator = cfg.Summary.Separator

	return summarizer.New(sc, normalizer)
}

type catalogService interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetRecommendations(ctx context.Context, productID uint64, k int) ([]domain.RecommendedProduct, error)
}

type summaryService interface {
	SummarizeProduct(ctx context.Context, productID uint64) (domain.ReviewSummary, error)
	SummarizeCategory(ctx context.Context, categoryID uint64) (domain.ReviewSummary, error)
}

func productService() (catalogService, error) {
	conn, err := openDB()
	if err != nil {
		return nil, err
	}

	return product.NewProductService(
		gormdb.NewProductRepository(conn),
		recommender.New(normalizer),
		cfg.Recommend.DefaultK,
		cfg.Recommend.MaxK,
	), nil
}

func reviewService() (summaryService, error) {
	conn, err := openDB()
	if err != nil {
		return nil, err
	}

	return review.NewReviewService(gormdb.NewReviewRepository(conn), newSummarizer()), nil
}
