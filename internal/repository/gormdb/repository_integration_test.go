//go:build integration

package gormdb

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mySmartMarket/domain"
	"mySmartMarket/pkg/config"
	"mySmartMarket/pkg/database"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	os.Setenv("TESTCONTAINERS_RYUK_DISABLED", "true")

	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "market",
				"POSTGRES_PASSWORD": "market",
				"POSTGRES_DB":       "market",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		log.Fatalf("Failed to start postgres container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		log.Fatalf("Failed to get container host: %v", err)
	}
	if host == "" || host == "null" {
		host = "localhost"
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		log.Fatalf("Failed to get mapped port: %v", err)
	}

	testDB, err = database.Open(&config.Config{
		App: config.AppConfig{Environment: "test"},
		Database: config.DatabaseConfig{
			Driver:       config.DriverPostgres,
			Host:         host,
			Port:         port.Port(),
			User:         "market",
			Password:     "market",
			Name:         "market",
			SSLMode:      "disable",
			MaxOpenConns: 5,
			MaxIdleConns: 1,
		},
	})
	if err != nil {
		log.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := testDB.AutoMigrate(&domain.Category{}, &domain.Product{}, &domain.Review{}, &domain.SentimentPrediction{}); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}
	if err := seed(testDB); err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}

	code := m.Run()

	_ = container.Terminate(ctx)
	os.Exit(code)
}

func seed(db *gorm.DB) error {
	day := datatypes.Date(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&[]domain.Category{
			{ID: 1, Name: "Fashion"},
			{ID: 2, Name: "Elektronik"},
		}).Error; err != nil {
			return err
		}
		if err := tx.Create(&[]domain.Product{
			{ID: 10, Name: "Sepatu Lari Pria", CurrentPrice: 250000, CategoryID: 1, Stock: 4},
			{ID: 7, Name: "Kemeja Batik_Solo", CurrentPrice: 150000, CategoryID: 1, Stock: 9},
			{ID: 500, Name: "TV LG 32 inci", CurrentPrice: 2500000, CategoryID: 2, Stock: 1},
		}).Error; err != nil {
			return err
		}
		if err := tx.Create(&[]domain.Review{
			{ID: 1, Review: "Sepatu nyaman dipakai lari", Rating: 5, Tanggal: day, ProductID: 10},
			{ID: 2, Review: "Kainnya adem", Rating: 4, Tanggal: day, ProductID: 7},
			{ID: 3, Review: "Gambar jernih", Rating: 5, Tanggal: day, ProductID: 500},
		}).Error; err != nil {
			return err
		}
		return tx.Create(&domain.SentimentPrediction{
			ProductID: 10, SentimentPositive: 3, SentimentNegative: 1, SentimentNeutral: 2,
		}).Error
	})
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(testDB)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint64{7, 10, 500}, []uint64{all[0].ID, all[1].ID, all[2].ID})

	p, err := repo.FindByID(ctx, 500)
	require.NoError(t, err)
	assert.Equal(t, "TV LG 32 inci", p.Name)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	fashion, err := repo.FindByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, fashion, 2)

	found, err := repo.SearchByName(ctx, "SEPATU")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, uint64(10), found[0].ID)

	// "_" must match literally, not as a wildcard
	found, err = repo.SearchByName(ctx, "batik_")
	require.NoError(t, err)
	assert.Len(t, found, 1)
	found, err = repo.SearchByName(ctx, "k_meja")
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCategoryRepository(testDB)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	c, err := repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Elektronik", c.Name)

	_, err = repo.FindByID(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReviewRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(testDB)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	byProduct, err := repo.FindByProduct(ctx, 10)
	require.NoError(t, err)
	require.Len(t, byProduct, 1)
	assert.Equal(t, "Sepatu nyaman dipakai lari", byProduct[0].Review)

	byCategory, err := repo.FindByCategory(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, byCategory, 2)

	none, err := repo.FindByCategory(ctx, 42)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSentimentRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSentimentRepository(testDB)

	s, err := repo.FindByProduct(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, 6, s.Total())

	_, err = repo.FindByProduct(ctx, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRepositories_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewProductRepository(testDB).FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
