package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Recommend RecommendConfig
	Summary   SummaryConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	LogLevel    string
	LogFile     string
	LexiconPath string
}

type ServerConfig struct {
	Port             string
	CORSAllowOrigins []string
	RateLimitRPS     float64
}

type DatabaseConfig struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type RecommendConfig struct {
	DefaultK int
	MaxK     int
}

type SummaryConfig struct {
	TopK      int
	Threshold float64
	MaxUnits  int
	Separator string
}

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds and validates a Config from the process environment only.
func FromEnv() (*Config, error) {
	var errs []error

	driver := strings.ToLower(getEnv("DB_DRIVER", DriverPostgres))
	defaultPort := "5432"
	if driver == DriverMySQL {
		defaultPort = "3306"
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "mySmartMarket"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			LogFile:     getEnv("LOG_FILE", ""),
			LexiconPath: getEnv("LEXICON_PATH", ""),
		},
		Server: ServerConfig{
			Port:             getEnv("PORT", "8080"),
			CORSAllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:8080")),
			RateLimitRPS:     getFloat("RATE_LIMIT_RPS", 20, &errs),
		},
		Database: DatabaseConfig{
			Driver:       driver,
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", defaultPort),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Name:         getEnv("DB_NAME", "smart_market"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getInt("DB_MAX_OPEN_CONNS", 25, &errs),
			MaxIdleConns: getInt("DB_MAX_IDLE_CONNS", 5, &errs),
		},
		Recommend: RecommendConfig{
			DefaultK: getInt("RECOMMEND_DEFAULT_K", 5, &errs),
			MaxK:     getInt("RECOMMEND_MAX_K", 50, &errs),
		},
		Summary: SummaryConfig{
			TopK:      getInt("SUMMARY_TOP_K", 3, &errs),
			Threshold: getFloat("SUMMARY_THRESHOLD", 0.1, &errs),
			MaxUnits:  getInt("SUMMARY_MAX_UNITS", 50, &errs),
			Separator: getEnv("SUMMARY_SEPARATOR", ","),
		},
	}

	if driver != DriverPostgres && driver != DriverMySQL {
		errs = append(errs, fmt.Errorf("unsupported database driver %q", driver))
	}

	if cfg.App.Environment == "production" && cfg.Database.Password == "" {
		errs = append(errs, errors.New("missing database password"))
	}

	if cfg.Summary.Threshold < 0 || cfg.Summary.Threshold >= 1 {
		errs = append(errs, fmt.Errorf("summary threshold must be in [0,1), got %v", cfg.Summary.Threshold))
	}

	if cfg.Recommend.DefaultK <= 0 || cfg.Recommend.MaxK < cfg.Recommend.DefaultK {
		errs = append(errs, errors.New("recommend k must satisfy 0 < default <= max"))
	}

	if cfg.Summary.TopK <= 0 || cfg.Summary.MaxUnits <= 0 {
		errs = append(errs, errors.New("summary top k and max units must be positive"))
	}

	if cfg.Server.RateLimitRPS <= 0 {
		errs = append(errs, errors.New("rate limit must be positive"))
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func getInt(key string, defaultVal int, errs *[]error) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be an integer: %w", key, err))
		return defaultVal
	}

	return n
}

func getFloat(key string, defaultVal float64, errs *[]error) float64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}

	f, err := strconv.ParseFloat(val, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be a number: %w", key, err))
		return defaultVal
	}

	return f
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
