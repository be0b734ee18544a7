package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/joho/godotenv"
)

const (
	defaultEnv                    = "development"
	defaultLogLevel               = "info"
	defaultHTTPHost               = "0.0.0.0"
	defaultHTTPPort               = 8080
	defaultRedisDB                = 0
	defaultCacheTTLSeconds        = 300
	defaultMaxYears               = 12
	defaultYearsLimit             = 100
	defaultStartCash              = 10000
	defaultCurrency               = "PLN"
	defaultRateLimitCapacity      = 60
	defaultRateLimitWindowSeconds = 60
)

// Config keeps the runtime configuration for the service.
type Config struct {
	Env        string
	LogLevel   string
	HTTP       HTTPConfig
	Redis      RedisConfig
	Cache      CacheConfig
	Catalog    CatalogConfig
	Projection ProjectionConfig
	RateLimit  RateLimitConfig
}

// HTTPConfig holds HTTP server related settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr renders the listen address in host:port form.
func (h HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// RedisConfig stores Redis connection parameters. An empty Addr selects the in-memory cache.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// CacheConfig stores cache behavior.
type CacheConfig struct {
	TTLSeconds int
}

// CatalogConfig points at an optional YAML catalog replacing the embedded seed.
type CatalogConfig struct {
	File string
}

// ProjectionConfig stores the defaults offered to clients.
type ProjectionConfig struct {
	MaxYears   int
	YearsLimit int
	StartCash  int
	Currency   string
}

// RateLimitConfig configures the per-client token bucket.
type RateLimitConfig struct {
	Capacity      int
	WindowSeconds int
}

// Load builds Config from environment variables, reading .env first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	port, err := getInt("HTTP_PORT", defaultHTTPPort)
	if err != nil {
		return nil, fmt.Errorf("parse HTTP_PORT: %w", err)
	}

	redisDB, err := getInt("REDIS_DB", defaultRedisDB)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_DB: %w", err)
	}

	cacheTTL, err := getInt("CACHE_TTL_SECONDS", defaultCacheTTLSeconds)
	if err != nil {
		return nil, fmt.Errorf("parse CACHE_TTL_SECONDS: %w", err)
	}

	maxYears, err := getInt("PROJECTION_MAX_YEARS", defaultMaxYears)
	if err != nil {
		return nil, fmt.Errorf("parse PROJECTION_MAX_YEARS: %w", err)
	}

	yearsLimit, err := getInt("PROJECTION_YEARS_LIMIT", defaultYearsLimit)
	if err != nil {
		return nil, fmt.Errorf("parse PROJECTION_YEARS_LIMIT: %w", err)
	}
	if maxYears < 1 || maxYears > yearsLimit {
		return nil, fmt.Errorf("PROJECTION_MAX_YEARS must be within 1..%d, got %d", yearsLimit, maxYears)
	}

	startCash, err := getInt("PROJECTION_START_CASH", defaultStartCash)
	if err != nil {
		return nil, fmt.Errorf("parse PROJECTION_START_CASH: %w", err)
	}
	if startCash < 0 {
		return nil, fmt.Errorf("PROJECTION_START_CASH must not be negative, got %d", startCash)
	}

	currency := strings.ToUpper(getString("CURRENCY", defaultCurrency))
	if money.GetCurrency(currency) == nil {
		return nil, fmt.Errorf("CURRENCY %q is not a known currency code", currency)
	}

	rateCapacity, err := getInt("RATE_LIMIT_CAPACITY", defaultRateLimitCapacity)
	if err != nil {
		return nil, fmt.Errorf("parse RATE_LIMIT_CAPACITY: %w", err)
	}

	rateWindow, err := getInt("RATE_LIMIT_WINDOW_SECONDS", defaultRateLimitWindowSeconds)
	if err != nil {
		return nil, fmt.Errorf("parse RATE_LIMIT_WINDOW_SECONDS: %w", err)
	}

	return &Config{
		Env:      getString("APP_ENV", defaultEnv),
		LogLevel: getString("LOG_LEVEL", defaultLogLevel),
		HTTP:     HTTPConfig{Host: getString("HTTP_HOST", defaultHTTPHost), Port: port},
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Cache: CacheConfig{
			TTLSeconds: cacheTTL,
		},
		Catalog: CatalogConfig{
			File: os.Getenv("CATALOG_FILE"),
		},
		Projection: ProjectionConfig{
			MaxYears:   maxYears,
			YearsLimit: yearsLimit,
			StartCash:  startCash,
			Currency:   currency,
		},
		RateLimit: RateLimitConfig{
			Capacity:      rateCapacity,
			WindowSeconds: rateWindow,
		},
	}, nil
}

func getString(key, fallback string) string {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	return value
}

func getInt(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("convert %s value %q to int: %w", key, value, err)
	}
	return parsed, nil
}
