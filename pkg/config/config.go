// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines configuration structures for server, cache, search provider, and scan policy

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"localrank-app-api/core/domain"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Search contains search provider configuration
	Search SearchConfig

	// Scan contains scan TTL and pacing policy
	Scan ScanConfig

	// LogLevel is the minimum log level (debug/info/warn/error)
	LogLevel string

	// PortfolioPath is the path to the YAML file listing tracked
	// locations and keywords
	PortfolioPath string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// SQLiteConfig holds SQLite-specific configuration
type SQLiteConfig struct {
	// Path is the database file location
	Path string
}

// SearchConfig holds search provider configuration
type SearchConfig struct {
	// APIKey is the provider credential. When empty the application runs
	// in fallback mode and serves synthetic scan results.
	APIKey string

	// Language is the interface language parameter sent to the provider
	Language string

	// Country is the country bias parameter sent to the provider
	Country string
}

// ScanConfig holds scan caching and pacing policy
type ScanConfig struct {
	// TTL is how long a single-scan result stays cached
	TTL time.Duration

	// BatchTTL is how long a batch-scan result stays cached
	BatchTTL time.Duration

	// FailureTTL, when non-zero, overrides the TTL for synthetic
	// fallback results so a provider recovery is picked up sooner
	FailureTTL time.Duration

	// RequestInterval is the minimum spacing between provider calls
	RequestInterval time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8000"),
		},
		Cache: CacheConfig{
			Type: getEnvOrDefault("CACHE_TYPE", "memory"),
			Redis: RedisConfig{
				Address:  getEnvOrDefault("REDIS_ADDRESS", "localhost:6379"),
				Password: getEnvOrDefault("REDIS_PASSWORD", ""),
				DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			},
			SQLite: SQLiteConfig{
				Path: getEnvOrDefault("SQLITE_PATH", "scans.db"),
			},
		},
		Search: SearchConfig{
			APIKey:   getEnvOrDefault("SERPAPI_KEY", ""),
			Language: getEnvOrDefault("SEARCH_LANGUAGE", "zh-TW"),
			Country:  getEnvOrDefault("SEARCH_COUNTRY", "tw"),
		},
		Scan: ScanConfig{
			TTL:             getEnvAsDurationSeconds("SCAN_TTL", 24*time.Hour),
			BatchTTL:        getEnvAsDurationSeconds("BATCH_TTL", 7*24*time.Hour),
			FailureTTL:      getEnvAsDurationSeconds("FAILURE_TTL", 0),
			RequestInterval: getEnvAsDurationMillis("REQUEST_INTERVAL_MS", 100*time.Millisecond),
		},
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		PortfolioPath: getEnvOrDefault("PORTFOLIO_PATH", "portfolio.yaml"),
	}

	return cfg, nil
}

// Portfolio is the set of tracked locations and keywords, loaded once at
// startup from a YAML file.
type Portfolio struct {
	// Keywords are the search terms scanned against every location
	Keywords []domain.Keyword `yaml:"keywords"`

	// Locations are the tracked business locations
	Locations []domain.Location `yaml:"locations"`
}

// LoadPortfolio reads and validates the portfolio file at path.
func LoadPortfolio(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read portfolio file: %w", err)
	}

	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse portfolio file: %w", err)
	}

	if len(p.Locations) == 0 {
		return nil, errors.New("portfolio must list at least one location")
	}
	if len(p.Keywords) == 0 {
		return nil, errors.New("portfolio must list at least one keyword")
	}

	for i, loc := range p.Locations {
		if err := loc.Validate(); err != nil {
			return nil, fmt.Errorf("invalid location at index %d: %w", i, err)
		}
	}
	for i, kw := range p.Keywords {
		if err := kw.Validate(); err != nil {
			return nil, fmt.Errorf("invalid keyword at index %d: %w", i, err)
		}
	}

	return &p, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsDurationSeconds reads an integer number of seconds
func getEnvAsDurationSeconds(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

// getEnvAsDurationMillis reads an integer number of milliseconds
func getEnvAsDurationMillis(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if millis, err := strconv.Atoi(value); err == nil && millis >= 0 {
			return time.Duration(millis) * time.Millisecond
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	switch c.Cache.Type {
	case "memory", "redis", "sqlite":
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Cache.Type == "redis" && c.Cache.Redis.Address == "" {
		return errors.New("redis address cannot be empty when using redis cache")
	}

	if c.Cache.Type == "sqlite" && c.Cache.SQLite.Path == "" {
		return errors.New("sqlite path cannot be empty when using sqlite cache")
	}

	if c.Scan.TTL <= 0 || c.Scan.BatchTTL <= 0 {
		return errors.New("scan TTLs must be positive")
	}

	if c.PortfolioPath == "" {
		return errors.New("portfolio path cannot be empty")
	}

	return nil
}
