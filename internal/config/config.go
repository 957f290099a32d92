package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Search   SearchConfig
	Logging  LoggingConfig

	// Warnings lists values that could not be parsed and fell back to defaults.
	// Load runs before the logger exists, so the caller logs them.
	Warnings []string
}

// DatabaseConfig holds catalog storage configuration
type DatabaseConfig struct {
	Driver             string // postgres or sqlite3
	DSN                string // full connection string, takes precedence
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	MaxConnections     int
	MaxIdleConnections int
	ArticlesTable      string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins []string
}

// SearchConfig holds paging limits and candidate pool sizes
type SearchConfig struct {
	DefaultPageSize     int
	MaxPageSize         int
	MaxCandidates       int
	CandidateMultiplier int
	AnalyticsCandidates int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	env := &envReader{}
	cfg := &Config{
		Database: DatabaseConfig{
			Driver:             getEnv("DB_DRIVER", "postgres"),
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               env.getInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "shopsight"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			MaxConnections:     env.getInt("DB_MAX_CONNECTIONS", 25),
			MaxIdleConnections: env.getInt("DB_MAX_IDLE_CONNECTIONS", 5),
			ArticlesTable:      getEnv("ARTICLES_TABLE", "articles"),
		},
		Server: ServerConfig{
			Port:           env.getInt("SERVER_PORT", 8080),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		},
		Search: SearchConfig{
			DefaultPageSize:     env.getInt("SEARCH_DEFAULT_PAGE_SIZE", 20),
			MaxPageSize:         env.getInt("SEARCH_MAX_PAGE_SIZE", 100),
			MaxCandidates:       env.getInt("SEARCH_MAX_CANDIDATES", 500),
			CandidateMultiplier: env.getInt("SEARCH_CANDIDATE_MULTIPLIER", 25),
			AnalyticsCandidates: env.getInt("SEARCH_ANALYTICS_CANDIDATES", 1000),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	cfg.Warnings = env.warnings

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot run with
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite3":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Database.Driver == "sqlite3" && c.Database.DSN == "" {
		return fmt.Errorf("DATABASE_URL is required for the sqlite3 driver")
	}
	if c.Search.DefaultPageSize <= 0 || c.Search.MaxPageSize <= 0 {
		return fmt.Errorf("page sizes must be positive")
	}
	if c.Search.DefaultPageSize > c.Search.MaxPageSize {
		return fmt.Errorf("SEARCH_DEFAULT_PAGE_SIZE %d exceeds SEARCH_MAX_PAGE_SIZE %d",
			c.Search.DefaultPageSize, c.Search.MaxPageSize)
	}
	return nil
}

// GetDSN returns the catalog connection string
func (c *Config) GetDSN() string {
	if c.Database.DSN != "" {
		return c.Database.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Database,
		c.Database.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// envReader collects a warning for every value it cannot parse
type envReader struct {
	warnings []string
}

func (r *envReader) getInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		r.warnings = append(r.warnings,
			fmt.Sprintf("invalid integer value %q for %s, using default %d", valueStr, key, defaultValue))
		return defaultValue
	}
	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var values []string
	for _, v := range strings.Split(valueStr, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
