package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_DRIVER", "DATABASE_URL", "PG_DSN", "SEARCH_DEFAULT_PAGE_SIZE", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "articles", cfg.Database.ArticlesTable)
	assert.Equal(t, 20, cfg.Search.DefaultPageSize)
	assert.Equal(t, 100, cfg.Search.MaxPageSize)
	assert.Equal(t, 500, cfg.Search.MaxCandidates)
	assert.Equal(t, 25, cfg.Search.CandidateMultiplier)
	assert.Equal(t, 1000, cfg.Search.AnalyticsCandidates)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Empty(t, cfg.Warnings)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DATABASE_URL", "file:catalog.db")
	t.Setenv("SEARCH_MAX_CANDIDATES", "300")
	t.Setenv("SEARCH_CANDIDATE_MULTIPLIER", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, "file:catalog.db", cfg.GetDSN())
	assert.Equal(t, 300, cfg.Search.MaxCandidates)
	assert.Equal(t, 25, cfg.Search.CandidateMultiplier, "invalid values fall back to the default")
	require.Len(t, cfg.Warnings, 1)
	assert.Contains(t, cfg.Warnings[0], "SEARCH_CANDIDATE_MULTIPLIER")
	assert.Contains(t, cfg.Warnings[0], `"not-a-number"`)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Database: DatabaseConfig{Driver: "postgres"},
			Search:   SearchConfig{DefaultPageSize: 20, MaxPageSize: 100},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "Valid", mutate: func(c *Config) {}},
		{name: "Unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: true},
		{name: "Sqlite without DSN", mutate: func(c *Config) { c.Database.Driver = "sqlite3" }, wantErr: true},
		{name: "Default above max", mutate: func(c *Config) { c.Search.DefaultPageSize = 200 }, wantErr: true},
		{name: "Zero max", mutate: func(c *Config) { c.Search.MaxPageSize = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestConfig_GetDSN_Assembled(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: 5433, User: "shop", Password: "secret", Database: "catalog", SSLMode: "require",
	}}
	assert.Equal(t, "host=db port=5433 user=shop password=secret dbname=catalog sslmode=require", cfg.GetDSN())
}
