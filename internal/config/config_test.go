package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"palette/internal/search"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Empty(t, cfg.Database.Primary.DSN)
	assert.Equal(t, 10, cfg.Search.DefaultLimit)
	assert.Equal(t, "none", cfg.Search.EmptyQuery)
	assert.Equal(t, search.DefaultScriptExcerptLength, cfg.Search.ScriptExcerptLength)
	assert.Equal(t, search.DefaultWeights(), cfg.Search.Weights)
	assert.Equal(t, "/blog", cfg.Search.Routes.ArticlePath)
	assert.Equal(t, "/calendar", cfg.Search.Routes.EventPath)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.ListenAddr())
	assert.Equal(t, map[string]int{"history": 1}, cfg.Worker.Queues)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := `
search:
  default_limit: 25
  empty_query: all
  weights:
    title_exact: 30
redis:
  address: localhost:6379
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644))
	t.Setenv("PALETTE_SERVER_PORT", "9090")
	t.Setenv("PALETTE_LOG_FORMAT", "json")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 25, cfg.Search.DefaultLimit)
	assert.Equal(t, "all", cfg.Search.EmptyQuery)
	assert.Equal(t, 30.0, cfg.Search.Weights.TitleExact)
	assert.Equal(t, 10.0, cfg.Search.Weights.TitleSubstring)
	assert.Equal(t, "localhost:6379", cfg.Redis.Address)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.False(t, cfg.QueuedHistory())
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("search: [unclosed"), 0o644))

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"bad empty query policy", func(c *Config) { c.Search.EmptyQuery = "some" }, "EmptyQuery"},
		{"zero limit", func(c *Config) { c.Search.DefaultLimit = 0 }, "DefaultLimit"},
		{"negative weight", func(c *Config) { c.Search.Weights.TagExact = -1 }, "TagExact"},
		{"relative route", func(c *Config) { c.Search.Routes.ArticlePath = "blog" }, "ArticlePath"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "Level"},
		{"no queues", func(c *Config) { c.Worker.Queues = nil }, "worker.queues"},
		{"zero priority", func(c *Config) { c.Worker.Queues = map[string]int{"history": 0} }, "history"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadConfig(t.TempDir())
			require.NoError(t, err)
			tt.mutate(cfg)

			err = cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWorkerBackends(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)
	assert.False(t, cfg.QueuedHistory())
	assert.ErrorContains(t, cfg.RequireWorkerBackends(), "redis.address")

	cfg.Redis.Address = "localhost:6379"
	assert.False(t, cfg.QueuedHistory())
	assert.ErrorContains(t, cfg.RequireWorkerBackends(), "database.primary.dsn")

	cfg.Database.Primary.DSN = "postgres://palette@localhost/palette"
	assert.True(t, cfg.QueuedHistory())
	assert.NoError(t, cfg.RequireWorkerBackends())
}
