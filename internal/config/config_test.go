package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/autocomplete/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg, err := config.Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		// Verify defaults
		require.Equal(t, "elasticsearch", cfg.Search.Backend)
		require.Equal(t, "test2", cfg.Search.Index)
		require.Equal(t, "title", cfg.Search.Field)
		require.Empty(t, cfg.Search.SuggestionName)
		require.True(t, cfg.Search.SkipDuplicates)
		require.Equal(t, 10, cfg.Search.MaxResults)
		require.Equal(t, "localhost", cfg.Elasticsearch.Host)
		require.Equal(t, 9200, cfg.Elasticsearch.Port)
		require.Equal(t, "http", cfg.Elasticsearch.Scheme)
		require.Empty(t, cfg.Elasticsearch.Username)
		require.Equal(t, "warn", cfg.Log.Level)
		require.False(t, cfg.Log.Development)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("SEARCH_BACKEND", "memory")
		t.Setenv("SEARCH_INDEX", "products")
		t.Setenv("SEARCH_FIELD", "name")
		t.Setenv("SEARCH_SUGGESTION_NAME", "name_completion")
		t.Setenv("SEARCH_SKIP_DUPLICATES", "false")
		t.Setenv("SEARCH_MAX_RESULTS", "5")
		t.Setenv("ELASTICSEARCH_HOST", "es.internal")
		t.Setenv("ELASTICSEARCH_PORT", "9243")
		t.Setenv("ELASTICSEARCH_SCHEME", "https")
		t.Setenv("ELASTICSEARCH_USERNAME", "elastic")
		t.Setenv("ELASTICSEARCH_PASSWORD", "changeme")
		t.Setenv("LOG_LEVEL", "debug")

		cfg, err := config.Load()

		require.NoError(t, err)
		require.NotNil(t, cfg)

		// Verify loaded values
		require.Equal(t, "memory", cfg.Search.Backend)
		require.Equal(t, "products", cfg.Search.Index)
		require.Equal(t, "name", cfg.Search.Field)
		require.Equal(t, "name_completion", cfg.Search.SuggestionName)
		require.False(t, cfg.Search.SkipDuplicates)
		require.Equal(t, 5, cfg.Search.MaxResults)
		require.Equal(t, "es.internal", cfg.Elasticsearch.Host)
		require.Equal(t, 9243, cfg.Elasticsearch.Port)
		require.Equal(t, "https", cfg.Elasticsearch.Scheme)
		require.Equal(t, "elastic", cfg.Elasticsearch.Username)
		require.Equal(t, "changeme", cfg.Elasticsearch.Password)
		require.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("should fail on malformed values", func(t *testing.T) {
		t.Setenv("SEARCH_MAX_RESULTS", "many")

		cfg, err := config.Load()

		require.Error(t, err)
		require.Nil(t, cfg)
	})
}

func TestParseDependenciesConfig(t *testing.T) {
	t.Setenv("SEARCH_INDEX", "products")

	cfg, err := config.Load()
	require.NoError(t, err)

	deps := config.ParseDependenciesConfig(cfg)

	require.Same(t, &cfg.Search, deps.SearchConfig)
	require.Same(t, &cfg.Elasticsearch, deps.Config)
	require.Same(t, &cfg.Log, deps.LogConfig)
	require.Equal(t, "products", deps.SearchConfig.Index)
}
