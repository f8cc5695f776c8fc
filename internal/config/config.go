package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/autocomplete/internal/observability"
	"github.com/davidbz/autocomplete/internal/search/elasticsearch"
)

// Config represents the autocomplete client configuration.
type Config struct {
	Search        SearchConfig
	Elasticsearch elasticsearch.Config
	Log           observability.LogConfig
}

// SearchConfig selects the backend and the suggester target.
type SearchConfig struct {
	Backend        string `env:"SEARCH_BACKEND"         envDefault:"elasticsearch"`
	Index          string `env:"SEARCH_INDEX"           envDefault:"test2"`
	Field          string `env:"SEARCH_FIELD"           envDefault:"title"`
	SuggestionName string `env:"SEARCH_SUGGESTION_NAME"`
	SkipDuplicates bool   `env:"SEARCH_SKIP_DUPLICATES" envDefault:"true"`
	MaxResults     int    `env:"SEARCH_MAX_RESULTS"     envDefault:"10"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out
	*SearchConfig
	*elasticsearch.Config
	*observability.LogConfig
}

// Load loads environment files and parses configuration.
func Load() (*Config, error) {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		dig.Out{},
		&cfg.Search,
		&cfg.Elasticsearch,
		&cfg.Log,
	}
}
