package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/dig"

	"github.com/davidbz/autocomplete/internal/config"
	"github.com/davidbz/autocomplete/internal/domain"
	"github.com/davidbz/autocomplete/internal/observability"
	"github.com/davidbz/autocomplete/internal/search/elasticsearch"
	"github.com/davidbz/autocomplete/internal/search/memory"
	"github.com/davidbz/autocomplete/internal/search/registry"
)

const (
	backendElasticsearch = "elasticsearch"
	backendMemory        = "memory"
)

func buildContainer() *dig.Container {
	container := dig.New()

	// Configuration
	if err := container.Provide(config.Load); err != nil {
		log.Fatalf("Failed to provide config: %v", err)
	}
	if err := container.Provide(config.ParseDependenciesConfig); err != nil {
		log.Fatalf("Failed to provide config dependencies: %v", err)
	}

	// Observability
	if err := container.Provide(observability.InitLogger); err != nil {
		log.Fatalf("Failed to provide logger: %v", err)
	}

	// Backend Registry
	if err := container.Provide(newBackendRegistry); err != nil {
		log.Fatalf("Failed to provide registry: %v", err)
	}

	return container
}

// newBackendRegistry registers every suggester backend; none is opened yet.
func newBackendRegistry(esConfig *elasticsearch.Config) (domain.SuggesterRegistry, error) {
	reg := registry.NewRegistry()
	ctx := context.Background()

	if err := reg.Register(ctx, backendElasticsearch, func(ctx context.Context) (domain.Suggester, error) {
		client, err := elasticsearch.Connect(ctx, *esConfig)
		if err != nil {
			return nil, err
		}
		return client, nil
	}); err != nil {
		return nil, fmt.Errorf("failed to register elasticsearch backend: %w", err)
	}

	if err := reg.Register(ctx, backendMemory, func(_ context.Context) (domain.Suggester, error) {
		suggester := memory.NewSuggester()
		if err := suggester.SeedFixtures(); err != nil {
			return nil, err
		}
		return suggester, nil
	}); err != nil {
		return nil, fmt.Errorf("failed to register memory backend: %w", err)
	}

	return reg, nil
}
