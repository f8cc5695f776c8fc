package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/davidbz/autocomplete/internal/config"
	"github.com/davidbz/autocomplete/internal/console"
	"github.com/davidbz/autocomplete/internal/domain"
	"github.com/davidbz/autocomplete/internal/fixtures"
	"github.com/davidbz/autocomplete/internal/observability"
	"github.com/davidbz/autocomplete/internal/search/elasticsearch"
)

// errSeedBackend is returned when seeding is requested for a backend without storage.
var errSeedBackend = errors.New("seed requires the elasticsearch backend")

func newRootCommand(container *dig.Container, in io.Reader, out io.Writer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "autocomplete",
		Short:         "Interactive completion suggester client",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withService(cmd.Context(), container,
				func(ctx context.Context, service *domain.AutocompleteService, search *config.SearchConfig) error {
					return console.NewSession(service, search, in, out).Run(ctx)
				})
		},
	}

	queryCmd := &cobra.Command{
		Use:   "query <prefix>",
		Short: "Complete a single prefix and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withService(cmd.Context(), container,
				func(ctx context.Context, service *domain.AutocompleteService, search *config.SearchConfig) error {
					return console.RunOnce(ctx, service, search, args[0], out)
				})
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the completion index and load the sample documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return container.Invoke(func(
				_ *zap.Logger,
				search *config.SearchConfig,
				esConfig *elasticsearch.Config,
			) error {
				return seed(cmd.Context(), search, esConfig, out)
			})
		},
	}

	backendsCmd := &cobra.Command{
		Use:   "backends",
		Short: "List available suggester backends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return container.Invoke(func(reg domain.SuggesterRegistry) error {
				names, err := reg.List(cmd.Context())
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(out, name)
				}
				return nil
			})
		},
	}

	rootCmd.AddCommand(queryCmd, seedCmd, backendsCmd)

	return rootCmd
}

// withService opens the configured backend and hands it to fn.
// fn takes ownership of the connection.
func withService(
	ctx context.Context,
	container *dig.Container,
	fn func(ctx context.Context, service *domain.AutocompleteService, search *config.SearchConfig) error,
) error {
	return container.Invoke(func(
		logger *zap.Logger,
		reg domain.SuggesterRegistry,
		search *config.SearchConfig,
	) error {
		defer func() { _ = logger.Sync() }()

		suggester, err := reg.Open(ctx, search.Backend)
		if err != nil {
			return err
		}

		return fn(ctx, domain.NewAutocompleteService(suggester), search)
	})
}

func seed(ctx context.Context, search *config.SearchConfig, esConfig *elasticsearch.Config, out io.Writer) (err error) {
	if search.Backend != backendElasticsearch {
		return fmt.Errorf("%w, got %s", errSeedBackend, search.Backend)
	}

	client, err := elasticsearch.Connect(ctx, *esConfig)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := client.Close(ctx); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if err := client.EnsureCompletionIndex(ctx, search.Index, search.Field); err != nil {
		return err
	}

	for _, inputs := range fixtures.Inputs() {
		if err := client.IndexSuggestion(ctx, search.Index, search.Field, inputs); err != nil {
			return err
		}
	}

	observability.FromContext(ctx).Info("seeded sample documents",
		observability.String("index", search.Index),
		observability.Int("documents", len(fixtures.Inputs())))
	fmt.Fprintf(out, "seeded %d documents into %s\n", len(fixtures.Inputs()), search.Index)

	return nil
}
