package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/autocomplete/internal/config"
	"github.com/davidbz/autocomplete/internal/console"
	"github.com/davidbz/autocomplete/internal/domain"
	"github.com/davidbz/autocomplete/internal/search/memory"
)

// countingSuggester wraps the memory backend and counts Suggest calls.
type countingSuggester struct {
	*memory.Suggester
	suggests int
}

func (c *countingSuggester) Suggest(
	ctx context.Context,
	req *domain.CompletionRequest,
) (*domain.CompletionResponse, error) {
	c.suggests++
	return c.Suggester.Suggest(ctx, req)
}

func newSuggester(t *testing.T) *countingSuggester {
	t.Helper()

	suggester := memory.NewSuggester()
	require.NoError(t, suggester.SeedFixtures())
	return &countingSuggester{Suggester: suggester}
}

func searchConfig() *config.SearchConfig {
	return &config.SearchConfig{
		Backend:        "memory",
		Index:          "test2",
		Field:          "title",
		SkipDuplicates: true,
		MaxResults:     10,
	}
}

func TestSession_Run(t *testing.T) {
	t.Run("should print suggestions for each line", func(t *testing.T) {
		suggester := newSuggester(t)
		var out bytes.Buffer
		session := console.NewSession(domain.NewAutocompleteService(suggester), searchConfig(),
			strings.NewReader("s\nexit\n"), &out)

		err := session.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t,
			"enter keyword to complete:"+
				"matched: s\nresults:\n-->SK-II\n-->Sony\n-->switch\n"+
				"\n--------\n\n"+
				"enter keyword to complete:",
			out.String())
		require.Equal(t, 1, suggester.suggests)
		require.True(t, suggester.Closed())
	})

	t.Run("should release without suggesting on exit", func(t *testing.T) {
		suggester := newSuggester(t)
		var out bytes.Buffer
		session := console.NewSession(domain.NewAutocompleteService(suggester), searchConfig(),
			strings.NewReader("exit\ns\n"), &out)

		err := session.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, 0, suggester.suggests)
		require.True(t, suggester.Closed())
		require.Equal(t, "enter keyword to complete:", out.String())
	})

	t.Run("should release on end of input", func(t *testing.T) {
		suggester := newSuggester(t)
		var out bytes.Buffer
		session := console.NewSession(domain.NewAutocompleteService(suggester), searchConfig(),
			strings.NewReader("nin"), &out)

		err := session.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, 1, suggester.suggests)
		require.True(t, suggester.Closed())
		require.Contains(t, out.String(), "-->Nintendo\n")
	})

	t.Run("should forward input verbatim", func(t *testing.T) {
		suggester := newSuggester(t)
		var out bytes.Buffer
		session := console.NewSession(domain.NewAutocompleteService(suggester), searchConfig(),
			strings.NewReader("sk-\r\nexit\r\n"), &out)

		err := session.Run(context.Background())

		require.NoError(t, err)
		require.Contains(t, out.String(), "matched: sk-\nresults:\n-->SK-II\n")
	})

	t.Run("should report suggest errors and continue", func(t *testing.T) {
		suggester := newSuggester(t)
		cfg := searchConfig()
		cfg.Index = "missing"
		var out bytes.Buffer
		session := console.NewSession(domain.NewAutocompleteService(suggester), cfg,
			strings.NewReader("s\ns\nexit\n"), &out)

		err := session.Run(context.Background())

		require.NoError(t, err)
		require.Equal(t, 2, suggester.suggests)
		require.Equal(t, 2, strings.Count(out.String(), "error: "))
		require.Equal(t, 2, strings.Count(out.String(), "--------"))
		require.True(t, suggester.Closed())
	})

	t.Run("should report release failure", func(t *testing.T) {
		suggester := newSuggester(t)
		require.NoError(t, suggester.Close(context.Background()))
		var out bytes.Buffer
		session := console.NewSession(domain.NewAutocompleteService(suggester), searchConfig(),
			strings.NewReader("exit\n"), &out)

		err := session.Run(context.Background())

		require.ErrorIs(t, err, domain.ErrConnection)
	})

	t.Run("should stop on write failure and still release", func(t *testing.T) {
		suggester := newSuggester(t)
		session := console.NewSession(domain.NewAutocompleteService(suggester), searchConfig(),
			strings.NewReader("s\n"), failingWriter{})

		err := session.Run(context.Background())

		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to write prompt")
		require.True(t, suggester.Closed())
	})
}

func TestRunOnce(t *testing.T) {
	t.Run("should print one batch and release", func(t *testing.T) {
		suggester := newSuggester(t)
		var out bytes.Buffer

		err := console.RunOnce(context.Background(), domain.NewAutocompleteService(suggester), searchConfig(), "s", &out)

		require.NoError(t, err)
		require.Equal(t, "matched: s\nresults:\n-->SK-II\n-->Sony\n-->switch\n", out.String())
		require.True(t, suggester.Closed())
	})

	t.Run("should return suggest error and still release", func(t *testing.T) {
		suggester := newSuggester(t)
		cfg := searchConfig()
		cfg.MaxResults = -1
		var out bytes.Buffer

		err := console.RunOnce(context.Background(), domain.NewAutocompleteService(suggester), cfg, "s", &out)

		require.ErrorIs(t, err, domain.ErrRequest)
		require.Empty(t, out.String())
		require.True(t, suggester.Closed())
	})
}

func TestNewRequest(t *testing.T) {
	t.Run("should default suggestion name from field", func(t *testing.T) {
		req := console.NewRequest(searchConfig(), "s")

		require.Equal(t, "title_suggest", req.SuggestionName)
		require.True(t, req.SkipDuplicates)
		require.Equal(t, 10, req.MaxResults)
	})

	t.Run("should apply configured overrides", func(t *testing.T) {
		cfg := searchConfig()
		cfg.SuggestionName = "custom"
		cfg.SkipDuplicates = false
		cfg.MaxResults = 3

		req := console.NewRequest(cfg, "so")

		require.Equal(t, "custom", req.SuggestionName)
		require.False(t, req.SkipDuplicates)
		require.Equal(t, 3, req.MaxResults)
		require.Equal(t, "so", req.Prefix)
	})
}

func TestRender(t *testing.T) {
	t.Run("should render every entry", func(t *testing.T) {
		var out bytes.Buffer
		response := &domain.CompletionResponse{
			Entries: []domain.CompletionEntry{
				{MatchedPrefix: "s", Options: []domain.CompletionOption{{Text: "Sony"}}},
				{MatchedPrefix: "w", Options: nil},
			},
		}

		require.NoError(t, console.Render(&out, response))
		require.Equal(t, "matched: s\nresults:\n-->Sony\nmatched: w\nresults:\n", out.String())
	})

	t.Run("should ignore nil response", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, console.Render(&out, nil))
		require.Empty(t, out.String())
	})

	t.Run("should surface write errors", func(t *testing.T) {
		err := console.Render(failingWriter{}, &domain.CompletionResponse{
			Entries: []domain.CompletionEntry{{MatchedPrefix: "s"}},
		})

		require.Error(t, err)
	})
}

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("broken pipe")
}
