package domain

import (
	"context"
	"fmt"

	"github.com/davidbz/autocomplete/internal/observability"
)

// AutocompleteService validates completion requests and forwards them to a suggester.
type AutocompleteService struct {
	suggester Suggester
}

// NewAutocompleteService creates a new autocomplete service (DI constructor).
func NewAutocompleteService(suggester Suggester) *AutocompleteService {
	return &AutocompleteService{
		suggester: suggester,
	}
}

// Suggest runs a single completion request.
// The prefix is never validated here; an empty prefix is left to the endpoint.
func (s *AutocompleteService) Suggest(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error) {
	if err := validate(req); err != nil {
		return nil, err
	}

	if observability.GetRequestID(ctx) == "" {
		ctx = observability.WithRequestID(ctx, observability.GenerateRequestID())
	}
	ctx = observability.WithIndex(ctx, req.Index)
	ctx = observability.WithField(ctx, req.Field)

	logger := observability.FromContext(ctx)
	logger.Debug("completion request",
		observability.String("backend", s.suggester.Name()),
		observability.String("prefix", req.Prefix),
		observability.Bool("skip_duplicates", req.SkipDuplicates),
		observability.Int("max_results", req.MaxResults),
	)

	response, err := s.suggester.Suggest(ctx, req)
	if err != nil {
		logger.Warn("completion failed", observability.Error(err))
		return nil, fmt.Errorf("suggest %q: %w", req.Prefix, err)
	}

	logger.Debug("completion succeeded",
		observability.Int("entries", len(response.Entries)),
		observability.Int("options", len(response.Texts())),
	)

	return response, nil
}

// Close releases the underlying suggester.
func (s *AutocompleteService) Close(ctx context.Context) error {
	return s.suggester.Close(ctx)
}

func validate(req *CompletionRequest) error {
	if req == nil {
		return fmt.Errorf("%w: request cannot be nil", ErrRequest)
	}

	if req.Index == "" {
		return fmt.Errorf("%w: index cannot be empty", ErrRequest)
	}

	if req.Field == "" {
		return fmt.Errorf("%w: field cannot be empty", ErrRequest)
	}

	if req.MaxResults < 0 {
		return fmt.Errorf("%w: max results must be >= 0, got %d", ErrRequest, req.MaxResults)
	}

	return nil
}
