// Package console implements the interactive completion loop and the
// plain-text rendering of suggestions.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/davidbz/autocomplete/internal/config"
	"github.com/davidbz/autocomplete/internal/domain"
	"github.com/davidbz/autocomplete/internal/observability"
)

const (
	prompt      = "enter keyword to complete:"
	exitCommand = "exit"
)

// Session reads prefixes from in and prints suggestions to out.
// It owns the service's connection and releases it when Run returns.
type Session struct {
	service *domain.AutocompleteService
	search  config.SearchConfig
	in      io.Reader
	out     io.Writer
}

// NewSession creates a console session.
func NewSession(service *domain.AutocompleteService, search *config.SearchConfig, in io.Reader, out io.Writer) *Session {
	return &Session{
		service: service,
		search:  *search,
		in:      in,
		out:     out,
	}
}

// Run loops until "exit" or end of input. Suggest failures are reported and
// the loop continues; input or output failures end it.
func (s *Session) Run(ctx context.Context) (err error) {
	ctx = observability.StartTrace(ctx)
	logger := observability.FromContext(ctx)

	defer func() {
		if closeErr := s.service.Close(ctx); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to release connection: %w", closeErr)
		}
	}()

	scanner := bufio.NewScanner(s.in)
	for {
		if _, err := io.WriteString(s.out, prompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("failed to read input: %w", err)
			}
			logger.Info("input closed")
			return nil
		}

		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == exitCommand {
			logger.Info("exit requested")
			return nil
		}

		if err := s.complete(observability.StartSpan(ctx), line); err != nil {
			return err
		}

		if err := writeSeparator(s.out); err != nil {
			return err
		}
	}
}

func (s *Session) complete(ctx context.Context, prefix string) error {
	response, err := s.service.Suggest(ctx, NewRequest(&s.search, prefix))
	if err != nil {
		observability.FromContext(ctx).Warn("suggest failed", observability.Error(err))
		if _, writeErr := fmt.Fprintf(s.out, "error: %v\n", err); writeErr != nil {
			return fmt.Errorf("failed to write error: %w", writeErr)
		}
		return nil
	}

	return Render(s.out, response)
}

// RunOnce completes a single prefix, prints it and releases the connection.
func RunOnce(
	ctx context.Context,
	service *domain.AutocompleteService,
	search *config.SearchConfig,
	prefix string,
	out io.Writer,
) (err error) {
	ctx = observability.StartSpan(ctx)

	defer func() {
		if closeErr := service.Close(ctx); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to release connection: %w", closeErr)
		}
	}()

	response, err := service.Suggest(ctx, NewRequest(search, prefix))
	if err != nil {
		return err
	}

	return Render(out, response)
}

// NewRequest builds a completion request for prefix using the configured target.
func NewRequest(search *config.SearchConfig, prefix string) *domain.CompletionRequest {
	req := domain.NewCompletionRequest(search.Index, search.Field, prefix)
	if search.SuggestionName != "" {
		req.SuggestionName = search.SuggestionName
	}
	req.SkipDuplicates = search.SkipDuplicates
	req.MaxResults = search.MaxResults
	return req
}
