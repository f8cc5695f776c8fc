package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/davidbz/autocomplete/internal/domain"
	"github.com/davidbz/autocomplete/internal/observability"
)

// EnsureCompletionIndex creates index with field mapped as a completion field.
// It does nothing when the index already exists.
func (c *Client) EnsureCompletionIndex(ctx context.Context, index, field string) error {
	if c.closed.Load() {
		return fmt.Errorf("%w: client is closed", domain.ErrTransport)
	}

	res, err := c.es.Indices.Exists([]string{index}, c.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: cannot check if index exists: %w", domain.ErrTransport, err)
	}
	res.Body.Close()

	switch res.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
	default:
		return fmt.Errorf("%w: checking index %s: status %d", domain.ErrTransport, index, res.StatusCode)
	}

	mapping, err := json.Marshal(map[string]any{
		"mappings": map[string]any{
			"properties": map[string]any{
				field: map[string]string{"type": "completion"},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal mapping: %w", domain.ErrRequest, err)
	}

	res, err = c.es.Indices.Create(index,
		c.es.Indices.Create.WithContext(ctx),
		c.es.Indices.Create.WithBody(bytes.NewReader(mapping)),
	)
	if err != nil {
		return fmt.Errorf("%w: cannot create index: %w", domain.ErrTransport, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: cannot create index: %s", domain.ErrTransport, errorDetail(res))
	}

	observability.FromContext(ctx).Info("created completion index",
		observability.String("index", index),
		observability.String("field", field))

	return nil
}

// IndexSuggestion stores one document whose completion field holds inputs.
// The index is refreshed so the document is immediately suggestible.
func (c *Client) IndexSuggestion(ctx context.Context, index, field string, inputs []string) error {
	if c.closed.Load() {
		return fmt.Errorf("%w: client is closed", domain.ErrTransport)
	}

	if len(inputs) == 0 {
		return fmt.Errorf("%w: inputs cannot be empty", domain.ErrRequest)
	}

	doc, err := json.Marshal(map[string][]string{field: inputs})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal document: %w", domain.ErrRequest, err)
	}

	res, err := c.es.Index(index, bytes.NewReader(doc),
		c.es.Index.WithContext(ctx),
		c.es.Index.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("%w: cannot index document: %w", domain.ErrTransport, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: cannot index document: %s", domain.ErrTransport, errorDetail(res))
	}

	return nil
}
