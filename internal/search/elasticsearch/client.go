// Package elasticsearch implements the completion suggester client on top of the
// official go-elasticsearch SDK. It implements the domain.Suggester interface and
// converts between the _search wire format and the domain types.
package elasticsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/elastic/go-elasticsearch/v9/esapi"

	"github.com/davidbz/autocomplete/internal/domain"
	"github.com/davidbz/autocomplete/internal/observability"
)

const (
	backendName = "elasticsearch"

	// maxErrorBody bounds how much of an error response is kept in the error message.
	maxErrorBody = 4096
)

// Client implements the domain.Suggester interface for Elasticsearch.
// It is used by one caller at a time; Close must be called exactly once.
type Client struct {
	es        *elasticsearch.Client
	transport *http.Transport
	address   string
	closed    atomic.Bool
}

// Connect creates a client for the configured endpoint and verifies it answers.
func Connect(ctx context.Context, config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrConnection, err)
	}

	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected default transport", domain.ErrConnection)
	}
	transport = transport.Clone()

	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{config.Address()},
		Username:  config.Username,
		Password:  config.Password,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create client: %w", domain.ErrConnection, err)
	}

	client := &Client{
		es:        es,
		transport: transport,
		address:   config.Address(),
	}

	if err := client.ping(ctx); err != nil {
		transport.CloseIdleConnections()
		return nil, err
	}

	observability.FromContext(ctx).Info("connected to elasticsearch",
		observability.String("address", client.address))

	return client, nil
}

func (c *Client) ping(ctx context.Context) error {
	res, err := c.es.Info(c.es.Info.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("%w: %s unreachable: %w", domain.ErrConnection, c.address, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("%w: %s refused handshake: %s", domain.ErrConnection, c.address, res.Status())
	}

	return nil
}

// Name returns the backend identifier.
func (c *Client) Name() string {
	return backendName
}

// Close releases the pooled connections. A second call fails.
func (c *Client) Close(ctx context.Context) error {
	if !c.closed.CompareAndSwap(false, true) {
		return fmt.Errorf("%w: client already closed", domain.ErrConnection)
	}

	c.transport.CloseIdleConnections()
	observability.FromContext(ctx).Info("disconnected from elasticsearch",
		observability.String("address", c.address))

	return nil
}

// Suggest sends a completion suggester query and decodes the named suggestion.
func (c *Client) Suggest(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request cannot be nil", domain.ErrRequest)
	}

	if c.closed.Load() {
		return nil, fmt.Errorf("%w: client is closed", domain.ErrTransport)
	}

	body, err := json.Marshal(newSearchRequest(req))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %w", domain.ErrRequest, err)
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(req.Index),
		c.es.Search.WithBody(bytes.NewReader(body)),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: search failed: %w", domain.ErrTransport, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("%w: %s", domain.ErrTransport, errorDetail(res))
	}

	return decodeSuggestion(res.Body, suggestionName(req))
}

func decodeSuggestion(body io.Reader, name string) (*domain.CompletionResponse, error) {
	var payload searchResponse
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", domain.ErrResponseParse, err)
	}

	if payload.Suggest == nil {
		return nil, fmt.Errorf("%w: response has no suggest section", domain.ErrResponseParse)
	}

	entries, ok := (*payload.Suggest)[name]
	if !ok {
		return nil, fmt.Errorf("%w: suggestion %q not found in response", domain.ErrResponseParse, name)
	}

	return toDomain(entries), nil
}

func errorDetail(res *esapi.Response) string {
	detail, err := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
	if err != nil {
		return fmt.Sprintf("status %d", res.StatusCode)
	}
	return fmt.Sprintf("status %d: %s", res.StatusCode, bytes.TrimSpace(detail))
}
