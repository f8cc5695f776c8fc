package domain

import "context"

// Suggester is an open connection to a completion-suggester endpoint.
type Suggester interface {
	// Suggest executes one completion request and blocks until the endpoint answers.
	Suggest(ctx context.Context, req *CompletionRequest) (*CompletionResponse, error)

	// Close releases the connection. It must be called exactly once.
	Close(ctx context.Context) error

	// Name returns the backend identifier.
	Name() string
}

// Opener establishes a connection to one suggester backend.
type Opener func(ctx context.Context) (Suggester, error)

// SuggesterRegistry manages the available suggester backends.
type SuggesterRegistry interface {
	// Register adds a backend opener under the given name.
	Register(ctx context.Context, name string, open Opener) error

	// Open connects to the named backend.
	Open(ctx context.Context, name string) (Suggester, error)

	// List returns the names of all registered backends.
	List(ctx context.Context) ([]string, error)
}
