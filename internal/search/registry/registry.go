package registry

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/davidbz/autocomplete/internal/domain"
)

// Registry implements the SuggesterRegistry interface.
type Registry struct {
	mu      sync.RWMutex
	openers map[string]domain.Opener
}

// NewRegistry creates a new backend registry.
func NewRegistry() *Registry {
	return &Registry{
		mu:      sync.RWMutex{},
		openers: make(map[string]domain.Opener),
	}
}

// Register adds a backend opener to the registry.
func (r *Registry) Register(_ context.Context, name string, open domain.Opener) error {
	if open == nil {
		return errors.New("opener cannot be nil")
	}

	if name == "" {
		return errors.New("backend name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.openers[name]; exists {
		return fmt.Errorf("backend %s already registered", name)
	}

	r.openers[name] = open

	return nil
}

// Open connects to the named backend.
func (r *Registry) Open(ctx context.Context, name string) (domain.Suggester, error) {
	if name == "" {
		return nil, errors.New("backend name cannot be empty")
	}

	r.mu.RLock()
	open, exists := r.openers[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("backend %s not found", name)
	}

	suggester, err := open(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open backend %s: %w", name, err)
	}

	return suggester, nil
}

// List returns all registered backend names, sorted.
func (r *Registry) List(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.openers))
	for name := range r.openers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}
