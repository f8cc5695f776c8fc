// Package memory provides an in-process completion suggester.
// It implements the domain.Suggester interface without making network calls,
// giving deterministic results for tests and offline runs.
package memory

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/davidbz/autocomplete/internal/domain"
	"github.com/davidbz/autocomplete/internal/observability"
)

const (
	backendName   = "memory"
	defaultWeight = 1
)

// Document is one indexed document with a completion field.
type Document struct {
	ID     string
	Inputs []string
	Weight int
}

type index struct {
	field string
	docs  []Document
}

// Suggester implements the domain.Suggester interface in memory.
type Suggester struct {
	mu      sync.RWMutex
	name    string
	indices map[string]*index
	closed  bool
}

// NewSuggester creates an empty in-memory suggester.
func NewSuggester() *Suggester {
	return &Suggester{
		name:    backendName,
		indices: make(map[string]*index),
	}
}

// CreateIndex registers an index whose field is completion-mapped.
func (s *Suggester) CreateIndex(name, field string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.indices[name]; !exists {
		s.indices[name] = &index{field: field}
	}
}

// Add stores a document in an existing index.
// A zero weight is stored as the default weight of 1.
func (s *Suggester) Add(name string, doc Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, exists := s.indices[name]
	if !exists {
		return fmt.Errorf("%w: index %s not found", domain.ErrTransport, name)
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.Weight == 0 {
		doc.Weight = defaultWeight
	}

	idx.docs = append(idx.docs, doc)
	return nil
}

// Name returns the backend identifier.
func (s *Suggester) Name() string {
	return s.name
}

// Close marks the suggester closed. A second call fails.
func (s *Suggester) Close(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return fmt.Errorf("%w: suggester already closed", domain.ErrConnection)
	}
	s.closed = true

	return nil
}

// Closed reports whether Close has been called.
func (s *Suggester) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.closed
}

// Suggest matches the prefix case-insensitively against every completion input.
func (s *Suggester) Suggest(ctx context.Context, req *domain.CompletionRequest) (*domain.CompletionResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request cannot be nil", domain.ErrRequest)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, fmt.Errorf("%w: suggester is closed", domain.ErrTransport)
	}

	idx, exists := s.indices[req.Index]
	if !exists {
		return nil, fmt.Errorf("%w: status 404: index %s not found", domain.ErrTransport, req.Index)
	}

	if idx.field != req.Field {
		return nil, fmt.Errorf("%w: status 400: field %s is not a completion field", domain.ErrTransport, req.Field)
	}

	logger := observability.FromContext(ctx)
	logger.Debug("matching prefix in memory", observability.Int("documents", len(idx.docs)))

	options, err := match(req.Index, idx, req)
	if err != nil {
		return nil, err
	}

	return &domain.CompletionResponse{
		Entries: []domain.CompletionEntry{
			{
				MatchedPrefix: req.Prefix,
				Offset:        0,
				Length:        len([]rune(req.Prefix)),
				Options:       options,
			},
		},
	}, nil
}

// match returns at most one option per document, highest weight first.
// Equal weights keep insertion order.
func match(name string, idx *index, req *domain.CompletionRequest) ([]domain.CompletionOption, error) {
	prefix := strings.ToLower(req.Prefix)
	options := make([]domain.CompletionOption, 0)
	seen := make(map[string]struct{})

	for _, doc := range idx.docs {
		text, ok := firstMatch(doc.Inputs, prefix)
		if !ok {
			continue
		}

		if req.SkipDuplicates {
			if _, dup := seen[text]; dup {
				continue
			}
			seen[text] = struct{}{}
		}

		source, err := json.Marshal(map[string][]string{idx.field: doc.Inputs})
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode source: %w", domain.ErrResponseParse, err)
		}

		options = append(options, domain.CompletionOption{
			Text:   text,
			Index:  name,
			ID:     doc.ID,
			Score:  float64(doc.Weight),
			Source: source,
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})

	if len(options) > req.MaxResults {
		options = options[:req.MaxResults]
	}

	return options, nil
}

func firstMatch(inputs []string, prefix string) (string, bool) {
	for _, input := range inputs {
		if strings.HasPrefix(strings.ToLower(input), prefix) {
			return input, true
		}
	}
	return "", false
}
