package domain

import "encoding/json"

const (
	// DefaultMaxResults is the completion size used when the caller does not override it.
	DefaultMaxResults = 10

	suggestionNameSuffix = "_suggest"
)

// CompletionRequest describes one completion-suggester query.
type CompletionRequest struct {
	Index          string `json:"index"`
	Field          string `json:"field"`
	SuggestionName string `json:"suggestion_name"`
	Prefix         string `json:"prefix"` // taken verbatim from user input
	SkipDuplicates bool   `json:"skip_duplicates"`
	MaxResults     int    `json:"max_results"`
}

// NewCompletionRequest builds a request with the default suggester options.
func NewCompletionRequest(index, field, prefix string) *CompletionRequest {
	return &CompletionRequest{
		Index:          index,
		Field:          field,
		SuggestionName: SuggestionNameFor(field),
		Prefix:         prefix,
		SkipDuplicates: true,
		MaxResults:     DefaultMaxResults,
	}
}

// SuggestionNameFor returns the suggestion key used when none is configured.
func SuggestionNameFor(field string) string {
	return field + suggestionNameSuffix
}

// CompletionResponse holds the entries returned for one request, in endpoint order.
type CompletionResponse struct {
	Entries []CompletionEntry `json:"entries"`
}

// CompletionEntry is the result for one analyzed piece of the prefix.
type CompletionEntry struct {
	MatchedPrefix string             `json:"matched_prefix"`
	Offset        int                `json:"offset"`
	Length        int                `json:"length"`
	Options       []CompletionOption `json:"options"`
}

// CompletionOption is a single ranked completion candidate.
type CompletionOption struct {
	Text   string          `json:"text"`
	Index  string          `json:"index,omitempty"`
	ID     string          `json:"id,omitempty"`
	Score  float64         `json:"score"`
	Source json.RawMessage `json:"source,omitempty"` // opaque source document
}

// Texts returns the suggested texts of every entry, in order.
func (r *CompletionResponse) Texts() []string {
	if r == nil {
		return nil
	}

	texts := make([]string, 0)
	for _, entry := range r.Entries {
		for _, option := range entry.Options {
			texts = append(texts, option.Text)
		}
	}
	return texts
}
