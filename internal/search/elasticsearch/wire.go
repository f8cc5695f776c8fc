package elasticsearch

import (
	"encoding/json"

	"github.com/davidbz/autocomplete/internal/domain"
)

// Completion suggester request body.
type searchRequest struct {
	Suggest map[string]suggestion `json:"suggest"`
}

type suggestion struct {
	Text       string     `json:"text"`
	Completion completion `json:"completion"`
}

type completion struct {
	Field          string `json:"field"`
	SkipDuplicates bool   `json:"skip_duplicates"`
	Size           int    `json:"size"`
}

// searchResponse is the part of the _search response this client reads.
// Suggest is a pointer so a missing "suggest" object can be told apart from an empty one.
type searchResponse struct {
	Suggest *map[string][]suggestEntry `json:"suggest"`
}

type suggestEntry struct {
	Text    string          `json:"text"`
	Offset  int             `json:"offset"`
	Length  int             `json:"length"`
	Options []suggestOption `json:"options"`
}

type suggestOption struct {
	Text   string          `json:"text"`
	Index  string          `json:"_index"`
	ID     string          `json:"_id"`
	Score  float64         `json:"_score"`
	Source json.RawMessage `json:"_source"`
}

func newSearchRequest(req *domain.CompletionRequest) searchRequest {
	return searchRequest{
		Suggest: map[string]suggestion{
			suggestionName(req): {
				Text: req.Prefix,
				Completion: completion{
					Field:          req.Field,
					SkipDuplicates: req.SkipDuplicates,
					Size:           req.MaxResults,
				},
			},
		},
	}
}

func suggestionName(req *domain.CompletionRequest) string {
	if req.SuggestionName != "" {
		return req.SuggestionName
	}
	return domain.SuggestionNameFor(req.Field)
}

func toDomain(entries []suggestEntry) *domain.CompletionResponse {
	response := &domain.CompletionResponse{
		Entries: make([]domain.CompletionEntry, 0, len(entries)),
	}

	for _, entry := range entries {
		options := make([]domain.CompletionOption, 0, len(entry.Options))
		for _, option := range entry.Options {
			options = append(options, domain.CompletionOption{
				Text:   option.Text,
				Index:  option.Index,
				ID:     option.ID,
				Score:  option.Score,
				Source: option.Source,
			})
		}

		response.Entries = append(response.Entries, domain.CompletionEntry{
			MatchedPrefix: entry.Text,
			Offset:        entry.Offset,
			Length:        entry.Length,
			Options:       options,
		})
	}

	return response
}
