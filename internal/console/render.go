package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/davidbz/autocomplete/internal/domain"
)

const (
	optionMarker = "-->"
	separator    = "--------"
)

// Render writes each entry's matched prefix followed by its options, one per line.
func Render(w io.Writer, response *domain.CompletionResponse) error {
	if response == nil {
		return nil
	}

	var builder strings.Builder
	for _, entry := range response.Entries {
		fmt.Fprintf(&builder, "matched: %s\n", entry.MatchedPrefix)
		builder.WriteString("results:\n")
		for _, option := range entry.Options {
			builder.WriteString(optionMarker + option.Text + "\n")
		}
	}

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return fmt.Errorf("failed to write suggestions: %w", err)
	}
	return nil
}

func writeSeparator(w io.Writer) error {
	if _, err := io.WriteString(w, "\n"+separator+"\n\n"); err != nil {
		return fmt.Errorf("failed to write separator: %w", err)
	}
	return nil
}
