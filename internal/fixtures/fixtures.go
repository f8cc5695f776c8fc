// Package fixtures holds the sample completion data set.
package fixtures

const (
	// Index is the sample index name.
	Index = "test2"

	// Field is the completion-mapped field of the sample index.
	Field = "title"
)

// Inputs returns the completion inputs of the sample documents, one slice per document.
func Inputs() [][]string {
	return [][]string{
		{"SK-II", "PITERA"},
		{"Sony", "WH-1000XM3"},
		{"Nintendo", "switch"},
	}
}
