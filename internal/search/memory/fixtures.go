package memory

import "github.com/davidbz/autocomplete/internal/fixtures"

// SeedFixtures creates the sample index and loads its documents.
func (s *Suggester) SeedFixtures() error {
	s.CreateIndex(fixtures.Index, fixtures.Field)

	for _, inputs := range fixtures.Inputs() {
		if err := s.Add(fixtures.Index, Document{Inputs: inputs}); err != nil {
			return err
		}
	}

	return nil
}
