package catalog

import (
	"context"
	"fmt"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

// Get returns the full processed record for a verb.
// Returns domain.ErrNotFound for an unknown id.
func (s *Service) Get(_ context.Context, id string) (*domain.ProcessedVerb, error) {
	processed, ok := s.processed[id]
	if !ok {
		return nil, fmt.Errorf("verb %q: %w", id, domain.ErrNotFound)
	}
	return processed, nil
}
