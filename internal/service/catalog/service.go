// Package catalog serves the processed verb dataset: verb listings, full
// processed records, and on-demand pedagogical examples.
package catalog

import (
	"context"
	"log/slog"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
	"github.com/kartuli-app/kartuli-backend/internal/service/processor"
)

type exampleGenerator interface {
	GeneratePedagogicalExamples(ctx context.Context, verb *domain.Verb, tense domain.Tense, selectedPreverbs []string) processor.PedagogicalResult
}

// Service provides read access to the processed dataset.
type Service struct {
	verbs     map[string]*domain.Verb
	processed map[string]*domain.ProcessedVerb
	generator exampleGenerator
	log       *slog.Logger
}

// NewService creates a catalog Service over an already-processed dataset.
// The maps are not copied; they must not be mutated after construction.
func NewService(
	log *slog.Logger,
	verbs map[string]*domain.Verb,
	processed map[string]*domain.ProcessedVerb,
	generator exampleGenerator,
) *Service {
	return &Service{
		verbs:     verbs,
		processed: processed,
		generator: generator,
		log:       log.With("service", "catalog"),
	}
}
