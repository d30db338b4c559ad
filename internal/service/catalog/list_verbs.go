package catalog

import (
	"context"
	"sort"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

// VerbSummary is one row of the verb listing.
type VerbSummary struct {
	ID          string         `json:"id"`
	Georgian    string         `json:"georgian"`
	Category    string         `json:"category,omitempty"`
	SemanticKey string         `json:"semantic_key,omitempty"`
	Preverbs    []string       `json:"preverbs,omitempty"`
	Tenses      []domain.Tense `json:"tenses"`
}

// List returns summaries for every verb, ordered by id.
func (s *Service) List(_ context.Context) []VerbSummary {
	out := make([]VerbSummary, 0, len(s.verbs))
	for _, verb := range s.verbs {
		summary := VerbSummary{
			ID:          verb.ID,
			Georgian:    verb.Georgian,
			Category:    verb.Category,
			SemanticKey: verb.SemanticKey,
		}
		if verb.PreverbConfig.HasMultiplePreverbs {
			summary.Preverbs = verb.PreverbKeys()
		}
		for _, tense := range domain.AllTenses() {
			if _, ok := verb.Conjugations[tense]; ok {
				summary.Tenses = append(summary.Tenses, tense)
			}
		}
		out = append(out, summary)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
