package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
	"github.com/kartuli-app/kartuli-backend/internal/service/catalog"
)

type verbCatalog interface {
	List(ctx context.Context) []catalog.VerbSummary
	Get(ctx context.Context, id string) (*domain.ProcessedVerb, error)
}

// VerbsHandler serves the verb catalog endpoints.
type VerbsHandler struct {
	catalog verbCatalog
	log     *slog.Logger
}

// NewVerbsHandler creates a VerbsHandler.
func NewVerbsHandler(cat verbCatalog, logger *slog.Logger) *VerbsHandler {
	return &VerbsHandler{
		catalog: cat,
		log:     logger.With("handler", "verbs"),
	}
}

// List returns summaries of every verb.
// GET /api/verbs
func (h *VerbsHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.List(r.Context()))
}

// Get returns the full processed record for one verb.
// GET /api/verbs/{id}
func (h *VerbsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "verb id is required")
		return
	}

	processed, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "verb not found")
			return
		}
		h.log.ErrorContext(r.Context(), "get verb", slog.String("verb_id", id), slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, http.StatusOK, processed)
}
