package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
	"github.com/kartuli-app/kartuli-backend/internal/service/processor"
)

type exampleService interface {
	GenerateExamples(ctx context.Context, verbID, tense string, preverbs []string) (processor.PedagogicalResult, error)
}

// ExamplesHandler serves on-demand pedagogical example generation.
type ExamplesHandler struct {
	examples exampleService
	log      *slog.Logger
}

// NewExamplesHandler creates an ExamplesHandler.
func NewExamplesHandler(examples exampleService, logger *slog.Logger) *ExamplesHandler {
	return &ExamplesHandler{
		examples: examples,
		log:      logger.With("handler", "examples"),
	}
}

// generateRequest is the POST /api/examples body.
type generateRequest struct {
	VerbID   string   `json:"verb_id"`
	Tense    string   `json:"tense"`
	Preverbs []string `json:"preverbs,omitempty"`
}

// Generate builds examples for one verb and tense. Dataset errors come
// back as a 200 with the structured error object in the body; only a bad
// request or an unknown verb changes the status code.
// POST /api/examples
func (h *ExamplesHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.VerbID == "" || req.Tense == "" {
		writeError(w, http.StatusBadRequest, "verb_id and tense are required")
		return
	}

	result, err := h.examples.GenerateExamples(r.Context(), req.VerbID, req.Tense, req.Preverbs)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			writeError(w, http.StatusNotFound, "verb not found")
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.ErrorContext(r.Context(), "generate examples",
				slog.String("verb_id", req.VerbID), slog.String("error", err.Error()))
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}
