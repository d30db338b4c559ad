package rest

import (
	"context"
	"net/http"
	"time"
)

// Pinger defines the minimal interface for DB health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves health check endpoints. The pinger is nil when the
// lexicon is served from JSON files; the database component is then
// omitted from reports.
type HealthHandler struct {
	db      Pinger
	version string
	verbs   int
}

// NewHealthHandler creates a HealthHandler. db may be nil.
func NewHealthHandler(db Pinger, version string, verbCount int) *HealthHandler {
	return &HealthHandler{db: db, version: version, verbs: verbCount}
}

// HealthResponse is the JSON response for /health and /ready.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Verbs      int                   `json:"verbs,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of an individual component.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live is the liveness probe. Always returns 200.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Ready is the readiness probe. Pings the DB when one is configured:
// 200 if OK, 503 if not.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		if err := h.db.Ping(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:    "down",
				Timestamp: time.Now(),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
	})
}

// Health is the full health check: version, loaded verb count, and the
// database component with latency when one is configured.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]CompStatus)
	overallStatus := "ok"

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		start := time.Now()
		err := h.db.Ping(ctx)
		latency := time.Since(start)

		if err != nil {
			components["database"] = CompStatus{Status: "down"}
			overallStatus = "down"
		} else {
			components["database"] = CompStatus{
				Status:  "ok",
				Latency: latency.String(),
			}
		}
	}

	status := http.StatusOK
	if overallStatus != "ok" {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, HealthResponse{
		Status:     overallStatus,
		Version:    h.version,
		Verbs:      h.verbs,
		Components: components,
		Timestamp:  time.Now(),
	})
}
