package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/kartuli-app/kartuli-backend/internal/config"
	"github.com/kartuli-app/kartuli-backend/internal/transport/middleware"
)

// RouterDeps carries everything the router wires together.
type RouterDeps struct {
	Verbs    *VerbsHandler
	Examples *ExamplesHandler
	Health   *HealthHandler
	Logger   *slog.Logger
	CORS     config.CORSConfig

	// ExampleRateLimit caps POST /api/examples per IP per minute.
	// Zero disables the limiter.
	ExampleRateLimit int
}

// NewRouter builds the HTTP handler with the full middleware chain.
// Returns the handler and a shutdown function for background resources.
func NewRouter(deps RouterDeps) (http.Handler, func()) {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /health/ready", deps.Health.Ready)

	mux.HandleFunc("GET /api/verbs", deps.Verbs.List)
	mux.HandleFunc("GET /api/verbs/{id}", deps.Verbs.Get)

	generate := http.Handler(http.HandlerFunc(deps.Examples.Generate))
	shutdown := func() {}
	if deps.ExampleRateLimit > 0 {
		rl := middleware.NewRateLimiter(time.Minute)
		generate = rl.Limit(deps.ExampleRateLimit)(generate)
		shutdown = rl.Stop
	}
	mux.Handle("POST /api/examples", generate)

	chain := middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(deps.Logger),
		middleware.Logger(deps.Logger),
		middleware.CORS(deps.CORS),
	)

	return chain(mux), shutdown
}
