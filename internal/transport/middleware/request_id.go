package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/kartuli-app/kartuli-backend/pkg/ctxutil"
)

// requestIDHeader is honored on requests and always set on responses so
// clients can correlate logs.
const requestIDHeader = "X-Request-Id"

// RequestID attaches a request ID to the context and the response,
// generating one when the client did not send it.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(ctxutil.WithRequestID(r.Context(), id)))
	})
}
