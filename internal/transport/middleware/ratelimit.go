package middleware

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter applies per-client token bucket limiting. The example
// generation endpoint sits behind it so one client cannot monopolize the
// processing pipeline.
type RateLimiter struct {
	clients sync.Map // map[string]*tokenBucket
	done    chan struct{}
}

type tokenBucket struct {
	mu       sync.Mutex
	tokens   float64
	capacity float64
	rate     float64 // tokens per second
	updated  time.Time
}

// NewRateLimiter creates a limiter and starts a janitor goroutine that
// drops idle client buckets every cleanupInterval. Call Stop on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{done: make(chan struct{})}
	go rl.janitor(cleanupInterval)
	return rl
}

// Stop terminates the janitor goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.done)
}

// Limit caps requests at maxPerMinute per client IP. Rejected requests get
// 429 with a Retry-After hint.
func (rl *RateLimiter) Limit(maxPerMinute int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !rl.bucketFor(clientIP(r), maxPerMinute).take() {
				retryAfter := int(60.0/float64(maxPerMinute)) + 1
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port from RemoteAddr so a client keeps one bucket
// across connections.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) bucketFor(key string, maxPerMinute int) *tokenBucket {
	capacity := float64(maxPerMinute)
	val, _ := rl.clients.LoadOrStore(key, &tokenBucket{
		tokens:   capacity,
		capacity: capacity,
		rate:     capacity / 60.0,
		updated:  time.Now(),
	})
	return val.(*tokenBucket)
}

func (b *tokenBucket) take() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.updated).Seconds()*b.rate)
	b.updated = now

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (rl *RateLimiter) janitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-10 * time.Minute)
			rl.clients.Range(func(key, value any) bool {
				b := value.(*tokenBucket)
				b.mu.Lock()
				idle := b.updated.Before(cutoff)
				b.mu.Unlock()
				if idle {
					rl.clients.Delete(key)
				}
				return true
			})
		}
	}
}
