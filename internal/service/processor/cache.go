package processor

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kartuli-app/kartuli-backend/internal/domain"
)

// Cache keys are struct tuples, not formatted strings, so separator
// characters inside verb ids or glosses can never collide.

type glossKey struct {
	raw     string
	preverb string
}

type exampleKey struct {
	verbID  string
	tense   domain.Tense
	preverb string
}

// newCache returns an LRU cache of the given size, or nil when size is
// zero or negative. A nil cache disables memoization entirely; every
// result is then recomputed, with identical output.
func newCache[K comparable, V any](size int) *lru.Cache[K, V] {
	if size <= 0 {
		return nil
	}
	c, err := lru.New[K, V](size)
	if err != nil {
		return nil
	}
	return c
}

func cacheGet[K comparable, V any](c *lru.Cache[K, V], key K) (V, bool) {
	if c == nil {
		var zero V
		return zero, false
	}
	return c.Get(key)
}

func cacheAdd[K comparable, V any](c *lru.Cache[K, V], key K, value V) {
	if c != nil {
		c.Add(key, value)
	}
}
