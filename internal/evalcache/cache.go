// Package evalcache memoizes evaluator results. The evaluator is a pure
// function of (attraction indices, transport modes) (spec.md §5), so
// caching its output is a speed optimization, never a correctness
// dependency: both engines must run identically with or without a cache
// attached (spec.md §8 S6, determinism). Cache is optional on both
// engines; a nil Cache or an unreachable Redis instance simply means
// every candidate is evaluated fresh.
package evalcache

import (
	"sync"

	"tourplanner/internal/domain"
)

// Result is a memoized evaluation: the derived schedule plus its
// objective vector, stored together so a cache hit never needs to
// re-invoke the oracle.
type Result struct {
	Route domain.Route
	Obj   domain.ObjectiveVector
}

// Cache memoizes Evaluate results keyed by Key(indices, modes).
type Cache interface {
	Get(key string) (Result, bool)
	Set(key string, result Result)
}

// Key builds a stable string key from a chromosome and its transport
// modes, suitable for both the in-memory map and Redis backends.
func Key(indices []int, modes []domain.TransportMode) string {
	buf := make([]byte, 0, len(indices)*5+len(modes)*2)
	for _, idx := range indices {
		buf = appendInt(buf, idx)
		buf = append(buf, ',')
	}
	buf = append(buf, '|')
	for _, m := range modes {
		if m == domain.Walk {
			buf = append(buf, 'W')
		} else {
			buf = append(buf, 'C')
		}
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	if neg {
		buf = append(buf, '-')
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

// MemoryCache is a process-local, mutex-guarded map. It is the default
// cache used when no Redis address is configured.
type MemoryCache struct {
	mu sync.RWMutex
	m  map[string]Result
}

// NewMemory returns an empty in-memory cache.
func NewMemory() *MemoryCache {
	return &MemoryCache{m: make(map[string]Result)}
}

func (c *MemoryCache) Get(key string) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *MemoryCache) Set(key string, result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = result
}
