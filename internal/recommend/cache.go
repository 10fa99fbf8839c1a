package recommend

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

type cacheEntry struct {
	value     Result
	expiresAt time.Time
}

// Cache holds computed recommendations per subject movie with a TTL.
// Entries expire lazily on read; there is no size bound, which is fine
// for the expected key space (one entry per browsed movie) but should be
// revisited before any serious traffic.
type Cache struct {
	mu    sync.Mutex
	items map[int]cacheEntry
	ttl   time.Duration
	now   func() time.Time
}

// NewCache creates a Cache. A TTL of zero or less disables caching
// entirely: Set becomes a no-op and every Get misses. A non-nil NATS
// connection wires up key-level invalidation on subj ("ALL" clears).
func NewCache(ttl time.Duration, nc *nats.Conn, subj string) *Cache {
	c := &Cache{
		items: make(map[int]cacheEntry),
		ttl:   ttl,
		now:   time.Now,
	}
	if nc != nil && subj != "" {
		_, _ = nc.Subscribe(subj, func(m *nats.Msg) {
			c.invalidate(string(m.Data))
		})
	}
	return c
}

func (c *Cache) Get(movieID int) (Result, bool) {
	if c.ttl <= 0 {
		return Result{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[movieID]
	if !ok {
		return Result{}, false
	}
	if !c.now().Before(it.expiresAt) {
		delete(c.items, movieID)
		return Result{}, false
	}
	return it.value, true
}

// Set overwrites any previous entry for the movie.
func (c *Cache) Set(movieID int, v Result) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	c.items[movieID] = cacheEntry{value: v, expiresAt: c.now().Add(c.ttl)}
	c.mu.Unlock()
}

func (c *Cache) invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key = strings.TrimSpace(key)
	if key == "" || strings.EqualFold(key, "ALL") {
		c.items = make(map[int]cacheEntry)
		return
	}
	if id, err := strconv.Atoi(key); err == nil {
		delete(c.items, id)
	}
}
