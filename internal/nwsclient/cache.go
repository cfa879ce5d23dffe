package nwsclient

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/akwxlab/marinedash"
	"github.com/akwxlab/marinedash/internal/observability"
)

// DefaultCacheTTL is the freshness hint for discussion bulletins. Offices
// reissue discussions every few hours; 30 seconds keeps page reloads cheap
// without masking updates.
const DefaultCacheTTL = 30 * time.Second

// CachedFetcher wraps a Fetcher with a per-office TTL cache.
type CachedFetcher struct {
	inner   marinedash.Fetcher
	ttl     time.Duration
	clock   clockwork.Clock
	metrics *observability.Metrics

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	bulletin marinedash.Bulletin
	expires  time.Time
}

// NewCachedFetcher creates a cache decorator around a fetcher. A zero ttl
// uses DefaultCacheTTL; a nil clock uses real time (tests inject a fake).
func NewCachedFetcher(inner marinedash.Fetcher, ttl time.Duration, clock clockwork.Clock, metrics *observability.Metrics) *CachedFetcher {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &CachedFetcher{
		inner:   inner,
		ttl:     ttl,
		clock:   clock,
		metrics: metrics,
		entries: make(map[string]cacheEntry),
	}
}

// FetchDiscussion serves a fresh cached bulletin when available, otherwise
// delegates to the inner fetcher. Only successful non-empty bulletins are
// cached, so transient failures and empty products can be retried.
func (c *CachedFetcher) FetchDiscussion(ctx context.Context, office string) (marinedash.Bulletin, error) {
	key := strings.ToUpper(office)

	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok && c.clock.Now().Before(entry.expires) {
		c.mu.Unlock()
		c.lookup("hit")
		return entry.bulletin, nil
	}
	c.mu.Unlock()
	c.lookup("miss")

	bulletin, err := c.inner.FetchDiscussion(ctx, office)
	if err != nil {
		return bulletin, err
	}

	if strings.TrimSpace(bulletin.Text) != "" {
		c.mu.Lock()
		c.entries[key] = cacheEntry{bulletin: bulletin, expires: c.clock.Now().Add(c.ttl)}
		c.mu.Unlock()
	}
	return bulletin, nil
}

func (c *CachedFetcher) lookup(result string) {
	if c.metrics != nil {
		c.metrics.CacheLookups.WithLabelValues(result).Inc()
	}
}
