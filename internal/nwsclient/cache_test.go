package nwsclient

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akwxlab/marinedash"
)

// countingFetcher records how often the inner fetcher is hit.
type countingFetcher struct {
	calls    int
	bulletin marinedash.Bulletin
	err      error
}

func (f *countingFetcher) FetchDiscussion(context.Context, string) (marinedash.Bulletin, error) {
	f.calls++
	return f.bulletin, f.err
}

func TestCachedFetcherServesFromCache(t *testing.T) {
	inner := &countingFetcher{bulletin: marinedash.Bulletin{Office: "AFC", Text: "Calm seas."}}
	clock := clockwork.NewFakeClock()
	cached := NewCachedFetcher(inner, 30*time.Second, clock, nil)

	first, err := cached.FetchDiscussion(context.Background(), "AFC")
	require.NoError(t, err)

	second, err := cached.FetchDiscussion(context.Background(), "afc")
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls, "second lookup must be served from cache")
	assert.Equal(t, first, second)
}

func TestCachedFetcherExpiry(t *testing.T) {
	inner := &countingFetcher{bulletin: marinedash.Bulletin{Office: "AFC", Text: "Calm seas."}}
	clock := clockwork.NewFakeClock()
	cached := NewCachedFetcher(inner, 30*time.Second, clock, nil)

	_, err := cached.FetchDiscussion(context.Background(), "AFC")
	require.NoError(t, err)

	clock.Advance(31 * time.Second)

	_, err = cached.FetchDiscussion(context.Background(), "AFC")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls, "expired entry must be refetched")
}

func TestCachedFetcherDoesNotCacheErrors(t *testing.T) {
	inner := &countingFetcher{err: errors.New("backend down")}
	cached := NewCachedFetcher(inner, 30*time.Second, clockwork.NewFakeClock(), nil)

	_, err := cached.FetchDiscussion(context.Background(), "AFC")
	require.Error(t, err)

	_, err = cached.FetchDiscussion(context.Background(), "AFC")
	require.Error(t, err)
	assert.Equal(t, 2, inner.calls, "failures must not be cached")
}

func TestCachedFetcherDoesNotCacheEmptyBulletins(t *testing.T) {
	inner := &countingFetcher{bulletin: marinedash.Bulletin{Office: "AFC", Text: "  "}}
	cached := NewCachedFetcher(inner, 30*time.Second, clockwork.NewFakeClock(), nil)

	_, err := cached.FetchDiscussion(context.Background(), "AFC")
	require.NoError(t, err)

	_, err = cached.FetchDiscussion(context.Background(), "AFC")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls, "empty products must be retried")
}

func TestCachedFetcherKeysPerOffice(t *testing.T) {
	inner := &countingFetcher{bulletin: marinedash.Bulletin{Text: "Light winds."}}
	cached := NewCachedFetcher(inner, 30*time.Second, clockwork.NewFakeClock(), nil)

	_, _ = cached.FetchDiscussion(context.Background(), "AFC")
	_, _ = cached.FetchDiscussion(context.Background(), "AJK")

	assert.Equal(t, 2, inner.calls, "different offices must not share entries")
}

func TestCachedFetcherDefaultTTL(t *testing.T) {
	cached := NewCachedFetcher(&countingFetcher{}, 0, nil, nil)
	assert.Equal(t, DefaultCacheTTL, cached.ttl)
}
