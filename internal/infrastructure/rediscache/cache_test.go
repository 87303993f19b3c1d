package rediscache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diveshopfinder/api/internal/public/domain"
)

func newTestCache(t *testing.T) (*ResultCache, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return New(client, time.Minute, nil), server
}

func TestResultCache_RoundTrip(t *testing.T) {
	cache, _ := newTestCache(t)
	criteria := domain.Criteria{SearchQuery: "reef", SortBy: domain.SortNameAsc}

	_, ok := cache.Get(context.Background(), 1, criteria)
	require.False(t, ok, "empty cache must miss")

	cache.Set(context.Background(), 1, criteria, []string{"3", "1"})

	ids, ok := cache.Get(context.Background(), 1, criteria)
	require.True(t, ok)
	assert.Equal(t, []string{"3", "1"}, ids, "stored ordering comes back verbatim")
}

func TestResultCache_VersionIsolatesEntries(t *testing.T) {
	cache, _ := newTestCache(t)
	criteria := domain.Criteria{SortBy: domain.SortPopular}

	cache.Set(context.Background(), 1, criteria, []string{"1"})

	_, ok := cache.Get(context.Background(), 2, criteria)
	assert.False(t, ok, "a new snapshot version must not see old orderings")
}

func TestResultCache_SelectionOrderSharesKey(t *testing.T) {
	cache, _ := newTestCache(t)

	cache.Set(context.Background(), 1, domain.Criteria{
		Certifications: []string{"SSI", "PADI"},
		Countries:      []string{"日本", "泰國"},
	}, []string{"2"})

	ids, ok := cache.Get(context.Background(), 1, domain.Criteria{
		Certifications: []string{"PADI", "SSI"},
		Countries:      []string{"泰國", "日本"},
	})
	require.True(t, ok, "membership filters must be order-insensitive in the key")
	assert.Equal(t, []string{"2"}, ids)
}

func TestResultCache_DistinctCriteriaDistinctKeys(t *testing.T) {
	cache, _ := newTestCache(t)

	cache.Set(context.Background(), 1, domain.Criteria{SortBy: domain.SortNameAsc}, []string{"1"})

	_, ok := cache.Get(context.Background(), 1, domain.Criteria{SortBy: domain.SortNameDesc})
	assert.False(t, ok)

	_, ok = cache.Get(context.Background(), 1, domain.Criteria{SortBy: domain.SortNameAsc, FiveStarOnly: true})
	assert.False(t, ok)
}

func TestResultCache_ExpiredEntryMisses(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	cache := New(client, time.Second, nil)

	criteria := domain.Criteria{SortBy: domain.SortNameAsc}
	cache.Set(context.Background(), 1, criteria, []string{"1"})
	server.FastForward(2 * time.Second)

	_, ok := cache.Get(context.Background(), 1, criteria)
	assert.False(t, ok)
}

func TestResultCache_RedisDownDegradesToMiss(t *testing.T) {
	cache, server := newTestCache(t)
	criteria := domain.Criteria{SortBy: domain.SortNameAsc}
	cache.Set(context.Background(), 1, criteria, []string{"1"})

	server.Close()

	_, ok := cache.Get(context.Background(), 1, criteria)
	assert.False(t, ok, "an unreachable Redis is a miss, never an error")

	// Set after shutdown must not panic either.
	cache.Set(context.Background(), 1, criteria, []string{"1"})
}

func TestResultCache_CorruptPayloadMisses(t *testing.T) {
	cache, server := newTestCache(t)
	criteria := domain.Criteria{SortBy: domain.SortNameAsc}

	require.NoError(t, server.Set(cacheKey(1, criteria), "not json"))

	_, ok := cache.Get(context.Background(), 1, criteria)
	assert.False(t, ok)
}
