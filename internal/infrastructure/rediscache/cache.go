package rediscache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/diveshopfinder/api/internal/public/domain"
)

const keyPrefix = "diveshop:pipeline:"

// ResultCache memoizes pipeline output in Redis, keyed on the snapshot
// version plus a canonical hash of the criteria. Entries store the ordered
// shop id list only; the shops themselves always come from the current
// snapshot. Every Redis failure degrades to a cache miss.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

// New creates a result cache. ttl bounds how long a memoized ordering may be
// served; keys are additionally invalidated by the snapshot version, so a
// reload never serves stale orderings even within the TTL.
func New(client *redis.Client, ttl time.Duration, logger *log.Logger) *ResultCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &ResultCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the memoized id ordering for the criteria, if any.
func (c *ResultCache) Get(ctx context.Context, version int64, criteria domain.Criteria) ([]string, bool) {
	payload, err := c.client.Get(ctx, cacheKey(version, criteria)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) && c.logger != nil {
			c.logger.Printf("パイプラインキャッシュの取得に失敗: %v", err)
		}
		return nil, false
	}

	var ids []string
	if err := json.Unmarshal([]byte(payload), &ids); err != nil {
		if c.logger != nil {
			c.logger.Printf("パイプラインキャッシュの復元に失敗: %v", err)
		}
		return nil, false
	}
	return ids, true
}

// Set stores the id ordering for the criteria. Best effort; failures are
// logged and otherwise ignored.
func (c *ResultCache) Set(ctx context.Context, version int64, criteria domain.Criteria, ids []string) {
	payload, err := json.Marshal(ids)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(version, criteria), payload, c.ttl).Err(); err != nil && c.logger != nil {
		c.logger.Printf("パイプラインキャッシュの保存に失敗: %v", err)
	}
}

// cacheKey builds a deterministic key. The certification and country sets are
// sorted first: both filters are membership tests, so selection order must
// not produce distinct keys.
func cacheKey(version int64, criteria domain.Criteria) string {
	certifications := append([]string{}, criteria.Certifications...)
	sort.Strings(certifications)
	countries := append([]string{}, criteria.Countries...)
	sort.Strings(countries)

	canonical := strings.Join([]string{
		strings.ToLower(strings.TrimSpace(criteria.SearchQuery)),
		strings.Join(certifications, ","),
		strings.Join(countries, ","),
		fmt.Sprintf("%t", criteria.FiveStarOnly),
		string(criteria.SortBy),
	}, "|")

	sum := sha256.Sum256([]byte(canonical))
	return fmt.Sprintf("%s%d:%s", keyPrefix, version, hex.EncodeToString(sum[:]))
}
