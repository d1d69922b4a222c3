package sheet

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"ovacare/internal/analytics"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const cacheKeyPrefix = "sheet:rows:"

// CachedClient snapshots parsed rows in Redis so dashboard refreshes don't
// hammer the published sheet. Cache failures degrade to a direct fetch.
type CachedClient struct {
	inner       Fetcher
	redisClient *redis.Client
	ttl         time.Duration
	log         *logrus.Logger
}

func NewCachedClient(inner Fetcher, redisClient *redis.Client, ttl time.Duration, log *logrus.Logger) *CachedClient {
	return &CachedClient{
		inner:       inner,
		redisClient: redisClient,
		ttl:         ttl,
		log:         log,
	}
}

func (c *CachedClient) Fetch(ctx context.Context, url string) ([]analytics.Row, error) {
	key := cacheKey(url)

	cached, err := c.redisClient.Get(ctx, key).Bytes()
	if err == nil {
		var rows []analytics.Row
		if err := json.Unmarshal(cached, &rows); err == nil {
			return rows, nil
		}
		c.log.Warnf("Failed to decode cached sheet %s, refetching: %+v", url, err)
	} else if err != redis.Nil {
		c.log.Warnf("Failed to read sheet cache: %+v", err)
	}

	rows, err := c.inner.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(rows); err == nil {
		if err := c.redisClient.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.log.Warnf("Failed to cache sheet %s (non-fatal): %+v", url, err)
		}
	}

	return rows, nil
}

func cacheKey(url string) string {
	sum := sha1.Sum([]byte(url))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
