package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ledgerguard/ledgerguard/internal/domain"
	"github.com/ledgerguard/ledgerguard/internal/infrastructure/metrics"
	"github.com/ledgerguard/ledgerguard/internal/usecase"
)

const (
	accountsKey = "snapshot:accounts"
	lastDateKey = "snapshot:last_entry_date"
)

// SnapshotCache decorates a SnapshotSource with a Redis cache for the
// chart of accounts and the last entry date. Cache failures degrade to
// the wrapped source; they are never surfaced to callers.
type SnapshotCache struct {
	source  usecase.SnapshotSource
	client  *redis.Client
	ttl     time.Duration
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewSnapshotCache creates a new SnapshotCache around source.
func NewSnapshotCache(source usecase.SnapshotSource, client *redis.Client, ttl time.Duration, m *metrics.Metrics, logger zerolog.Logger) *SnapshotCache {
	return &SnapshotCache{
		source:  source,
		client:  client,
		ttl:     ttl,
		metrics: m,
		logger:  logger,
	}
}

type cachedAccounts struct {
	FetchedAt time.Time        `json:"fetched_at"`
	Accounts  []domain.Account `json:"accounts"`
}

type cachedDate struct {
	FetchedAt time.Time `json:"fetched_at"`
	Date      time.Time `json:"date"`
}

// Accounts returns the cached chart of accounts, fetching from the wrapped
// source on a miss.
func (c *SnapshotCache) Accounts(ctx context.Context) ([]domain.Account, error) {
	raw, err := c.client.Get(ctx, accountsKey).Result()
	if err == nil {
		var cached cachedAccounts
		unmarshalErr := json.Unmarshal([]byte(raw), &cached)
		if unmarshalErr == nil {
			c.recordHit(cached.FetchedAt)
			return cached.Accounts, nil
		}
		c.logger.Warn().Err(unmarshalErr).Msg("corrupt account snapshot in cache, refetching")
	} else if err != redis.Nil {
		c.logger.Warn().Err(err).Msg("snapshot cache unavailable, falling back to upstream")
	}

	accounts, err := c.source.Accounts(ctx)
	if err != nil {
		c.recordFetch("error")
		return nil, err
	}
	c.recordFetch("ok")

	c.store(ctx, accountsKey, cachedAccounts{FetchedAt: time.Now(), Accounts: accounts})
	return accounts, nil
}

// LastEntryDate returns the cached last entry date, fetching from the
// wrapped source on a miss. The zero time means the ledger is empty.
func (c *SnapshotCache) LastEntryDate(ctx context.Context) (time.Time, error) {
	raw, err := c.client.Get(ctx, lastDateKey).Result()
	if err == nil {
		var cached cachedDate
		unmarshalErr := json.Unmarshal([]byte(raw), &cached)
		if unmarshalErr == nil {
			c.recordHit(cached.FetchedAt)
			return cached.Date, nil
		}
		c.logger.Warn().Err(unmarshalErr).Msg("corrupt last entry date in cache, refetching")
	} else if err != redis.Nil {
		c.logger.Warn().Err(err).Msg("snapshot cache unavailable, falling back to upstream")
	}

	date, err := c.source.LastEntryDate(ctx)
	if err != nil {
		c.recordFetch("error")
		return time.Time{}, err
	}
	c.recordFetch("ok")

	c.store(ctx, lastDateKey, cachedDate{FetchedAt: time.Now(), Date: date})
	return date, nil
}

// JournalEntries passes through to the wrapped source. Ranged journal
// queries are not cached.
func (c *SnapshotCache) JournalEntries(ctx context.Context, from, to time.Time) ([]domain.JournalEntry, error) {
	return c.source.JournalEntries(ctx, from, to)
}

// Invalidate drops the cached snapshot so the next read hits upstream.
func (c *SnapshotCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, accountsKey, lastDateKey).Err()
}

// Ping checks the Redis connection.
func (c *SnapshotCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *SnapshotCache) store(ctx context.Context, key string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to marshal snapshot for cache")
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("failed to store snapshot in cache")
	}
}

func (c *SnapshotCache) recordHit(fetchedAt time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.SnapshotCacheHits.Inc()
	c.metrics.SnapshotFetches.WithLabelValues("cache", "hit").Inc()
	c.metrics.SnapshotStaleness.Set(time.Since(fetchedAt).Seconds())
}

func (c *SnapshotCache) recordFetch(status string) {
	if c.metrics == nil {
		return
	}
	c.metrics.SnapshotFetches.WithLabelValues("upstream", status).Inc()
	if status == "ok" {
		c.metrics.SnapshotStaleness.Set(0)
	}
}
