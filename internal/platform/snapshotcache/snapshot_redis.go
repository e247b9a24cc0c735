// Package snapshotcache provides a Redis-backed store for price snapshots.
package snapshotcache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"quote_backend/internal/feature/quotes/domain/entity"
	"quote_backend/internal/feature/quotes/usecase"
)

// SnapshotRedis implements usecase.SnapshotRepository using Redis.
// Entries carry no TTL: staleness is computed at read time, and snapshots
// older than the max age must stay readable as refresh fallbacks.
type SnapshotRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.SnapshotRepository = (*SnapshotRedis)(nil)

// NewSnapshotRedis creates a new SnapshotRedis instance.
// If prefix is empty, it uses "prices".
func NewSnapshotRedis(client *redis.Client, prefix string) *SnapshotRedis {
	if prefix == "" {
		prefix = "prices"
	}
	return &SnapshotRedis{
		client: client,
		prefix: prefix,
	}
}

// snapshotKey returns the Redis key for a stock's snapshot.
func (r *SnapshotRedis) snapshotKey(stockID string) string {
	return fmt.Sprintf("%s:%s", r.prefix, stockID)
}

// Find retrieves the snapshot stored for a stock.
func (r *SnapshotRedis) Find(ctx context.Context, stockID string) (*entity.PriceSnapshot, error) {
	data, err := r.client.Get(ctx, r.snapshotKey(stockID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrSnapshotNotFound
		}
		return nil, err
	}

	var snapshot entity.PriceSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		// Delete the corrupted entry and report a miss so the caller refreshes
		_ = r.client.Del(ctx, r.snapshotKey(stockID)).Err()
		return nil, usecase.ErrSnapshotNotFound
	}

	return &snapshot, nil
}

// Save stores the snapshot for a stock, overwriting any previous value.
func (r *SnapshotRedis) Save(ctx context.Context, snapshot *entity.PriceSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	// TTL 0 means no expiration; old snapshots must survive for fallback
	return r.client.Set(ctx, r.snapshotKey(snapshot.StockID), data, 0).Err()
}
