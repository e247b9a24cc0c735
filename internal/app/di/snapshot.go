package di

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	quoteadapters "quote_backend/internal/feature/quotes/adapters"
	"quote_backend/internal/feature/quotes/usecase"
	"quote_backend/internal/platform/snapshotcache"
)

// NewSnapshotRepository creates a SnapshotRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to the SQL store.
func NewSnapshotRepository(rdb *redis.Client, db *gorm.DB) usecase.SnapshotRepository {
	if rdb != nil {
		return snapshotcache.NewSnapshotRedis(rdb, "prices")
	}
	return quoteadapters.NewSnapshotRepository(db)
}
