package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"quote_backend/internal/feature/quotes/domain/entity"
)

// DefaultSnapshotMaxAge はスナップショットを新鮮とみなす上限の経過時間です。
const DefaultSnapshotMaxAge = 15 * time.Minute

// PriceResult is a snapshot plus how it was obtained.
type PriceResult struct {
	Snapshot  *entity.PriceSnapshot
	FromCache bool // served from the store without a refresh
	Stale     bool // older than the max age; a refresh was attempted and failed
}

// PriceCache serves price snapshots cache-aside: fresh snapshots are
// returned as-is, missing or aged ones trigger a provider refresh, and a
// failed refresh falls back to whatever snapshot is stored, however old.
type PriceCache struct {
	snapshots SnapshotRepository
	maxAge    time.Duration
}

// NewPriceCache はPriceCacheの新しいインスタンスを生成します。
// maxAgeが0以下の場合は DefaultSnapshotMaxAge を使用します。
func NewPriceCache(snapshots SnapshotRepository, maxAge time.Duration) *PriceCache {
	if maxAge <= 0 {
		maxAge = DefaultSnapshotMaxAge
	}
	return &PriceCache{snapshots: snapshots, maxAge: maxAge}
}

// GetWithRefresh は銘柄の価格スナップショットを返します。保存済みスナップ
// ショットが新鮮ならプロバイダを呼ばずにそれを返し、欠落・期限切れなら
// プロバイダから再取得して上書き保存します。再取得に失敗した場合、保存済み
// スナップショットがあればそれを stale として返し、なければ
// ErrPriceUnavailable を返します。
func (c *PriceCache) GetWithRefresh(ctx context.Context, stockID, symbol string, provider QuoteProvider) (*PriceResult, error) {
	prior, err := c.snapshots.Find(ctx, stockID)
	if err != nil && !errors.Is(err, ErrSnapshotNotFound) {
		return nil, fmt.Errorf("find snapshot: %w", err)
	}

	if prior != nil && time.Since(prior.UpdatedAt) <= c.maxAge {
		return &PriceResult{Snapshot: prior, FromCache: true}, nil
	}

	quote, fetchErr := provider.FetchQuote(ctx, symbol)
	if fetchErr != nil {
		if prior != nil {
			slog.Warn("quote refresh failed, serving stale snapshot",
				"stockId", stockID, "symbol", symbol, "provider", provider.Source(), "error", fetchErr)
			return &PriceResult{Snapshot: prior, FromCache: true, Stale: true}, nil
		}
		slog.Warn("quote refresh failed with no stored snapshot",
			"stockId", stockID, "symbol", symbol, "provider", provider.Source(), "error", fetchErr)
		return nil, ErrPriceUnavailable
	}

	snapshot := &entity.PriceSnapshot{
		StockID:   stockID,
		Quote:     *quote,
		UpdatedAt: time.Now(),
	}
	if err := c.snapshots.Save(ctx, snapshot); err != nil {
		return nil, fmt.Errorf("save snapshot: %w", err)
	}
	return &PriceResult{Snapshot: snapshot, FromCache: false}, nil
}
