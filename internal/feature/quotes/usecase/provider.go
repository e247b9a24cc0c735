package usecase

import (
	"context"

	"quote_backend/internal/feature/quotes/domain/entity"
)

// QuoteProvider は外部プロバイダからの相場取得レイヤーを抽象化します。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type QuoteProvider interface {
	// Source はプロバイダ名（"finnhub"、"yahoo"）を返します。
	Source() string
	// FetchQuote は1銘柄の現在値を取得します。プロバイダが銘柄を知らない
	// 場合は ErrNoData を、通信・解析の失敗時はその他のエラーを返します。
	FetchQuote(ctx context.Context, symbol string) (*entity.Quote, error)
	// FetchProfile は銘柄の基本情報を取得します。存在しない銘柄には
	// ErrNoData を返します。
	FetchProfile(ctx context.Context, symbol string) (*entity.StockProfile, error)
}

// SnapshotRepository は価格スナップショットの永続化レイヤーを抽象化します。
type SnapshotRepository interface {
	// Find は指定された銘柄IDのスナップショットを返します。
	// 存在しない場合は ErrSnapshotNotFound を返します。
	Find(ctx context.Context, stockID string) (*entity.PriceSnapshot, error)
	// Save はスナップショットを上書き保存します。銘柄ごとに常に1件です。
	Save(ctx context.Context, snapshot *entity.PriceSnapshot) error
}
