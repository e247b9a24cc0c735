// Package usecase は登録銘柄(stocks)のユースケース層を提供します。
// 銘柄の検索・一覧のほか、プロバイダシンボルからの find-or-create 登録を担います。
package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	quoteentity "quote_backend/internal/feature/quotes/domain/entity"
	"quote_backend/internal/feature/stocks/domain/entity"
)

// StockRepository は登録銘柄の永続化レイヤーを抽象化します。
type StockRepository interface {
	// FindByID は内部IDで銘柄を1件取得します。
	// 見つからない場合は ErrStockNotFound を返します。
	FindByID(ctx context.Context, id string) (*entity.Stock, error)

	// FindBySymbol はプロバイダ識別子(provider, symbol)で銘柄を1件取得します。
	// 見つからない場合は ErrStockNotFound を返します。
	FindBySymbol(ctx context.Context, provider, symbol string) (*entity.Stock, error)

	// Create は銘柄を新規登録します。同じプロバイダ識別子が既に存在する場合は
	// ErrStockExists を返します。
	Create(ctx context.Context, stock *entity.Stock) error

	// List は登録済みの全銘柄を返します。
	List(ctx context.Context) ([]entity.Stock, error)
}

// stockUsecase は StockRepository を用いて銘柄登録簿を操作します。
type stockUsecase struct {
	stocks StockRepository
}

// NewStockUsecase は stockUsecase を生成します。
func NewStockUsecase(stocks StockRepository) *stockUsecase {
	return &stockUsecase{stocks: stocks}
}

// FindByID は内部IDで銘柄を返します。
func (su *stockUsecase) FindByID(ctx context.Context, id string) (*entity.Stock, error) {
	return su.stocks.FindByID(ctx, id)
}

// List は登録済みの全銘柄を返します。
func (su *stockUsecase) List(ctx context.Context) ([]entity.Stock, error) {
	return su.stocks.List(ctx)
}

// FindOrCreate はプロバイダ識別子で銘柄を検索し、未登録なら fetch で取得した
// プロファイルから新規作成します。戻り値の bool は新規作成されたかどうかです。
//
// Create が一意制約で弾かれた場合は同時登録に負けたとみなし、
// 勝者のレコードを取り直して返します。同じシンボルに対して複数の
// レコードが生まれることはありません。
func (su *stockUsecase) FindOrCreate(ctx context.Context, provider, symbol string, fetch func(context.Context) (*quoteentity.StockProfile, error)) (*entity.Stock, bool, error) {
	stock, err := su.stocks.FindBySymbol(ctx, provider, symbol)
	if err == nil {
		return stock, false, nil
	}
	if !errors.Is(err, ErrStockNotFound) {
		return nil, false, err
	}

	profile, err := fetch(ctx)
	if err != nil {
		return nil, false, err
	}

	stock = newStockFromProfile(provider, symbol, profile)
	if err := su.stocks.Create(ctx, stock); err != nil {
		if errors.Is(err, ErrStockExists) {
			existing, findErr := su.stocks.FindBySymbol(ctx, provider, symbol)
			if findErr != nil {
				return nil, false, findErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}

	slog.Info("registered stock", "id", stock.ID, "provider", provider, "symbol", symbol)
	return stock, true, nil
}

// newStockFromProfile はプロバイダのプロファイルから銘柄エンティティを組み立てます。
// シンボルは provider に対応する識別子スロットにも格納します。
func newStockFromProfile(provider, symbol string, profile *quoteentity.StockProfile) *entity.Stock {
	now := time.Now()
	stock := &entity.Stock{
		ID:               uuid.NewString(),
		Name:             profile.Name,
		Symbol:           profile.Symbol,
		Currency:         profile.Currency,
		Type:             profile.Type,
		Exchange:         profile.Exchange,
		CorporateActions: []entity.CorporateAction{},
		AdjustmentFactor: 1.0,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if stock.Symbol == "" {
		stock.Symbol = symbol
	}

	external := symbol
	switch provider {
	case quoteentity.SourceFinnhub:
		stock.Identifiers.Finnhub = &external
	case quoteentity.SourceYahoo:
		stock.Identifiers.Yahoo = &external
	}
	return stock
}
