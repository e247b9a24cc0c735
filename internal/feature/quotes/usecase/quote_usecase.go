// Package usecase は相場データ操作のビジネスロジックを実装します。
package usecase

import (
	"context"

	"quote_backend/internal/feature/quotes/domain/entity"
	stockentity "quote_backend/internal/feature/stocks/domain/entity"
)

// StockRegistry は登録済み銘柄の検索・登録レイヤーを抽象化します。
// 実装は stocks featureのusecaseが提供します。
type StockRegistry interface {
	// FindByID はIDで登録済み銘柄を返します。未登録の場合は
	// 銘柄側のNotFoundエラーを返します。
	FindByID(ctx context.Context, id string) (*stockentity.Stock, error)
	// FindOrCreate は (provider, symbol) の銘柄を返し、未登録なら
	// fetchで基本情報を取得して登録します。2番目の戻り値は新規登録の有無です。
	FindOrCreate(ctx context.Context, provider, symbol string,
		fetch func(context.Context) (*entity.StockProfile, error)) (*stockentity.Stock, bool, error)
}

// StockPrice は登録銘柄とその価格スナップショットの組です。
type StockPrice struct {
	Stock *stockentity.Stock
	Price *PriceResult
}

// TrackResult は銘柄登録操作の結果です。
type TrackResult struct {
	Stock   *stockentity.Stock
	Price   *PriceResult
	Created bool
}

// quoteUsecase は相場照会のユースケースを定義します。シンボルの市場判定に
// 基づいて国内・海外プロバイダへ振り分けます。
type quoteUsecase struct {
	domestic      QuoteProvider
	international QuoteProvider
	cache         *PriceCache
	registry      StockRegistry
}

// NewQuoteUsecase はquoteUsecaseの新しいインスタンスを生成します。
func NewQuoteUsecase(domestic, international QuoteProvider, cache *PriceCache, registry StockRegistry) *quoteUsecase {
	return &quoteUsecase{
		domestic:      domestic,
		international: international,
		cache:         cache,
		registry:      registry,
	}
}

// routeProvider はシンボルの取引所サフィックスから担当プロバイダを返します。
func (qu *quoteUsecase) routeProvider(symbol string) QuoteProvider {
	if entity.MarketOf(symbol) == entity.MarketInternational {
		return qu.international
	}
	return qu.domestic
}

// providerFor は登録時に記録されたidentifierから担当プロバイダと照会用
// シンボルを決定します。identifierが無い場合はSymbolのサフィックスで
// 振り分けます。
func (qu *quoteUsecase) providerFor(stock *stockentity.Stock) (QuoteProvider, string) {
	ids := stock.Identifiers
	if ids.Finnhub != nil && *ids.Finnhub != "" {
		return qu.domestic, *ids.Finnhub
	}
	if ids.Yahoo != nil && *ids.Yahoo != "" {
		return qu.international, *ids.Yahoo
	}
	return qu.routeProvider(stock.Symbol), stock.Symbol
}

// GetQuote は登録を伴わないアドホックな相場照会です。キャッシュもレジストリ
// も経由せず、常にライブの値を返します。
func (qu *quoteUsecase) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	return qu.routeProvider(symbol).FetchQuote(ctx, symbol)
}

// GetPrice は登録済み銘柄の価格スナップショットをキャッシュ経由で返します。
func (qu *quoteUsecase) GetPrice(ctx context.Context, stockID string) (*StockPrice, error) {
	stock, err := qu.registry.FindByID(ctx, stockID)
	if err != nil {
		return nil, err
	}

	provider, symbol := qu.providerFor(stock)
	res, err := qu.cache.GetWithRefresh(ctx, stock.ID, symbol, provider)
	if err != nil {
		return nil, err
	}
	return &StockPrice{Stock: stock, Price: res}, nil
}

// TrackStock はシンボルをレジストリに登録（既登録なら再利用）し、価格
// スナップショットとあわせて返します。
func (qu *quoteUsecase) TrackStock(ctx context.Context, symbol string) (*TrackResult, error) {
	provider := qu.routeProvider(symbol)

	stock, created, err := qu.registry.FindOrCreate(ctx, provider.Source(), symbol,
		func(ctx context.Context) (*entity.StockProfile, error) {
			return provider.FetchProfile(ctx, symbol)
		})
	if err != nil {
		return nil, err
	}

	res, err := qu.cache.GetWithRefresh(ctx, stock.ID, symbol, provider)
	if err != nil {
		return nil, err
	}
	return &TrackResult{Stock: stock, Price: res, Created: created}, nil
}
