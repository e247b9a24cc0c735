// Package yahoo provides the international quote provider backed by the
// Yahoo Finance API via the piquette/finance-go library.
package yahoo

import (
	"context"
	"fmt"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/equity"

	"quote_backend/internal/feature/quotes/domain/entity"
	"quote_backend/internal/feature/quotes/usecase"
)

// YahooProvider はYahoo Financeから海外銘柄の相場を取得するQuoteProvider実装です。
// Yahoo FinanceはAPIキー不要で、取引所サフィックス付きシンボルを解決できます。
type YahooProvider struct {
	// getEquity はテストで差し替え可能な照会関数です。
	getEquity func(symbol string) (*finance.Equity, error)
}

// YahooProviderがQuoteProviderを実装していることをコンパイル時に検証します。
var _ usecase.QuoteProvider = (*YahooProvider)(nil)

// NewYahooProvider はYahooProviderの新しいインスタンスを生成します。
func NewYahooProvider() *YahooProvider {
	return &YahooProvider{getEquity: equity.Get}
}

// Source はプロバイダ名を返します。
func (y *YahooProvider) Source() string {
	return entity.SourceYahoo
}

// lookup は1銘柄を照会します。finance-goはcontextを受け取らないため、
// 呼び出し前にキャンセルを確認します。シンボルが未知の場合、ライブラリは
// (nil, nil) を返すので ErrNoData に正規化します。
func (y *YahooProvider) lookup(ctx context.Context, symbol string) (*finance.Equity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	eq, err := y.getEquity(symbol)
	if err != nil {
		return nil, fmt.Errorf("yahoo equity lookup: %w", err)
	}
	if eq == nil {
		return nil, usecase.ErrNoData
	}
	return eq, nil
}

// FetchQuote はYahoo Financeから現在値を取得します。市場価格が0の場合は
// データ無し（ErrNoData）として扱います。
func (y *YahooProvider) FetchQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	eq, err := y.lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}

	if eq.RegularMarketPrice == 0 {
		return nil, usecase.ErrNoData
	}

	return &entity.Quote{
		Symbol:           symbol,
		Current:          eq.RegularMarketPrice,
		High:             eq.RegularMarketDayHigh,
		Low:              eq.RegularMarketDayLow,
		Open:             eq.RegularMarketOpen,
		PreviousClose:    eq.RegularMarketPreviousClose,
		Change:           eq.RegularMarketChange,
		ChangePercent:    eq.RegularMarketChangePercent,
		FiftyTwoWeekHigh: eq.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  eq.FiftyTwoWeekLow,
		Volume:           int64(eq.RegularMarketVolume),
		MarketCap:        eq.MarketCap,
		Currency:         eq.CurrencyID,
		Source:           entity.SourceYahoo,
	}, nil
}

// FetchProfile はYahoo Financeから銘柄の基本情報を取得します。
func (y *YahooProvider) FetchProfile(ctx context.Context, symbol string) (*entity.StockProfile, error) {
	eq, err := y.lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}

	name := eq.LongName
	if name == "" {
		name = eq.ShortName
	}

	return &entity.StockProfile{
		Symbol:   eq.Symbol,
		Name:     name,
		Currency: eq.CurrencyID,
		Type:     string(eq.QuoteType),
		Exchange: eq.FullExchangeName,
	}, nil
}
