package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"quote_backend/internal/feature/quotes/domain/entity"
	"quote_backend/internal/feature/quotes/usecase"
	stockentity "quote_backend/internal/feature/stocks/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockStockRegistry はStockRegistryインターフェースのモック実装です。
type mockStockRegistry struct {
	FindByIDFunc     func(ctx context.Context, id string) (*stockentity.Stock, error)
	FindOrCreateFunc func(ctx context.Context, provider, symbol string,
		fetch func(context.Context) (*entity.StockProfile, error)) (*stockentity.Stock, bool, error)
}

// FindByID はモックのFindByID関数を呼び出します。
func (m *mockStockRegistry) FindByID(ctx context.Context, id string) (*stockentity.Stock, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, errors.New("stock not found")
}

// FindOrCreate はモックのFindOrCreate関数を呼び出します。
func (m *mockStockRegistry) FindOrCreate(ctx context.Context, provider, symbol string,
	fetch func(context.Context) (*entity.StockProfile, error)) (*stockentity.Stock, bool, error) {
	if m.FindOrCreateFunc != nil {
		return m.FindOrCreateFunc(ctx, provider, symbol, fetch)
	}
	return &stockentity.Stock{ID: "stock-1", Symbol: symbol}, false, nil
}

func strPtr(s string) *string { return &s }

// TestQuoteUsecase_GetQuote はアドホック照会のプロバイダ振り分けを検証します。
func TestQuoteUsecase_GetQuote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		symbol     string
		wantSource string
	}{
		{name: "success: plain symbol goes to the domestic provider", symbol: "AAPL", wantSource: "finnhub"},
		{name: "success: suffixed symbol goes to the international provider", symbol: "LLOY.L", wantSource: "yahoo"},
		{name: "success: share-class suffix goes to the international provider", symbol: "BRK.B", wantSource: "yahoo"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			domesticCalls, intlCalls := 0, 0
			domestic := &mockQuoteProvider{
				source: "finnhub",
				FetchQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
					domesticCalls++
					return &entity.Quote{Symbol: symbol, Current: 1, Source: "finnhub"}, nil
				},
			}
			international := &mockQuoteProvider{
				source: "yahoo",
				FetchQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
					intlCalls++
					return &entity.Quote{Symbol: symbol, Current: 2, Source: "yahoo"}, nil
				},
			}

			uc := usecase.NewQuoteUsecase(domestic, international,
				usecase.NewPriceCache(&mockSnapshotRepository{}, 0), &mockStockRegistry{})
			quote, err := uc.GetQuote(context.Background(), tt.symbol)

			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, quote.Source)
			assert.Equal(t, tt.symbol, quote.Symbol)
			if tt.wantSource == "finnhub" {
				assert.Equal(t, 1, domesticCalls)
				assert.Zero(t, intlCalls)
			} else {
				assert.Equal(t, 1, intlCalls)
				assert.Zero(t, domesticCalls)
			}
		})
	}
}

// TestQuoteUsecase_GetQuote_NoData はプロバイダにデータが無い場合にErrNoDataが伝播することを検証します。
func TestQuoteUsecase_GetQuote_NoData(t *testing.T) {
	t.Parallel()

	domestic := &mockQuoteProvider{
		source: "finnhub",
		FetchQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
			return nil, usecase.ErrNoData
		},
	}

	uc := usecase.NewQuoteUsecase(domestic, &mockQuoteProvider{source: "yahoo"},
		usecase.NewPriceCache(&mockSnapshotRepository{}, 0), &mockStockRegistry{})
	quote, err := uc.GetQuote(context.Background(), "NOSUCH")

	assert.Nil(t, quote)
	assert.ErrorIs(t, err, usecase.ErrNoData)
}

// TestQuoteUsecase_GetPrice は登録銘柄の価格取得とプロバイダ選択を検証します。
func TestQuoteUsecase_GetPrice(t *testing.T) {
	t.Parallel()

	t.Run("success: finnhub identifier selects the domestic provider", func(t *testing.T) {
		t.Parallel()

		var fetchedSymbol string
		domestic := &mockQuoteProvider{
			source: "finnhub",
			FetchQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				fetchedSymbol = symbol
				return &entity.Quote{Symbol: symbol, Current: 190.5, Source: "finnhub"}, nil
			},
		}
		registry := &mockStockRegistry{
			FindByIDFunc: func(ctx context.Context, id string) (*stockentity.Stock, error) {
				return &stockentity.Stock{
					ID:          id,
					Symbol:      "AAPL",
					Identifiers: stockentity.Identifiers{Finnhub: strPtr("AAPL")},
				}, nil
			},
		}

		uc := usecase.NewQuoteUsecase(domestic, &mockQuoteProvider{source: "yahoo"},
			usecase.NewPriceCache(&mockSnapshotRepository{}, 0), registry)
		sp, err := uc.GetPrice(context.Background(), "stock-1")

		require.NoError(t, err)
		assert.Equal(t, "AAPL", fetchedSymbol)
		assert.Equal(t, "stock-1", sp.Stock.ID)
		assert.False(t, sp.Price.FromCache)
		assert.Equal(t, 190.5, sp.Price.Snapshot.Quote.Current)
	})

	t.Run("success: yahoo identifier selects the international provider", func(t *testing.T) {
		t.Parallel()

		intlCalls := 0
		international := &mockQuoteProvider{
			source: "yahoo",
			FetchQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				intlCalls++
				return &entity.Quote{Symbol: symbol, Current: 54.3, Source: "yahoo"}, nil
			},
		}
		registry := &mockStockRegistry{
			FindByIDFunc: func(ctx context.Context, id string) (*stockentity.Stock, error) {
				return &stockentity.Stock{
					ID:          id,
					Symbol:      "LLOY.L",
					Identifiers: stockentity.Identifiers{Yahoo: strPtr("LLOY.L")},
				}, nil
			},
		}

		uc := usecase.NewQuoteUsecase(&mockQuoteProvider{source: "finnhub"}, international,
			usecase.NewPriceCache(&mockSnapshotRepository{}, 0), registry)
		sp, err := uc.GetPrice(context.Background(), "stock-2")

		require.NoError(t, err)
		assert.Equal(t, 1, intlCalls)
		assert.Equal(t, "yahoo", sp.Price.Snapshot.Quote.Source)
	})

	t.Run("success: missing identifiers fall back to symbol routing", func(t *testing.T) {
		t.Parallel()

		intlCalls := 0
		international := &mockQuoteProvider{
			source: "yahoo",
			FetchQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				intlCalls++
				return &entity.Quote{Symbol: symbol, Current: 2500, Source: "yahoo"}, nil
			},
		}
		registry := &mockStockRegistry{
			FindByIDFunc: func(ctx context.Context, id string) (*stockentity.Stock, error) {
				return &stockentity.Stock{ID: id, Symbol: "7203.T"}, nil
			},
		}

		uc := usecase.NewQuoteUsecase(&mockQuoteProvider{source: "finnhub"}, international,
			usecase.NewPriceCache(&mockSnapshotRepository{}, 0), registry)
		_, err := uc.GetPrice(context.Background(), "stock-3")

		require.NoError(t, err)
		assert.Equal(t, 1, intlCalls)
	})

	t.Run("success: fresh snapshot is served without touching the provider", func(t *testing.T) {
		t.Parallel()

		fetchCalls := 0
		domestic := &mockQuoteProvider{
			source: "finnhub",
			FetchQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				fetchCalls++
				return &entity.Quote{Symbol: symbol, Current: 1}, nil
			},
		}
		snapshots := &mockSnapshotRepository{
			FindFunc: func(ctx context.Context, stockID string) (*entity.PriceSnapshot, error) {
				return &entity.PriceSnapshot{
					StockID:   stockID,
					Quote:     entity.Quote{Symbol: "AAPL", Current: 188, Source: "finnhub"},
					UpdatedAt: time.Now().Add(-time.Minute),
				}, nil
			},
		}
		registry := &mockStockRegistry{
			FindByIDFunc: func(ctx context.Context, id string) (*stockentity.Stock, error) {
				return &stockentity.Stock{ID: id, Symbol: "AAPL"}, nil
			},
		}

		uc := usecase.NewQuoteUsecase(domestic, &mockQuoteProvider{source: "yahoo"},
			usecase.NewPriceCache(snapshots, 15*time.Minute), registry)
		sp, err := uc.GetPrice(context.Background(), "stock-1")

		require.NoError(t, err)
		assert.True(t, sp.Price.FromCache)
		assert.Zero(t, fetchCalls)
	})

	t.Run("failure: unknown stock id propagates", func(t *testing.T) {
		t.Parallel()

		notFound := errors.New("stock not found")
		registry := &mockStockRegistry{
			FindByIDFunc: func(ctx context.Context, id string) (*stockentity.Stock, error) {
				return nil, notFound
			},
		}

		uc := usecase.NewQuoteUsecase(&mockQuoteProvider{source: "finnhub"}, &mockQuoteProvider{source: "yahoo"},
			usecase.NewPriceCache(&mockSnapshotRepository{}, 0), registry)
		sp, err := uc.GetPrice(context.Background(), "missing")

		assert.Nil(t, sp)
		assert.ErrorIs(t, err, notFound)
	})
}

// TestQuoteUsecase_TrackStock は銘柄登録とスナップショット取得の連携を検証します。
func TestQuoteUsecase_TrackStock(t *testing.T) {
	t.Parallel()

	t.Run("success: new symbol is registered via the routed provider", func(t *testing.T) {
		t.Parallel()

		international := &mockQuoteProvider{
			source: "yahoo",
			FetchQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
				return &entity.Quote{Symbol: symbol, Current: 54.3, Currency: "GBp", Source: "yahoo"}, nil
			},
			FetchProfileFunc: func(ctx context.Context, symbol string) (*entity.StockProfile, error) {
				return &entity.StockProfile{Symbol: symbol, Name: "Lloyds Banking Group", Currency: "GBp"}, nil
			},
		}
		registry := &mockStockRegistry{
			FindOrCreateFunc: func(ctx context.Context, provider, symbol string,
				fetch func(context.Context) (*entity.StockProfile, error)) (*stockentity.Stock, bool, error) {
				assert.Equal(t, "yahoo", provider)
				assert.Equal(t, "LLOY.L", symbol)

				profile, err := fetch(ctx)
				require.NoError(t, err)
				assert.Equal(t, "Lloyds Banking Group", profile.Name)

				return &stockentity.Stock{
					ID:          "stock-9",
					Symbol:      symbol,
					Name:        profile.Name,
					Identifiers: stockentity.Identifiers{Yahoo: strPtr(symbol)},
				}, true, nil
			},
		}

		uc := usecase.NewQuoteUsecase(&mockQuoteProvider{source: "finnhub"}, international,
			usecase.NewPriceCache(&mockSnapshotRepository{}, 0), registry)
		res, err := uc.TrackStock(context.Background(), "LLOY.L")

		require.NoError(t, err)
		assert.True(t, res.Created)
		assert.Equal(t, "stock-9", res.Stock.ID)
		assert.False(t, res.Price.FromCache)
		assert.Equal(t, 54.3, res.Price.Snapshot.Quote.Current)
	})

	t.Run("success: existing symbol is reused", func(t *testing.T) {
		t.Parallel()

		registry := &mockStockRegistry{
			FindOrCreateFunc: func(ctx context.Context, provider, symbol string,
				fetch func(context.Context) (*entity.StockProfile, error)) (*stockentity.Stock, bool, error) {
				return &stockentity.Stock{ID: "stock-1", Symbol: symbol}, false, nil
			},
		}

		uc := usecase.NewQuoteUsecase(&mockQuoteProvider{source: "finnhub"}, &mockQuoteProvider{source: "yahoo"},
			usecase.NewPriceCache(&mockSnapshotRepository{}, 0), registry)
		res, err := uc.TrackStock(context.Background(), "AAPL")

		require.NoError(t, err)
		assert.False(t, res.Created)
		assert.Equal(t, "stock-1", res.Stock.ID)
	})

	t.Run("failure: unknown symbol propagates no data", func(t *testing.T) {
		t.Parallel()

		registry := &mockStockRegistry{
			FindOrCreateFunc: func(ctx context.Context, provider, symbol string,
				fetch func(context.Context) (*entity.StockProfile, error)) (*stockentity.Stock, bool, error) {
				return nil, false, usecase.ErrNoData
			},
		}

		uc := usecase.NewQuoteUsecase(&mockQuoteProvider{source: "finnhub"}, &mockQuoteProvider{source: "yahoo"},
			usecase.NewPriceCache(&mockSnapshotRepository{}, 0), registry)
		res, err := uc.TrackStock(context.Background(), "NOSUCH")

		assert.Nil(t, res)
		assert.ErrorIs(t, err, usecase.ErrNoData)
	})
}
