package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"quote_backend/internal/feature/quotes/adapters/finnhub/dto"
	"quote_backend/internal/feature/quotes/domain/entity"
	"quote_backend/internal/feature/quotes/usecase"
)

// FinnhubProvider はFinnhub外部APIから国内銘柄の相場を取得するQuoteProvider実装です。
type FinnhubProvider struct {
	cfg    Config
	client *http.Client
}

// FinnhubProviderがQuoteProviderを実装していることをコンパイル時に検証します。
var _ usecase.QuoteProvider = (*FinnhubProvider)(nil)

// NewFinnhubProvider は指定された設定とHTTPクライアントでFinnhubProviderの新しいインスタンスを生成します。
func NewFinnhubProvider(cfg Config, client *http.Client) *FinnhubProvider {
	return &FinnhubProvider{cfg: cfg, client: client}
}

// Source はプロバイダ名を返します。
func (f *FinnhubProvider) Source() string {
	return entity.SourceFinnhub
}

// FetchQuote はFinnhubの/quoteエンドポイントから現在値を取得します。
// Finnhubは未知の銘柄に全ゼロのレスポンスを返すため、c == 0 はデータ無し
// （ErrNoData）として扱います。
func (f *FinnhubProvider) FetchQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	var body dto.QuoteResponse
	if err := f.get(ctx, "/quote", symbol, &body); err != nil {
		return nil, err
	}

	if body.Current == 0 {
		return nil, usecase.ErrNoData
	}

	return &entity.Quote{
		Symbol:        symbol,
		Current:       body.Current,
		High:          body.High,
		Low:           body.Low,
		Open:          body.Open,
		PreviousClose: body.PreviousClose,
		Change:        body.Change,
		ChangePercent: body.ChangePercent,
		Source:        entity.SourceFinnhub,
	}, nil
}

// FetchProfile はFinnhubの/stock/profile2エンドポイントから銘柄の基本情報を
// 取得します。未知の銘柄には空オブジェクトが返るため ErrNoData として扱います。
func (f *FinnhubProvider) FetchProfile(ctx context.Context, symbol string) (*entity.StockProfile, error) {
	var body dto.ProfileResponse
	if err := f.get(ctx, "/stock/profile2", symbol, &body); err != nil {
		return nil, err
	}

	if body.Ticker == "" && body.Name == "" {
		return nil, usecase.ErrNoData
	}

	ticker := body.Ticker
	if ticker == "" {
		ticker = symbol
	}
	return &entity.StockProfile{
		Symbol:   ticker,
		Name:     body.Name,
		Currency: body.Currency,
		Exchange: body.Exchange,
	}, nil
}

// get は認証ヘッダ付きでFinnhubのエンドポイントを呼び出し、JSONレスポンスを
// outへデコードします。APIキー未設定の場合は ErrMissingAPIKey を返します。
func (f *FinnhubProvider) get(ctx context.Context, path, symbol string, out any) error {
	if f.cfg.APIKey == "" {
		return usecase.ErrMissingAPIKey
	}

	q := url.Values{}
	q.Set("symbol", symbol)
	u := fmt.Sprintf("%s%s?%s", f.cfg.BaseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("X-Finnhub-Token", f.cfg.APIKey)

	res, err := f.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return fmt.Errorf("finnhub http %d", res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return err
	}
	return nil
}
