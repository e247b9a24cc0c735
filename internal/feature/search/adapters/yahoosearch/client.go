// Package yahoosearch は Yahoo Finance の銘柄検索APIクライアントを提供します。
package yahoosearch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"quote_backend/internal/feature/search/adapters/yahoosearch/dto"
	"quote_backend/internal/feature/search/domain/entity"
	"quote_backend/internal/feature/search/usecase"
)

// YahooSearch は検索APIを呼び出す SearchProvider 実装です。
type YahooSearch struct {
	cfg    Config
	client *http.Client
}

// インターフェースを満たしているかのコンパイル時チェック
var _ usecase.SearchProvider = (*YahooSearch)(nil)

// NewYahooSearch は指定された設定とHTTPクライアントで YahooSearch を生成します。
func NewYahooSearch(cfg Config, client *http.Client) *YahooSearch {
	return &YahooSearch{cfg: cfg, client: client}
}

// Search はクエリに一致する銘柄候補を返します。
// ニュースは取得せず、銘柄候補は最大10件に絞ります。
func (y *YahooSearch) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("quotesCount", "10")
	params.Set("newsCount", "0")
	reqURL := fmt.Sprintf("%s/v1/finance/search?%s", y.cfg.BaseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := y.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("yahoo search request: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("failed to close response body", "error", cerr)
		}
	}()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo search http %d", resp.StatusCode)
	}

	var body dto.SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]entity.SearchResult, 0, len(body.Quotes))
	for _, item := range body.Quotes {
		// シンボルを持たないエントリ(インデックス等)は候補に含めない
		if item.Symbol == "" {
			continue
		}

		name := item.LongName
		if name == "" {
			name = item.ShortName
		}
		exchange := item.ExchDisp
		if exchange == "" {
			exchange = item.Exchange
		}

		results = append(results, entity.SearchResult{
			Symbol:   item.Symbol,
			Name:     name,
			Type:     item.QuoteType,
			Exchange: exchange,
		})
	}
	return results, nil
}
