// Package usecase は銘柄検索のユースケース層を提供します。
package usecase

import (
	"context"
	"errors"
	"strings"

	"quote_backend/internal/feature/search/domain/entity"
)

// ErrEmptyQuery は検索クエリが空のときに返されます。
var ErrEmptyQuery = errors.New("search query is empty")

// SearchProvider は外部の銘柄検索APIを抽象化します。
type SearchProvider interface {
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}

// searchUsecase は SearchProvider への薄いファサードです。
type searchUsecase struct {
	provider SearchProvider
}

// NewSearchUsecase は searchUsecase を生成します。
func NewSearchUsecase(provider SearchProvider) *searchUsecase {
	return &searchUsecase{provider: provider}
}

// Search は空白を除去したクエリで銘柄候補を検索します。
// クエリが空の場合は ErrEmptyQuery を返します。
func (su *searchUsecase) Search(ctx context.Context, query string) ([]entity.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	return su.provider.Search(ctx, query)
}
