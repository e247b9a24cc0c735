// Package handler はsearchフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"quote_backend/internal/api"
	"quote_backend/internal/feature/search/domain/entity"
	"quote_backend/internal/feature/search/usecase"
)

// SearchUsecase は銘柄検索のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type SearchUsecase interface {
	Search(ctx context.Context, query string) ([]entity.SearchResult, error)
}

// SearchHandler は銘柄検索のHTTPリクエストを処理します。
type SearchHandler struct {
	uc SearchUsecase
}

// NewSearchHandler は指定されたusecaseでSearchHandlerの新しいインスタンスを生成します。
func NewSearchHandler(uc SearchUsecase) *SearchHandler {
	return &SearchHandler{uc: uc}
}

// Search はクエリに一致する銘柄候補を返します。
//
// エンドポイント例:
// GET /search?q=apple
func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")

	results, err := h.uc.Search(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "q is required"})
			return
		}
		slog.Error("search failed", "query", query, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "search failed"})
		return
	}

	out := make([]api.SearchItem, 0, len(results))
	for _, r := range results {
		out = append(out, api.SearchItem{
			Symbol:   r.Symbol,
			Name:     r.Name,
			Type:     r.Type,
			Exchange: r.Exchange,
		})
	}
	c.JSON(http.StatusOK, out)
}
