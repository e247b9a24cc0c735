// Package handler はstocksフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"quote_backend/internal/api"
	"quote_backend/internal/feature/stocks/domain/entity"
	"quote_backend/internal/feature/stocks/usecase"
)

// StockUsecase は登録銘柄照会のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type StockUsecase interface {
	// FindByID は内部IDで登録銘柄を返します。
	FindByID(ctx context.Context, id string) (*entity.Stock, error)
	// List は登録済みの全銘柄を返します。
	List(ctx context.Context) ([]entity.Stock, error)
}

// StockHandler は登録銘柄のHTTPリクエストを処理します。
type StockHandler struct {
	uc StockUsecase
}

// NewStockHandler は指定されたusecaseでStockHandlerの新しいインスタンスを生成します。
func NewStockHandler(uc StockUsecase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List は登録済み銘柄の一覧を返します。
//
// エンドポイント例:
// GET /stocks
func (h *StockHandler) List(c *gin.Context) {
	stocks, err := h.uc.List(c.Request.Context())
	if err != nil {
		slog.Error("stock list failed", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to list stocks"})
		return
	}

	out := make([]api.StockResponse, 0, len(stocks))
	for i := range stocks {
		out = append(out, toStockResponse(&stocks[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Detail は登録銘柄1件の詳細(識別子・コーポレートアクション込み)を返します。
//
// エンドポイント例:
// GET /stocks/detail?stockId=1b4e28ba-2fa1-11d2-883f-0016d3cca427
func (h *StockHandler) Detail(c *gin.Context) {
	stockID := c.Query("stockId")
	if stockID == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "stockId is required"})
		return
	}

	stock, err := h.uc.FindByID(c.Request.Context(), stockID)
	if err != nil {
		if errors.Is(err, usecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "stock not found"})
			return
		}
		slog.Error("stock detail failed", "stock_id", stockID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to load stock"})
		return
	}

	actions := make([]api.CorporateActionItem, 0, len(stock.CorporateActions))
	for _, ca := range stock.CorporateActions {
		actions = append(actions, api.CorporateActionItem{
			Type:        ca.Type,
			Date:        ca.Date,
			Factor:      ca.Factor,
			Description: ca.Description,
		})
	}

	c.JSON(http.StatusOK, api.StockDetailResponse{
		StockResponse:    toStockResponse(stock),
		CorporateActions: actions,
		UpdatedAt:        stock.UpdatedAt,
	})
}

// toStockResponse は登録銘柄エンティティをレスポンスDTOに変換します。
func toStockResponse(s *entity.Stock) api.StockResponse {
	return api.StockResponse{
		ID:       s.ID,
		Name:     s.Name,
		Symbol:   s.Symbol,
		Currency: s.Currency,
		Type:     s.Type,
		Exchange: s.Exchange,
		Identifiers: api.StockIdentifiers{
			Finnhub:   s.Identifiers.Finnhub,
			Yahoo:     s.Identifiers.Yahoo,
			ISIN:      s.Identifiers.ISIN,
			SEDOL:     s.Identifiers.SEDOL,
			Bloomberg: s.Identifiers.Bloomberg,
			FIGI:      s.Identifiers.FIGI,
		},
		AdjustmentFactor: s.AdjustmentFactor,
		CreatedAt:        s.CreatedAt,
	}
}
