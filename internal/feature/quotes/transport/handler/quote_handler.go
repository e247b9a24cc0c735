// Package handler はquotesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"quote_backend/internal/api"
	"quote_backend/internal/feature/quotes/domain/entity"
	"quote_backend/internal/feature/quotes/usecase"
	stockentity "quote_backend/internal/feature/stocks/domain/entity"
	stockusecase "quote_backend/internal/feature/stocks/usecase"
)

// QuoteUsecase は相場照会のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type QuoteUsecase interface {
	// GetQuote は登録を伴わないライブの気配値照会です。
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
	// GetPrice は登録済み銘柄の価格スナップショットをキャッシュ経由で返します。
	GetPrice(ctx context.Context, stockID string) (*usecase.StockPrice, error)
	// TrackStock はシンボルを登録し、価格スナップショットとあわせて返します。
	TrackStock(ctx context.Context, symbol string) (*usecase.TrackResult, error)
}

// QuoteHandler は相場データのHTTPリクエストを処理します。
type QuoteHandler struct {
	uc QuoteUsecase
}

// NewQuoteHandler は指定されたusecaseでQuoteHandlerの新しいインスタンスを生成します。
func NewQuoteHandler(uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetQuote はシンボルのライブ気配値をJSONで返します。
//
// エンドポイント例:
// GET /quote?symbol=AAPL
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "symbol is required"})
		return
	}

	quote, err := h.uc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, usecase.ErrNoData) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no data for symbol"})
			return
		}
		slog.Error("quote fetch failed", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to fetch quote"})
		return
	}

	c.JSON(http.StatusOK, toQuoteResponse(quote))
}

// GetPrice は登録済み銘柄の価格スナップショットを返します。
// キャッシュが新鮮ならそれを、古ければ再取得した値を返します。
//
// エンドポイント例:
// GET /stocks/price?stockId=1b4e28ba-2fa1-11d2-883f-0016d3cca427
func (h *QuoteHandler) GetPrice(c *gin.Context) {
	stockID := c.Query("stockId")
	if stockID == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "stockId is required"})
		return
	}

	sp, err := h.uc.GetPrice(c.Request.Context(), stockID)
	if err != nil {
		if errors.Is(err, stockusecase.ErrStockNotFound) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "stock not found"})
			return
		}
		slog.Error("price fetch failed", "stock_id", stockID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "price unavailable"})
		return
	}

	c.JSON(http.StatusOK, api.PriceResponse{
		Stock: toStockResponse(sp.Stock),
		Price: toSnapshotResponse(sp.Price),
	})
}

// TrackStock はシンボルを登録銘柄に追加し、初回スナップショットとあわせて返します。
// 既に登録済みの場合は既存銘柄を返し、createdはfalseになります。
//
// エンドポイント例:
// POST /stocks?symbol=LLOY.L
func (h *QuoteHandler) TrackStock(c *gin.Context) {
	symbol := c.Query("symbol")
	if symbol == "" {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "symbol is required"})
		return
	}

	res, err := h.uc.TrackStock(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, usecase.ErrNoData) {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "no data for symbol"})
			return
		}
		slog.Error("track stock failed", "symbol", symbol, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to track stock"})
		return
	}

	slog.Info("stock tracked", "symbol", symbol, "stock_id", res.Stock.ID, "created", res.Created)
	c.JSON(http.StatusOK, api.TrackStockResponse{
		Stock:   toStockResponse(res.Stock),
		Price:   toSnapshotResponse(res.Price),
		Created: res.Created,
	})
}

// toQuoteResponse はドメインのQuoteをレスポンスDTOに変換します。
func toQuoteResponse(q *entity.Quote) api.QuoteResponse {
	return api.QuoteResponse{
		Symbol:           q.Symbol,
		Current:          q.Current,
		High:             q.High,
		Low:              q.Low,
		Open:             q.Open,
		PreviousClose:    q.PreviousClose,
		Change:           q.Change,
		ChangePercent:    q.ChangePercent,
		FiftyTwoWeekHigh: q.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  q.FiftyTwoWeekLow,
		Volume:           q.Volume,
		MarketCap:        q.MarketCap,
		Currency:         q.Currency,
		Source:           q.Source,
	}
}

// toSnapshotResponse は価格スナップショットと鮮度フラグをDTOに変換します。
func toSnapshotResponse(p *usecase.PriceResult) api.SnapshotResponse {
	return api.SnapshotResponse{
		Quote:     toQuoteResponse(&p.Snapshot.Quote),
		UpdatedAt: p.Snapshot.UpdatedAt,
		FromCache: p.FromCache,
		Stale:     p.Stale,
	}
}

// toStockResponse は登録銘柄エンティティをレスポンスDTOに変換します。
func toStockResponse(s *stockentity.Stock) api.StockResponse {
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
