// Package api は各フィーチャーのHTTPトランスポートで共有する
// リクエスト/レスポンス型を定義します。
package api

import "time"

// ErrorResponse は全エンドポイント共通のエラーレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse は処理結果のメッセージのみを返すレスポンスです。
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse はログイン成功時に発行されるJWTトークンを返します。
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupRequest は POST /signup のリクエストボディです。
// Ginのbindingタグでバリデーションします(必須・メール形式・パスワード長)。
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest は POST /login のリクエストボディです。
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// QuoteResponse は外部プロバイダから取得した気配値1件分です。
type QuoteResponse struct {
	Symbol           string  `json:"symbol"`
	Current          float64 `json:"current"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Open             float64 `json:"open"`
	PreviousClose    float64 `json:"previousClose"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"changePercent"`
	FiftyTwoWeekHigh float64 `json:"fiftyTwoWeekHigh,omitempty"`
	FiftyTwoWeekLow  float64 `json:"fiftyTwoWeekLow,omitempty"`
	Volume           int64   `json:"volume,omitempty"`
	MarketCap        int64   `json:"marketCap,omitempty"`
	Currency         string  `json:"currency,omitempty"`
	Source           string  `json:"source"`
}

// StockIdentifiers は銘柄が持つプロバイダ別の識別子セットです。
// 未設定の識別子はレスポンスから省略されます。
type StockIdentifiers struct {
	Finnhub   *string `json:"finnhub,omitempty"`
	Yahoo     *string `json:"yahoo,omitempty"`
	ISIN      *string `json:"isin,omitempty"`
	SEDOL     *string `json:"sedol,omitempty"`
	Bloomberg *string `json:"bloomberg,omitempty"`
	FIGI      *string `json:"figi,omitempty"`
}

// StockResponse は登録銘柄1件分です。
type StockResponse struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Symbol           string           `json:"symbol"`
	Currency         string           `json:"currency,omitempty"`
	Type             string           `json:"type,omitempty"`
	Exchange         string           `json:"exchange,omitempty"`
	Identifiers      StockIdentifiers `json:"identifiers"`
	AdjustmentFactor float64          `json:"adjustmentFactor"`
	CreatedAt        time.Time        `json:"createdAt"`
}

// CorporateActionItem は株式分割・配当等のコーポレートアクション1件分です。
type CorporateActionItem struct {
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Factor      float64   `json:"factor,omitempty"`
	Description string    `json:"description,omitempty"`
}

// StockDetailResponse は GET /stocks/detail のレスポンスです。
// 一覧用のフィールドに加えてコーポレートアクション履歴を含みます。
type StockDetailResponse struct {
	StockResponse
	CorporateActions []CorporateActionItem `json:"corporateActions"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

// SnapshotResponse は価格スナップショットと鮮度メタデータです。
type SnapshotResponse struct {
	Quote     QuoteResponse `json:"quote"`
	UpdatedAt time.Time     `json:"updatedAt"`
	FromCache bool          `json:"fromCache"`
	Stale     bool          `json:"stale"`
}

// PriceResponse は GET /stocks/price のレスポンスです。
type PriceResponse struct {
	Stock StockResponse    `json:"stock"`
	Price SnapshotResponse `json:"price"`
}

// TrackStockResponse は POST /stocks のレスポンスです。
// Created は今回のリクエストで銘柄が新規登録されたかを示します。
type TrackStockResponse struct {
	Stock   StockResponse    `json:"stock"`
	Price   SnapshotResponse `json:"price"`
	Created bool             `json:"created"`
}

// SearchItem は銘柄検索結果1件分です。
type SearchItem struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	Exchange string `json:"exchange"`
}
