// Package dto は Yahoo Finance 検索APIのレスポンス型を定義します。
package dto

// SearchResponse は /v1/finance/search のレスポンスです。
// ニュース等の銘柄以外のセクションは使用しないため省略しています。
type SearchResponse struct {
	Count  int           `json:"count"`
	Quotes []SearchQuote `json:"quotes"`
}

// SearchQuote は検索結果1件分の銘柄情報です。
type SearchQuote struct {
	Symbol    string `json:"symbol"`
	ShortName string `json:"shortname"`
	LongName  string `json:"longname"`
	QuoteType string `json:"quoteType"`
	Exchange  string `json:"exchange"`
	ExchDisp  string `json:"exchDisp"`
}
