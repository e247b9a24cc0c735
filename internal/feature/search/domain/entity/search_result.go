// Package entity は検索フィーチャーのドメイン型を定義します。
package entity

// SearchResult は外部プロバイダの銘柄検索1件分の結果です。
type SearchResult struct {
	Symbol   string `json:"symbol"`   // プロバイダ固有のティッカーシンボル
	Name     string `json:"name"`     // 企業・銘柄名
	Type     string `json:"type"`     // EQUITY / ETF などの種別
	Exchange string `json:"exchange"` // 上場取引所の表示名
}
