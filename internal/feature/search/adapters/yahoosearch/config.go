package yahoosearch

import (
	"os"
	"time"
)

// DefaultBaseURL は Yahoo Finance 検索APIの既定のベースURLです。
const DefaultBaseURL = "https://query1.finance.yahoo.com"

// Config は Yahoo 検索クライアントの設定です。検索APIはAPIキー不要です。
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// LoadConfig は環境変数から設定を読み込みます。
func LoadConfig() Config {
	base := os.Getenv("YAHOO_SEARCH_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}

	return Config{
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
