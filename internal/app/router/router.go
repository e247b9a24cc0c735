package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "quote_backend/internal/feature/auth/transport/handler"
	quotehandler "quote_backend/internal/feature/quotes/transport/handler"
	searchhandler "quote_backend/internal/feature/search/transport/handler"
	stockhandler "quote_backend/internal/feature/stocks/transport/handler"
	"quote_backend/internal/platform/http/handler"
	jwtmw "quote_backend/internal/platform/jwt"
)

func NewRouter(authHandler *authhandler.AuthHandler, quotes *quotehandler.QuoteHandler,
	stocks *stockhandler.StockHandler, search *searchhandler.SearchHandler,
	debug *handler.DebugHandler) *gin.Engine {
	r := gin.Default()

	// CORSはルート登録より前に適用する
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/signup", authHandler.Signup)
	// ログイン（JWT 発行）
	r.POST("/login", authHandler.Login)

	// 認証必須のルート
	// r.Group("/") でルートグループを作成
	auth := r.Group("/")
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth.Use(jwtmw.AuthRequired())
	{
		// 相場のライブ取得
		auth.GET("/quote", quotes.GetQuote)
		// 登録済み銘柄の価格（スナップショット経由）
		auth.GET("/stocks/price", quotes.GetPrice)
		// 銘柄の登録（find-or-create）
		auth.POST("/stocks", quotes.TrackStock)
		// 登録済み銘柄の一覧と詳細
		auth.GET("/stocks", stocks.List)
		auth.GET("/stocks/detail", stocks.Detail)
		// 銘柄検索
		auth.GET("/search", search.Search)
		// 運用診断
		auth.GET("/debug", debug.Debug)
	}

	return r
}
