package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"quote_backend/internal/app/di"
	"quote_backend/internal/app/router"
	authadapters "quote_backend/internal/feature/auth/adapters"
	authhandler "quote_backend/internal/feature/auth/transport/handler"
	authusecase "quote_backend/internal/feature/auth/usecase"
	"quote_backend/internal/feature/quotes/adapters/yahoo"
	quotehandler "quote_backend/internal/feature/quotes/transport/handler"
	quotesusecase "quote_backend/internal/feature/quotes/usecase"
	searchhandler "quote_backend/internal/feature/search/transport/handler"
	searchusecase "quote_backend/internal/feature/search/usecase"
	stockadapters "quote_backend/internal/feature/stocks/adapters"
	stockhandler "quote_backend/internal/feature/stocks/transport/handler"
	stocksusecase "quote_backend/internal/feature/stocks/usecase"
	platformdb "quote_backend/internal/platform/db"
	platformhandler "quote_backend/internal/platform/http/handler"
	jwtmw "quote_backend/internal/platform/jwt"
	platformredis "quote_backend/internal/platform/redis"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserRepository(db)
	stockRepo := stockadapters.NewStockRepository(db)
	// スナップショットはRedisがあればRedis、なければSQLに保存
	snapshotRepo := di.NewSnapshotRepository(rdb, db)

	// Provider
	domestic := di.NewFinnhubProvider()
	international := yahoo.NewYahooProvider()

	// Usecase
	stockUC := stocksusecase.NewStockUsecase(stockRepo)
	priceCache := quotesusecase.NewPriceCache(snapshotRepo, quotesusecase.DefaultSnapshotMaxAge)
	quoteUC := quotesusecase.NewQuoteUsecase(domestic, international, priceCache, stockUC)
	authUC := authusecase.NewAuthUsecase(userRepo,
		jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), jwtmw.DefaultTokenTTL))
	searchUC := searchusecase.NewSearchUsecase(di.NewYahooSearch())

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	quoteH := quotehandler.NewQuoteHandler(quoteUC)
	stockH := stockhandler.NewStockHandler(stockUC)
	searchH := searchhandler.NewSearchHandler(searchUC)
	debugH := platformhandler.NewDebugHandler(db, rdb, quotesusecase.DefaultSnapshotMaxAge)

	// ルータ生成
	r := router.NewRouter(authH, quoteH, stockH, searchH, debugH)

	// シークレットチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	if os.Getenv("FINNHUB_API_KEY") == "" {
		log.Println("[WARN] FINNHUB_API_KEY is not set. Domestic quotes will fail.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
