package handler

import (
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// DebugHandler は運用診断用の /debug エンドポイントを処理します。
// シークレットそのものは返さず、設定の有無と依存サービスの疎通状況のみ報告します。
type DebugHandler struct {
	db     *gorm.DB
	rdb    *redis.Client
	maxAge time.Duration
}

// NewDebugHandler はDebugHandlerの新しいインスタンスを生成します。
// rdbはRedisなし構成ではnilを許容します。
func NewDebugHandler(db *gorm.DB, rdb *redis.Client, maxAge time.Duration) *DebugHandler {
	return &DebugHandler{db: db, rdb: rdb, maxAge: maxAge}
}

// Debug はランタイム情報と依存サービスの状態を返します。
//
// エンドポイント例:
// GET /debug
func (h *DebugHandler) Debug(c *gin.Context) {
	dbOK := false
	if h.db != nil {
		if sqlDB, err := h.db.DB(); err == nil {
			dbOK = sqlDB.PingContext(c.Request.Context()) == nil
		}
	}

	redisOK := false
	if h.rdb != nil {
		redisOK = h.rdb.Ping(c.Request.Context()).Err() == nil
	}

	c.JSON(200, gin.H{
		"goVersion":            runtime.Version(),
		"finnhubKeyConfigured": os.Getenv("FINNHUB_API_KEY") != "",
		"redisConnected":       redisOK,
		"databaseReachable":    dbOK,
		"snapshotMaxAge":       h.maxAge.String(),
	})
}
