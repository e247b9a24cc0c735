// Package db はgormによるデータベース接続の初期化を提供します。
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "quote_backend/internal/feature/auth/domain/entity"
	quoteadapters "quote_backend/internal/feature/quotes/adapters"
	stockadapters "quote_backend/internal/feature/stocks/adapters"
)

// connectTimeout はDB起動待ちを含む接続リトライの上限時間です。
const connectTimeout = 60 * time.Second

// retryInterval は接続失敗後に次の試行まで待つ時間です。
const retryInterval = 3 * time.Second

// Config はデータベース接続に必要な設定値を保持します。
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	// InstanceName はCloud SQLのインスタンス接続名（project:region:instance）。
	// 設定されている場合はHost/PortよりUnixソケット接続を優先します。
	InstanceName string
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	return Config{
		User:         os.Getenv("DB_USER"),
		Password:     os.Getenv("DB_PASSWORD"),
		Name:         os.Getenv("DB_NAME"),
		Host:         os.Getenv("DB_HOST"),
		Port:         os.Getenv("DB_PORT"),
		InstanceName: os.Getenv("INSTANCE_CONNECTION_NAME"),
	}
}

// BuildDSN は設定からPostgreSQL用のDSN文字列を生成します。
func BuildDSN(cfg Config) string {
	if cfg.InstanceName != "" {
		return fmt.Sprintf("host=/cloudsql/%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			cfg.InstanceName, cfg.User, cfg.Password, cfg.Name)
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name)
}

// Opener はDSNを受け取ってgormのDBハンドルを開く関数型です。
// テストではモックに差し替えます。
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry は接続に成功するまでopenerを繰り返し呼び出します。
// コンテナ起動直後などDB側の準備が整っていない間はretryIntervalごとに
// 再試行し、timeoutを超えたら最後のエラーを返します。
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after %s: %w", timeout, err)
		}
		log.Printf("database connect failed, retrying in %s: %v", retryInterval, err)
		time.Sleep(retryInterval)
	}
}

func gormOpener(dsn string) (*gorm.DB, error) {
	// TranslateErrorにより一意制約違反がドライバ非依存の
	// gorm.ErrDuplicatedKeyへ正規化されます。
	return gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// OpenDB は環境変数の設定でデータベースへ接続し、必要に応じて
// マイグレーションを実行します。接続できない場合はプロセスを終了します。
func OpenDB() *gorm.DB {
	cfg := LoadConfigFromEnv()
	dsn := BuildDSN(cfg)

	db, err := ConnectWithRetry(dsn, connectTimeout, gormOpener)
	if err != nil {
		log.Fatalf("DB connect failed: %v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&authentity.User{},
			&stockadapters.StockModel{},
			&quoteadapters.SnapshotModel{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
