package adapters

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"quote_backend/internal/feature/quotes/domain/entity"
	"quote_backend/internal/feature/quotes/usecase"
)

// snapshotGorm はSQLデータベースを用いたSnapshotRepository実装です。
// Redisが構成されていない環境でのスナップショット保存先になります。
type snapshotGorm struct {
	db *gorm.DB
}

var _ usecase.SnapshotRepository = (*snapshotGorm)(nil)

// NewSnapshotRepository はsnapshotGormの新しいインスタンスを生成します。
func NewSnapshotRepository(db *gorm.DB) *snapshotGorm {
	return &snapshotGorm{db: db}
}

// SnapshotModel is the persistence model for price snapshots. One row per
// stock; a refresh overwrites the row. UpdatedAt is assigned by the cache
// layer, so gorm's automatic timestamp tracking is disabled.
type SnapshotModel struct {
	StockID          string  `gorm:"primaryKey;size:36"`
	Symbol           string  `gorm:"size:32;not null"`
	Current          float64 `gorm:"not null"`
	High             float64
	Low              float64
	Open             float64
	PreviousClose    float64
	Change           float64
	ChangePercent    float64
	FiftyTwoWeekHigh float64
	FiftyTwoWeekLow  float64
	Volume           int64
	MarketCap        int64
	Currency         string    `gorm:"size:8"`
	Source           string    `gorm:"size:16;not null"`
	UpdatedAt        time.Time `gorm:"not null;autoUpdateTime:false"`
}

// TableName はこのモデルのテーブル名を返します。
func (SnapshotModel) TableName() string {
	return "price_snapshots"
}

// ToEntity converts the persistence model to a domain entity.
func (m *SnapshotModel) ToEntity() *entity.PriceSnapshot {
	return &entity.PriceSnapshot{
		StockID: m.StockID,
		Quote: entity.Quote{
			Symbol:           m.Symbol,
			Current:          m.Current,
			High:             m.High,
			Low:              m.Low,
			Open:             m.Open,
			PreviousClose:    m.PreviousClose,
			Change:           m.Change,
			ChangePercent:    m.ChangePercent,
			FiftyTwoWeekHigh: m.FiftyTwoWeekHigh,
			FiftyTwoWeekLow:  m.FiftyTwoWeekLow,
			Volume:           m.Volume,
			MarketCap:        m.MarketCap,
			Currency:         m.Currency,
			Source:           m.Source,
		},
		UpdatedAt: m.UpdatedAt,
	}
}

func toSnapshotModel(s *entity.PriceSnapshot) SnapshotModel {
	return SnapshotModel{
		StockID:          s.StockID,
		Symbol:           s.Quote.Symbol,
		Current:          s.Quote.Current,
		High:             s.Quote.High,
		Low:              s.Quote.Low,
		Open:             s.Quote.Open,
		PreviousClose:    s.Quote.PreviousClose,
		Change:           s.Quote.Change,
		ChangePercent:    s.Quote.ChangePercent,
		FiftyTwoWeekHigh: s.Quote.FiftyTwoWeekHigh,
		FiftyTwoWeekLow:  s.Quote.FiftyTwoWeekLow,
		Volume:           s.Quote.Volume,
		MarketCap:        s.Quote.MarketCap,
		Currency:         s.Quote.Currency,
		Source:           s.Quote.Source,
		UpdatedAt:        s.UpdatedAt,
	}
}

// Find は指定された銘柄IDのスナップショットを検索します。
func (r *snapshotGorm) Find(ctx context.Context, stockID string) (*entity.PriceSnapshot, error) {
	var m SnapshotModel
	if err := r.db.WithContext(ctx).First(&m, "stock_id = ?", stockID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrSnapshotNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// Save はスナップショットを銘柄IDをキーに上書き保存します。
func (r *snapshotGorm) Save(ctx context.Context, snapshot *entity.PriceSnapshot) error {
	m := toSnapshotModel(snapshot)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "stock_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"symbol", "current", "high", "low", "open", "previous_close",
			"change", "change_percent", "fifty_two_week_high", "fifty_two_week_low",
			"volume", "market_cap", "currency", "source", "updated_at",
		}),
	}).Create(&m).Error
}
