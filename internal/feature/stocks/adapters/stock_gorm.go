// Package adapters は stocks フィーチャーの永続化アダプタを提供します。
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	quoteentity "quote_backend/internal/feature/quotes/domain/entity"
	"quote_backend/internal/feature/stocks/domain/entity"
	"quote_backend/internal/feature/stocks/usecase"
)

// stockGorm は GORM を使った StockRepository 実装です。
type stockGorm struct {
	db *gorm.DB
}

// インターフェースを満たしているかのコンパイル時チェック
var _ usecase.StockRepository = (*stockGorm)(nil)

// NewStockRepository は stockGorm リポジトリを生成します。
func NewStockRepository(db *gorm.DB) *stockGorm {
	return &stockGorm{db: db}
}

// StockModel は stocks テーブルのレコードを表します。
// プロバイダ識別子は1カラムずつ持ち、一意インデックスで重複登録を防ぎます。
// NULL 同士は衝突しないため、識別子を持たない銘柄はいくつでも共存できます。
type StockModel struct {
	ID               string                   `gorm:"primaryKey;size:36"`
	Name             string                   `gorm:"size:255;not null"`
	Symbol           string                   `gorm:"size:32;not null;index"`
	Currency         string                   `gorm:"size:8"`
	Type             string                   `gorm:"size:32"`
	Exchange         string                   `gorm:"size:64"`
	FinnhubSymbol    *string                  `gorm:"column:finnhub_symbol;size:32;uniqueIndex"`
	YahooSymbol      *string                  `gorm:"column:yahoo_symbol;size:32;uniqueIndex"`
	ISIN             *string                  `gorm:"column:isin;size:12"`
	SEDOL            *string                  `gorm:"column:sedol;size:7"`
	Bloomberg        *string                  `gorm:"size:32"`
	FIGI             *string                  `gorm:"column:figi;size:12"`
	CorporateActions []entity.CorporateAction `gorm:"serializer:json"`
	AdjustmentFactor float64                  `gorm:"not null;default:1"`
	CreatedAt        time.Time                `gorm:"not null"`
	UpdatedAt        time.Time                `gorm:"not null"`
}

// TableName はマッピング先のテーブル名を指定します。
func (StockModel) TableName() string {
	return "stocks"
}

// ToEntity は StockModel をドメインエンティティに変換します。
func (m *StockModel) ToEntity() *entity.Stock {
	return &entity.Stock{
		ID:       m.ID,
		Name:     m.Name,
		Symbol:   m.Symbol,
		Currency: m.Currency,
		Type:     m.Type,
		Exchange: m.Exchange,
		Identifiers: entity.Identifiers{
			Finnhub:   m.FinnhubSymbol,
			Yahoo:     m.YahooSymbol,
			ISIN:      m.ISIN,
			SEDOL:     m.SEDOL,
			Bloomberg: m.Bloomberg,
			FIGI:      m.FIGI,
		},
		CorporateActions: m.CorporateActions,
		AdjustmentFactor: m.AdjustmentFactor,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// toStockModel はドメインエンティティを StockModel に変換します。
func toStockModel(s *entity.Stock) StockModel {
	return StockModel{
		ID:               s.ID,
		Name:             s.Name,
		Symbol:           s.Symbol,
		Currency:         s.Currency,
		Type:             s.Type,
		Exchange:         s.Exchange,
		FinnhubSymbol:    s.Identifiers.Finnhub,
		YahooSymbol:      s.Identifiers.Yahoo,
		ISIN:             s.Identifiers.ISIN,
		SEDOL:            s.Identifiers.SEDOL,
		Bloomberg:        s.Identifiers.Bloomberg,
		FIGI:             s.Identifiers.FIGI,
		CorporateActions: s.CorporateActions,
		AdjustmentFactor: s.AdjustmentFactor,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// identifierColumn はプロバイダ名を識別子カラムに解決します。
func identifierColumn(provider string) (string, error) {
	switch provider {
	case quoteentity.SourceFinnhub:
		return "finnhub_symbol", nil
	case quoteentity.SourceYahoo:
		return "yahoo_symbol", nil
	default:
		return "", fmt.Errorf("%w: %s", usecase.ErrUnknownProvider, provider)
	}
}

// FindByID は内部IDで銘柄を1件取得します。
func (r *stockGorm) FindByID(ctx context.Context, id string) (*entity.Stock, error) {
	var m StockModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// FindBySymbol はプロバイダ識別子で銘柄を1件取得します。
func (r *stockGorm) FindBySymbol(ctx context.Context, provider, symbol string) (*entity.Stock, error) {
	column, err := identifierColumn(provider)
	if err != nil {
		return nil, err
	}

	var m StockModel
	if err := r.db.WithContext(ctx).Where(column+" = ?", symbol).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrStockNotFound
		}
		return nil, err
	}
	return m.ToEntity(), nil
}

// Create は銘柄を新規登録します。識別子の一意制約に衝突した場合は
// ErrStockExists を返します(gorm.Config.TranslateError を有効にすること)。
func (r *stockGorm) Create(ctx context.Context, stock *entity.Stock) error {
	m := toStockModel(stock)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrStockExists
		}
		return err
	}
	return nil
}

// List は登録順で全銘柄を返します。
func (r *stockGorm) List(ctx context.Context) ([]entity.Stock, error) {
	var rows []StockModel
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	stocks := make([]entity.Stock, 0, len(rows))
	for _, m := range rows {
		stocks = append(stocks, *m.ToEntity())
	}
	return stocks, nil
}
