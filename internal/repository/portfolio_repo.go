package repository

import (
	"context"

	"gorm.io/gorm"

	"stock-advisor/internal/model"
)

// AggregatedLot is one symbol's lots collapsed at read time. AvgPrice
// is the arithmetic mean over lots, not quantity-weighted.
type AggregatedLot struct {
	StockSymbol   string  `json:"stock_symbol"`
	TotalQuantity float64 `json:"total_quantity"`
	AvgPrice      float64 `json:"avg_price"`
}

type PortfolioRepository interface {
	Create(ctx context.Context, lot *model.PortfolioLot) error
	DeleteBySymbol(ctx context.Context, userID uint, symbol string) error
	AggregateByUser(ctx context.Context, userID uint) ([]AggregatedLot, error)
}

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{
		db: db,
	}
}

func (r *portfolioRepository) Create(ctx context.Context, lot *model.PortfolioLot) error {
	return r.db.WithContext(ctx).Create(lot).Error
}

// DeleteBySymbol removes every lot of the symbol for the user. There is
// no partial-quantity removal.
func (r *portfolioRepository) DeleteBySymbol(ctx context.Context, userID uint, symbol string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND stock_symbol = ?", userID, symbol).
		Delete(&model.PortfolioLot{}).Error
}

func (r *portfolioRepository) AggregateByUser(ctx context.Context, userID uint) ([]AggregatedLot, error) {
	var rows []AggregatedLot
	err := r.db.WithContext(ctx).
		Model(&model.PortfolioLot{}).
		Select("stock_symbol, SUM(quantity) AS total_quantity, AVG(purchase_price) AS avg_price").
		Where("user_id = ?", userID).
		Group("stock_symbol").
		Having("SUM(quantity) > 0").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
