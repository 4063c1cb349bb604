package model

import "time"

// PortfolioLot records one purchase event. Several lots for the same
// user/symbol may coexist; they are aggregated at read time.
type PortfolioLot struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"user_id"`
	StockSymbol   string    `gorm:"not null" json:"stock_symbol"`
	Quantity      float64   `gorm:"not null" json:"quantity"`
	PurchasePrice float64   `gorm:"not null" json:"purchase_price"`
	Timestamp     time.Time `gorm:"autoCreateTime" json:"timestamp"`
}

func (PortfolioLot) TableName() string {
	return "portfolios"
}
