package dto

type AddLotRequest struct {
	StockSymbol   string  `query:"stock_symbol" validate:"required"`
	Quantity      float64 `query:"quantity" validate:"required,gt=0"`
	PurchasePrice float64 `query:"purchase_price" validate:"required,gt=0"`
}

// Holding is one consolidated portfolio row: all lots of a symbol
// collapsed into summed quantity and mean purchase price.
type Holding struct {
	Stock         string  `json:"stock"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchase_price"`
	CurrentPrice  float64 `json:"current_price"`
	TotalValue    float64 `json:"total_value"`
	ProfitLoss    float64 `json:"profit_loss"`
	ProfitLossPct float64 `json:"profit_loss_pct"`
}

type PortfolioSummary struct {
	TotalValue      float64 `json:"total_value"`
	TotalProfitLoss float64 `json:"total_profit_loss"`
	TotalPositions  int     `json:"total_positions"`
}

type PortfolioResponse struct {
	Portfolio []Holding        `json:"portfolio"`
	Summary   PortfolioSummary `json:"summary"`
}
