package dto

const (
	RecommendationStrongBuy  = "STRONG BUY"
	RecommendationBuy        = "BUY"
	RecommendationHold       = "HOLD"
	RecommendationSell       = "SELL"
	RecommendationStrongSell = "STRONG SELL"
)

type ChatRequest struct {
	StockSymbol string `json:"stock_symbol" validate:"required"`
	Question    string `json:"question"`
}

// Recommendation is the validated result derived from the model's
// free-text reply. PortfolioPercent always satisfies the band implied
// by the recommendation label.
type Recommendation struct {
	Analysis         string `json:"analysis"`
	Recommendation   string `json:"recommendation"`
	PortfolioPercent int    `json:"portfolio_percent"`
	Reasoning        string `json:"reasoning"`
}

type ChartData struct {
	Labels []string  `json:"labels"`
	Prices []float64 `json:"prices"`
}

type ChatResponse struct {
	StockData Quote          `json:"stock_data"`
	Analysis  Recommendation `json:"analysis"`
	ChartData ChartData      `json:"chart_data"`
}
