package repository

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"stock-advisor/config"
	"stock-advisor/internal/dto"
	"stock-advisor/pkg/httpclient"
	"stock-advisor/pkg/logger"
	"stock-advisor/pkg/utils"
)

type MarketDataRepository interface {
	GetQuote(ctx context.Context, symbol string) (*dto.Quote, error)
	GetHistory(ctx context.Context, symbol string, days int) (*dto.History, error)
}

type yahooFinanceRepository struct {
	httpClient     httpclient.HTTPClient
	cfg            *config.Config
	logger         *logger.Logger
	requestLimiter *rate.Limiter
}

// NewYahooFinanceRepository creates a market data repository backed by
// the Yahoo Finance chart API.
func NewYahooFinanceRepository(cfg *config.Config, log *logger.Logger) MarketDataRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.YahooFinance.MaxRequestPerMinute)
	requestLimiter := rate.NewLimiter(rate.Every(secondsPerRequest), 1)

	return &yahooFinanceRepository{
		httpClient:     httpclient.New(cfg.YahooFinance.BaseURL, cfg.YahooFinance.Timeout),
		cfg:            cfg,
		logger:         log,
		requestLimiter: requestLimiter,
	}
}

func (r *yahooFinanceRepository) GetQuote(ctx context.Context, symbol string) (*dto.Quote, error) {
	result, err := r.fetchChart(ctx, symbol, 1)
	if err != nil {
		return nil, err
	}

	closes, _, kept, err := validSeries(result)
	if err != nil {
		return nil, err
	}

	price := result.Meta.RegularMarketPrice
	if price == 0 {
		price = closes[len(closes)-1]
	}

	prevClose := result.Meta.ChartPreviousClose
	if prevClose == 0 {
		prevClose = price
	}

	change := price - prevClose
	percentChange := 0.0
	if prevClose != 0 {
		percentChange = change / prevClose * 100
	}

	name := result.Meta.LongName
	if name == "" {
		name = result.Meta.ShortName
	}
	if name == "" {
		name = symbol
	}

	// index the last kept bar's original position, the series arrays
	// are unfiltered
	quote := result.Indicators.Quote[0]
	last := kept[len(kept)-1]
	var volume int64
	if last < len(quote.Volume) {
		volume = quote.Volume[last]
	}
	high := price
	low := price
	if last < len(quote.High) && quote.High[last] > 0 {
		high = quote.High[last]
	}
	if last < len(quote.Low) && quote.Low[last] > 0 {
		low = quote.Low[last]
	}

	return &dto.Quote{
		Symbol:        symbol,
		Name:          name,
		Price:         utils.Round2(price),
		Change:        utils.Round2(change),
		PercentChange: utils.Round2(percentChange),
		High:          utils.Round2(high),
		Low:           utils.Round2(low),
		Volume:        volume,
	}, nil
}

func (r *yahooFinanceRepository) GetHistory(ctx context.Context, symbol string, days int) (*dto.History, error) {
	result, err := r.fetchChart(ctx, symbol, days)
	if err != nil {
		return nil, err
	}

	closes, timestamps, _, err := validSeries(result)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(closes))
	for _, ts := range timestamps {
		dates = append(dates, time.Unix(ts, 0).UTC().Format("01/02"))
	}

	return &dto.History{
		Dates:  dates,
		Prices: closes,
	}, nil
}

func (r *yahooFinanceRepository) fetchChart(ctx context.Context, symbol string, days int) (*dto.YahooChartResult, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	now := time.Now()
	queryParams := map[string]string{
		"period1":        fmt.Sprintf("%d", now.AddDate(0, 0, -days).Unix()),
		"period2":        fmt.Sprintf("%d", now.Unix()),
		"interval":       "1d",
		"includePrePost": "false",
	}

	headers := map[string]string{
		"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0.0.0 Safari/537.36",
		"Accept":     "application/json, text/plain, */*",
		"Referer":    "https://finance.yahoo.com/",
	}

	var yahooResp dto.YahooChartResponse
	resp, err := r.httpClient.Get(ctx, "/"+symbol, queryParams, headers, &yahooResp)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch data from yahoo finance: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn("Yahoo Finance API returned non-OK status",
			logger.StringField("symbol", symbol),
			logger.IntField("status_code", resp.StatusCode))
		return nil, fmt.Errorf("yahoo finance api returned status: %d", resp.StatusCode)
	}

	if yahooResp.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo finance api error: %v", yahooResp.Chart.Error)
	}

	if len(yahooResp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no data returned for symbol: %s", symbol)
	}

	return &yahooResp.Chart.Result[0], nil
}

// validSeries extracts the non-zero closes, their timestamps and their
// original bar positions, the zeros being Yahoo's encoding of missing
// bars.
func validSeries(result *dto.YahooChartResult) ([]float64, []int64, []int, error) {
	if len(result.Indicators.Quote) == 0 {
		return nil, nil, nil, fmt.Errorf("no quote data available for symbol: %s", result.Meta.Symbol)
	}

	quote := result.Indicators.Quote[0]
	closes := make([]float64, 0, len(quote.Close))
	timestamps := make([]int64, 0, len(quote.Close))
	kept := make([]int, 0, len(quote.Close))
	for i, c := range quote.Close {
		if c == 0 || i >= len(result.Timestamp) {
			continue
		}
		closes = append(closes, c)
		timestamps = append(timestamps, result.Timestamp[i])
		kept = append(kept, i)
	}

	if len(closes) == 0 {
		return nil, nil, nil, fmt.Errorf("no valid price data for symbol: %s", result.Meta.Symbol)
	}
	return closes, timestamps, kept, nil
}
