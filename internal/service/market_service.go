package service

import (
	"context"
	"fmt"

	"stock-advisor/internal/dto"
	"stock-advisor/internal/repository"
	"stock-advisor/pkg/cache"
	"stock-advisor/pkg/logger"
)

const historyDays = 30

// MarketDataService wraps the raw fetcher with the degradation rules
// the API relies on: it never returns an error. A failed quote lookup
// yields a zero-valued quote whose Price == 0 marks "symbol not found";
// a failed history lookup yields a synthetic flat series.
type MarketDataService interface {
	GetQuote(ctx context.Context, symbol string) *dto.Quote
	GetHistory(ctx context.Context, symbol string, days int) *dto.History
}

type marketDataService struct {
	log        *logger.Logger
	marketRepo repository.MarketDataRepository
	quoteCache cache.Cache
}

func NewMarketDataService(log *logger.Logger, marketRepo repository.MarketDataRepository, quoteCache cache.Cache) MarketDataService {
	return &marketDataService{
		log:        log,
		marketRepo: marketRepo,
		quoteCache: quoteCache,
	}
}

func (s *marketDataService) GetQuote(ctx context.Context, symbol string) *dto.Quote {
	cacheKey := "quote:" + symbol
	if cached, found := s.quoteCache.Get(cacheKey); found {
		if quote, ok := cached.(*dto.Quote); ok {
			return quote
		}
	}

	quote, err := s.marketRepo.GetQuote(ctx, symbol)
	if err != nil {
		s.log.WarnContext(ctx, "Quote lookup failed, returning zero-valued quote",
			logger.StringField("symbol", symbol),
			logger.ErrorField(err))
		return &dto.Quote{
			Symbol: symbol,
			Name:   symbol,
		}
	}

	s.quoteCache.Set(cacheKey, quote, 0)
	return quote
}

func (s *marketDataService) GetHistory(ctx context.Context, symbol string, days int) *dto.History {
	history, err := s.marketRepo.GetHistory(ctx, symbol, days)
	if err != nil {
		s.log.WarnContext(ctx, "History lookup failed, returning synthetic flat series",
			logger.StringField("symbol", symbol),
			logger.ErrorField(err))
		return syntheticHistory(days)
	}
	return history
}

// syntheticHistory is the placeholder series served when real history
// is unavailable. Callers cannot tell it apart from genuinely flat
// price data, a known limitation.
func syntheticHistory(days int) *dto.History {
	dates := make([]string, days)
	prices := make([]float64, days)
	for i := 0; i < days; i++ {
		dates[i] = fmt.Sprintf("Day %d", i+1)
		prices[i] = 150.0
	}
	return &dto.History{
		Dates:  dates,
		Prices: prices,
	}
}
