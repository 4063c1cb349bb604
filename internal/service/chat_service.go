package service

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"

	"stock-advisor/internal/dto"
	"stock-advisor/internal/model"
	"stock-advisor/internal/repository"
	"stock-advisor/pkg/apperror"
	"stock-advisor/pkg/logger"
	"stock-advisor/pkg/token"
)

type ChatService interface {
	Analyze(ctx context.Context, claims *token.Claims, req dto.ChatRequest) (*dto.ChatResponse, error)
}

type chatService struct {
	log        *logger.Logger
	market     MarketDataService
	aiRepo     repository.AIRepository
	userRepo   repository.UserRepository
	reportRepo repository.ReportRepository
}

func NewChatService(
	log *logger.Logger,
	market MarketDataService,
	aiRepo repository.AIRepository,
	userRepo repository.UserRepository,
	reportRepo repository.ReportRepository,
) ChatService {
	return &chatService{
		log:        log,
		market:     market,
		aiRepo:     aiRepo,
		userRepo:   userRepo,
		reportRepo: reportRepo,
	}
}

// Analyze fetches market data for the requested symbol, asks the model
// for a recommendation and persists the result as a report for the
// caller. The request's question is accepted but not fed to the model.
func (s *chatService) Analyze(ctx context.Context, claims *token.Claims, req dto.ChatRequest) (*dto.ChatResponse, error) {
	var (
		quote   *dto.Quote
		history *dto.History
	)

	// both fetchers degrade internally instead of failing
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		quote = s.market.GetQuote(gctx, req.StockSymbol)
		return nil
	})
	g.Go(func() error {
		history = s.market.GetHistory(gctx, req.StockSymbol, historyDays)
		return nil
	})
	_ = g.Wait()

	if quote.Price == 0 {
		return nil, apperror.NotFound("Stock not found")
	}

	recommendation, err := s.aiRepo.AnalyzeStock(ctx, quote, history)
	if err != nil {
		return nil, apperror.Internal("AI analysis failed", err)
	}

	user, err := s.userRepo.GetByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, apperror.Internal("failed to look up user", err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("Invalid token")
	}

	rawResponse, err := json.Marshal(recommendation)
	if err != nil {
		return nil, apperror.Internal("failed to encode recommendation", err)
	}

	report := &model.Report{
		UserID:         user.ID,
		Stock:          req.StockSymbol,
		Analysis:       recommendation.Analysis,
		Recommendation: recommendation.Recommendation,
		Response:       rawResponse,
	}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, apperror.Internal("failed to save report", err)
	}

	s.log.InfoContext(ctx, "Analysis saved",
		logger.StringField("username", claims.Subject),
		logger.StringField("symbol", req.StockSymbol),
		logger.StringField("recommendation", recommendation.Recommendation))

	return &dto.ChatResponse{
		StockData: *quote,
		Analysis:  *recommendation,
		ChartData: dto.ChartData{
			Labels: history.Dates,
			Prices: history.Prices,
		},
	}, nil
}
