package service

import (
	"stock-advisor/config"
	"stock-advisor/internal/repository"
	"stock-advisor/pkg/cache"
	"stock-advisor/pkg/logger"
	"stock-advisor/pkg/token"
)

type Service struct {
	AuthService      AuthService
	MarketService    MarketDataService
	ChatService      ChatService
	ReportService    ReportService
	PortfolioService PortfolioService
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	quoteCache cache.Cache,
	tokens *token.Manager,
) *Service {
	marketService := NewMarketDataService(log, repo.MarketRepo, quoteCache)

	return &Service{
		AuthService:      NewAuthService(log, repo.UserRepo, tokens),
		MarketService:    marketService,
		ChatService:      NewChatService(log, marketService, repo.AIRepo, repo.UserRepo, repo.ReportRepo),
		ReportService:    NewReportService(log, repo.UserRepo, repo.ReportRepo),
		PortfolioService: NewPortfolioService(log, repo.UserRepo, repo.PortfolioRepo, marketService),
	}
}
