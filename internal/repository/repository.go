package repository

import (
	"gorm.io/gorm"

	"stock-advisor/config"
	"stock-advisor/pkg/logger"
)

type Repository struct {
	UserRepo      UserRepository
	ReportRepo    ReportRepository
	PortfolioRepo PortfolioRepository
	MarketRepo    MarketDataRepository
	AIRepo        AIRepository
}

func NewRepository(cfg *config.Config, db *gorm.DB, log *logger.Logger) (*Repository, error) {
	aiRepo, err := NewGeminiAIRepository(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Repository{
		UserRepo:      NewUserRepository(db),
		ReportRepo:    NewReportRepository(db),
		PortfolioRepo: NewPortfolioRepository(db),
		MarketRepo:    NewYahooFinanceRepository(cfg, log),
		AIRepo:        aiRepo,
	}, nil
}
