package service

import (
	"context"
	"strings"

	"stock-advisor/internal/dto"
	"stock-advisor/internal/model"
	"stock-advisor/internal/repository"
	"stock-advisor/pkg/apperror"
	"stock-advisor/pkg/logger"
	"stock-advisor/pkg/token"
	"stock-advisor/pkg/utils"
)

type PortfolioService interface {
	AddLot(ctx context.Context, claims *token.Claims, req dto.AddLotRequest) error
	RemoveSymbol(ctx context.Context, claims *token.Claims, symbol string) error
	Consolidated(ctx context.Context, claims *token.Claims, userID uint) (*dto.PortfolioResponse, error)
}

type portfolioService struct {
	log           *logger.Logger
	userRepo      repository.UserRepository
	portfolioRepo repository.PortfolioRepository
	market        MarketDataService
}

func NewPortfolioService(
	log *logger.Logger,
	userRepo repository.UserRepository,
	portfolioRepo repository.PortfolioRepository,
	market MarketDataService,
) PortfolioService {
	return &portfolioService{
		log:           log,
		userRepo:      userRepo,
		portfolioRepo: portfolioRepo,
		market:        market,
	}
}

func (s *portfolioService) AddLot(ctx context.Context, claims *token.Claims, req dto.AddLotRequest) error {
	if claims.Role != model.RoleInvestor {
		return apperror.Forbidden("Only investors can add to portfolio")
	}

	caller, err := s.resolveCaller(ctx, claims)
	if err != nil {
		return err
	}

	lot := &model.PortfolioLot{
		UserID:        caller.ID,
		StockSymbol:   strings.ToUpper(req.StockSymbol),
		Quantity:      req.Quantity,
		PurchasePrice: req.PurchasePrice,
	}
	if err := s.portfolioRepo.Create(ctx, lot); err != nil {
		return apperror.Internal("failed to add to portfolio", err)
	}

	s.log.InfoContext(ctx, "Lot added",
		logger.StringField("username", claims.Subject),
		logger.StringField("symbol", lot.StockSymbol),
		logger.Float64Field("quantity", lot.Quantity))
	return nil
}

func (s *portfolioService) RemoveSymbol(ctx context.Context, claims *token.Claims, symbol string) error {
	if claims.Role != model.RoleInvestor {
		return apperror.Forbidden("Only investors can modify portfolio")
	}

	caller, err := s.resolveCaller(ctx, claims)
	if err != nil {
		return err
	}

	if err := s.portfolioRepo.DeleteBySymbol(ctx, caller.ID, symbol); err != nil {
		return apperror.Internal("failed to remove from portfolio", err)
	}
	return nil
}

// Consolidated aggregates the user's lots per symbol and enriches each
// row with the current market price. Investors may only read their own
// portfolio; analysts may read any.
func (s *portfolioService) Consolidated(ctx context.Context, claims *token.Claims, userID uint) (*dto.PortfolioResponse, error) {
	caller, err := s.resolveCaller(ctx, claims)
	if err != nil {
		return nil, err
	}

	if claims.Role == model.RoleInvestor && caller.ID != userID {
		return nil, apperror.Forbidden("Can only view your own portfolio")
	}

	rows, err := s.portfolioRepo.AggregateByUser(ctx, userID)
	if err != nil {
		return nil, apperror.Internal("failed to aggregate portfolio", err)
	}

	holdings := make([]dto.Holding, 0, len(rows))
	var totalValue, totalProfitLoss float64

	for _, row := range rows {
		quote := s.market.GetQuote(ctx, row.StockSymbol)
		currentPrice := quote.Price

		value := row.TotalQuantity * currentPrice
		costBasis := row.TotalQuantity * row.AvgPrice
		profitLoss := value - costBasis
		profitLossPct := 0.0
		if costBasis != 0 {
			profitLossPct = profitLoss / costBasis * 100
		}

		holdings = append(holdings, dto.Holding{
			Stock:         row.StockSymbol,
			Quantity:      utils.Round2(row.TotalQuantity),
			PurchasePrice: utils.Round2(row.AvgPrice),
			CurrentPrice:  utils.Round2(currentPrice),
			TotalValue:    utils.Round2(value),
			ProfitLoss:    utils.Round2(profitLoss),
			ProfitLossPct: utils.Round2(profitLossPct),
		})

		totalValue += value
		totalProfitLoss += profitLoss
	}

	return &dto.PortfolioResponse{
		Portfolio: holdings,
		Summary: dto.PortfolioSummary{
			TotalValue:      utils.Round2(totalValue),
			TotalProfitLoss: utils.Round2(totalProfitLoss),
			TotalPositions:  len(holdings),
		},
	}, nil
}

func (s *portfolioService) resolveCaller(ctx context.Context, claims *token.Claims) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, apperror.Internal("failed to look up user", err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("Invalid token")
	}
	return user, nil
}
