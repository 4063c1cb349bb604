package service

import (
	"context"

	"stock-advisor/internal/dto"
	"stock-advisor/internal/model"
	"stock-advisor/internal/repository"
	"stock-advisor/pkg/apperror"
	"stock-advisor/pkg/logger"
	"stock-advisor/pkg/token"
)

const (
	ownReportsLimit  = 10
	userReportsLimit = 20
)

type ReportService interface {
	ListOwn(ctx context.Context, claims *token.Claims) (*dto.ReportsResponse, error)
	ListForUser(ctx context.Context, claims *token.Claims, userID uint) (*dto.ReportsResponse, error)
}

type reportService struct {
	log        *logger.Logger
	userRepo   repository.UserRepository
	reportRepo repository.ReportRepository
}

func NewReportService(log *logger.Logger, userRepo repository.UserRepository, reportRepo repository.ReportRepository) ReportService {
	return &reportService{
		log:        log,
		userRepo:   userRepo,
		reportRepo: reportRepo,
	}
}

func (s *reportService) ListOwn(ctx context.Context, claims *token.Claims) (*dto.ReportsResponse, error) {
	caller, err := s.resolveCaller(ctx, claims)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, caller.ID, ownReportsLimit)
}

func (s *reportService) ListForUser(ctx context.Context, claims *token.Claims, userID uint) (*dto.ReportsResponse, error) {
	caller, err := s.resolveCaller(ctx, claims)
	if err != nil {
		return nil, err
	}

	if claims.Role == model.RoleInvestor && caller.ID != userID {
		return nil, apperror.Forbidden("Can only view your own reports")
	}

	return s.list(ctx, userID, userReportsLimit)
}

func (s *reportService) list(ctx context.Context, userID uint, limit int) (*dto.ReportsResponse, error) {
	reports, err := s.reportRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperror.Internal("failed to list reports", err)
	}

	items := make([]dto.ReportItem, 0, len(reports))
	for _, r := range reports {
		items = append(items, dto.ReportItem{
			Stock:          r.Stock,
			Analysis:       r.Analysis,
			Recommendation: r.Recommendation,
			Timestamp:      r.Timestamp,
		})
	}

	return &dto.ReportsResponse{Reports: items}, nil
}

func (s *reportService) resolveCaller(ctx context.Context, claims *token.Claims) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, apperror.Internal("failed to look up user", err)
	}
	if user == nil {
		return nil, apperror.Unauthorized("Invalid token")
	}
	return user, nil
}
