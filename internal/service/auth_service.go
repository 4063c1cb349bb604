package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"stock-advisor/internal/dto"
	"stock-advisor/internal/model"
	"stock-advisor/internal/repository"
	"stock-advisor/pkg/apperror"
	"stock-advisor/pkg/logger"
	"stock-advisor/pkg/token"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) error
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	ListInvestors(ctx context.Context, claims *token.Claims) (*dto.InvestorsResponse, error)
}

type authService struct {
	log      *logger.Logger
	userRepo repository.UserRepository
	tokens   *token.Manager
}

func NewAuthService(log *logger.Logger, userRepo repository.UserRepository, tokens *token.Manager) AuthService {
	return &authService{
		log:      log,
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperror.Internal("failed to hash password", err)
	}

	user := &model.User{
		Username: req.Username,
		Password: string(hashed),
		Role:     req.Role,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperror.BadRequest("Username already exists")
		}
		return apperror.Internal("failed to create user", err)
	}

	s.log.InfoContext(ctx, "User registered",
		logger.StringField("username", req.Username),
		logger.StringField("role", req.Role))
	return nil
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperror.Internal("failed to look up user", err)
	}

	// unknown username and wrong password fail identically
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	accessToken, err := s.tokens.Sign(user.Username, user.Role)
	if err != nil {
		return nil, apperror.Internal("failed to sign token", err)
	}

	return &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		Role:        user.Role,
	}, nil
}

func (s *authService) ListInvestors(ctx context.Context, claims *token.Claims) (*dto.InvestorsResponse, error) {
	if claims.Role != model.RoleAnalyst {
		return nil, apperror.Forbidden("Analysts only")
	}

	users, err := s.userRepo.ListByRole(ctx, model.RoleInvestor)
	if err != nil {
		return nil, apperror.Internal("failed to list investors", err)
	}

	investors := make([]dto.Investor, 0, len(users))
	for _, u := range users {
		investors = append(investors, dto.Investor{
			ID:       u.ID,
			Username: u.Username,
		})
	}

	return &dto.InvestorsResponse{Investors: investors}, nil
}
