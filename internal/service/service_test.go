package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"stock-advisor/internal/dto"
	"stock-advisor/internal/model"
	"stock-advisor/pkg/logger"
	"stock-advisor/pkg/token"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Report{}, &model.PortfolioLot{}))
	return db
}

func newTokenManager() *token.Manager {
	return token.NewManager("test-secret", time.Hour)
}

func claimsFor(username, role string) *token.Claims {
	return &token.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: username,
		},
	}
}

func createUser(t *testing.T, db *gorm.DB, username, role string) *model.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &model.User{
		Username: username,
		Password: string(hashed),
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

var testLog = logger.NewNop()

// fakeMarket serves canned quotes and histories keyed by symbol,
// degrading the same way the real service does for unknown symbols.
type fakeMarket struct {
	quotes    map[string]*dto.Quote
	histories map[string]*dto.History
}

func (f *fakeMarket) GetQuote(ctx context.Context, symbol string) *dto.Quote {
	if q, ok := f.quotes[symbol]; ok {
		return q
	}
	return &dto.Quote{Symbol: symbol, Name: symbol}
}

func (f *fakeMarket) GetHistory(ctx context.Context, symbol string, days int) *dto.History {
	if h, ok := f.histories[symbol]; ok {
		return h
	}
	return syntheticHistory(days)
}

type fakeAI struct {
	rec *dto.Recommendation
	err error
}

func (f *fakeAI) AnalyzeStock(ctx context.Context, quote *dto.Quote, history *dto.History) (*dto.Recommendation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rec, nil
}
