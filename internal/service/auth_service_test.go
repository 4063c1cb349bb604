package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-advisor/internal/dto"
	"stock-advisor/internal/model"
	"stock-advisor/internal/repository"
	"stock-advisor/pkg/apperror"
)

func newAuthService(t *testing.T) AuthService {
	t.Helper()
	db := newTestDB(t)
	return NewAuthService(testLog, repository.NewUserRepository(db), newTokenManager())
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	req := dto.RegisterRequest{Username: "alice", Password: "secret", Role: model.RoleInvestor}
	require.NoError(t, svc.Register(ctx, req))

	err := svc.Register(ctx, req)
	require.Error(t, err)

	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus())
	assert.Equal(t, "Username already exists", appErr.Message)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	require.NoError(t, svc.Register(ctx, dto.RegisterRequest{
		Username: "alice",
		Password: "secret",
		Role:     model.RoleAnalyst,
	}))

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "secret"})
		require.NoError(t, err)

		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, model.RoleAnalyst, resp.Role)

		claims, err := newTokenManager().Parse(resp.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Subject)
		assert.Equal(t, model.RoleAnalyst, claims.Role)
	})

	t.Run("wrong password fails like unknown username", func(t *testing.T) {
		_, wrongPassErr := svc.Login(ctx, dto.LoginRequest{Username: "alice", Password: "nope"})
		_, unknownUserErr := svc.Login(ctx, dto.LoginRequest{Username: "mallory", Password: "secret"})

		for _, err := range []error{wrongPassErr, unknownUserErr} {
			appErr, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus())
			assert.Equal(t, "Invalid credentials", appErr.Message)
		}
	})
}

func TestAuthService_ListInvestors(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := NewAuthService(testLog, repository.NewUserRepository(db), newTokenManager())

	createUser(t, db, "analyst1", model.RoleAnalyst)
	createUser(t, db, "inv1", model.RoleInvestor)
	createUser(t, db, "inv2", model.RoleInvestor)

	t.Run("analyst sees only investors", func(t *testing.T) {
		resp, err := svc.ListInvestors(ctx, claimsFor("analyst1", model.RoleAnalyst))
		require.NoError(t, err)

		require.Len(t, resp.Investors, 2)
		names := []string{resp.Investors[0].Username, resp.Investors[1].Username}
		assert.ElementsMatch(t, []string{"inv1", "inv2"}, names)
	})

	t.Run("investor is forbidden", func(t *testing.T) {
		_, err := svc.ListInvestors(ctx, claimsFor("inv1", model.RoleInvestor))
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusForbidden, appErr.HTTPStatus())
	})
}
