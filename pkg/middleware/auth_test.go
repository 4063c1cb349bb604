package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-advisor/pkg/apperror"
	"stock-advisor/pkg/token"
)

func TestTokenAuth(t *testing.T) {
	tokens := token.NewManager("secret", time.Hour)

	e := echo.New()
	handler := TokenAuth(tokens)(func(c echo.Context) error {
		claims := ClaimsFrom(c)
		require.NotNil(t, claims)
		return c.String(http.StatusOK, claims.Subject)
	})

	doRequest := func(target string) (*httptest.ResponseRecorder, error) {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		return rec, handler(e.NewContext(req, rec))
	}

	t.Run("valid token reaches the handler", func(t *testing.T) {
		signed, err := tokens.Sign("alice", "investor")
		require.NoError(t, err)

		rec, err := doRequest("/reports?token=" + signed)
		require.NoError(t, err)
		assert.Equal(t, "alice", rec.Body.String())
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := doRequest("/reports")
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus())
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		signed, err := token.NewManager("other", time.Hour).Sign("alice", "investor")
		require.NoError(t, err)

		_, err = doRequest("/reports?token=" + signed)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus())
	})

	t.Run("expired token", func(t *testing.T) {
		signed, err := token.NewManager("secret", -time.Minute).Sign("alice", "investor")
		require.NoError(t, err)

		_, err = doRequest("/reports?token=" + signed)
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, appErr.HTTPStatus())
	})
}
