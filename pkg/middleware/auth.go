package middleware

import (
	"github.com/labstack/echo/v4"

	"stock-advisor/pkg/apperror"
	"stock-advisor/pkg/token"
)

const claimsContextKey = "auth.claims"

// TokenAuth validates the access token carried in the `token` query
// parameter and stores its claims on the request context. Missing,
// malformed and expired tokens are rejected the same way.
func TokenAuth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.QueryParam("token")
			if raw == "" {
				return apperror.Unauthorized("Invalid token")
			}

			claims, err := tokens.Parse(raw)
			if err != nil {
				return apperror.Unauthorized("Invalid token")
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims stored by TokenAuth, or nil when the
// route is not guarded.
func ClaimsFrom(c echo.Context) *token.Claims {
	claims, _ := c.Get(claimsContextKey).(*token.Claims)
	return claims
}
