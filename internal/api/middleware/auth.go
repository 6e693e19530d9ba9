package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/domainpanel/backend/internal/core/ports"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// AccessVerifier is the slice of the token service the auth gate needs.
type AccessVerifier interface {
	VerifyAccess(token string) (*ports.TokenClaims, error)
}

// Auth extracts the bearer token from the Authorization header,
// verifies it as an access token and injects the caller's identity into
// the request context. Refresh tokens fail verification here because
// they are signed with a different secret.
func Auth(tokens AccessVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.VerifyAccess(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired access token")
			}

			c.Set(CtxUserID, claims.Subject)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
