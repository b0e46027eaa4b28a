package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/commerce-system/internal/core/token"
)

// Context keys set by Auth for downstream handlers.
const (
	ContextSubject   = "subject"
	ContextRole      = "role"
	ContextRoleKnown = "role_known"
)

// Auth verifies the bearer token locally with the shared codec and injects
// the verified claims into context. No call to the auth service is made;
// that is what keeps verification stateless across services.
func Auth(codec *token.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, err := bearerToken(c)
			if err != nil {
				return err
			}

			claims, err := codec.Verify(raw)
			if err != nil {
				if errors.Is(err, token.ErrExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(ContextSubject, claims.Subject)
			c.Set(ContextRole, claims.Role)
			c.Set(ContextRoleKnown, claims.RoleKnown)

			return next(c)
		}
	}
}

// bearerToken extracts the raw token from the Authorization header.
func bearerToken(c echo.Context) (string, error) {
	header := c.Request().Header.Get("Authorization")
	if header == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}
	return parts[1], nil
}

// BearerToken is the exported variant used by the refresh handler, which
// needs the raw token rather than verified claims.
func BearerToken(c echo.Context) (string, error) {
	return bearerToken(c)
}
