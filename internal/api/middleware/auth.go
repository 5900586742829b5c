package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/campuscompass/guidance-system/internal/core/domain"
	"github.com/campuscompass/guidance-system/internal/core/ports"
)

// accountIDKey is the context key the authenticated account ID is stored under.
const accountIDKey = "account_id"

// Auth extracts the bearer token, verifies it, and injects the subject
// account ID into the request context.
//
// Status mapping: a missing token is 401 (the caller never authenticated),
// while a bad-signature or expired token is 403 (the caller presented a
// credential and it was rejected).
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			accountID, err := tokens.Verify(parts[1])
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrTokenMissing):
					return echo.NewHTTPError(http.StatusUnauthorized, "missing token")
				case errors.Is(err, domain.ErrTokenExpired):
					return echo.NewHTTPError(http.StatusForbidden, "token expired")
				default:
					return echo.NewHTTPError(http.StatusForbidden, "invalid token")
				}
			}

			c.Set(accountIDKey, accountID)
			return next(c)
		}
	}
}

// AccountID returns the authenticated account ID injected by Auth.
func AccountID(c echo.Context) (string, bool) {
	id, ok := c.Get(accountIDKey).(string)
	return id, ok && id != ""
}
