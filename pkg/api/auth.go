package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"
)

const accountContextKey = "account"

// extractAccount extracts the account id from proxy headers.
// Priority: X-Forwarded-User (oauth2-proxy) > X-Forwarded-Email (oauth2-proxy) >
// X-Remote-User (kube-rbac-proxy). Empty when unauthenticated.
func extractAccount(c *echo.Context) string {
	if user := c.Request().Header.Get("X-Forwarded-User"); user != "" {
		return user
	}
	if email := c.Request().Header.Get("X-Forwarded-Email"); email != "" {
		return email
	}
	if user := c.Request().Header.Get("X-Remote-User"); user != "" {
		return user
	}
	return ""
}

// requireAccount rejects requests without an authenticated account id and
// stores the id on the request context for handlers.
func requireAccount() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c *echo.Context) error {
			account := extractAccount(c)
			if account == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			c.Set(accountContextKey, account)
			return next(c)
		}
	}
}

// accountID returns the authenticated account id stored by requireAccount.
func accountID(c *echo.Context) string {
	if v, ok := c.Get(accountContextKey).(string); ok {
		return v
	}
	return ""
}
