package middleware

import (
	"net/http"
	"strings"

	"fundo-backend/pkg/token"

	"github.com/labstack/echo/v4"
)

// Context keys set by RequireAuth.
const (
	CtxUsername = "auth.username"
	CtxRole     = "auth.role"
)

type TokenParser interface {
	Parse(raw string) (*token.Claims, error)
}

// RequireAuth validates "Authorization: Bearer <jwt>" and stores the
// username and role on the context. Any failure is a bare 401.
func RequireAuth(p TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			parts := strings.SplitN(c.Request().Header.Get(echo.HeaderAuthorization), " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c)
			}
			raw := strings.TrimSpace(parts[1])
			if raw == "" {
				return unauthorized(c)
			}
			claims, err := p.Parse(raw)
			if err != nil {
				return unauthorized(c)
			}
			c.Set(CtxUsername, claims.Username)
			c.Set(CtxRole, claims.Role)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
}

// Username returns the authenticated username, or "" before RequireAuth.
func Username(c echo.Context) string {
	s, _ := c.Get(CtxUsername).(string)
	return s
}

func Role(c echo.Context) string {
	s, _ := c.Get(CtxRole).(string)
	return s
}
