package context

import (
	"tripdesk/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// GetPrincipal extracts the authenticated principal set by the auth middleware.
func GetPrincipal(c echo.Context) (*service.Claims, bool) {
	claims, ok := c.Get(string(KeyPrincipal)).(*service.Claims)

	return claims, ok
}

// SetPrincipal stores the authenticated principal on the request context.
func SetPrincipal(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyPrincipal), claims)
}
