package middleware

import (
	"net/http"
	"strings"

	"sellegate-backend/internal/model"
	"sellegate-backend/internal/service"

	"github.com/labstack/echo/v4"
)

// ContextUserKey is where the authenticated user is stored on the echo context.
const ContextUserKey = "current_user"

// TokenAuth verifies the `Authorization: Token <key>` header against the
// persisted token table and attaches the resolved user to the context.
func TokenAuth(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Authentication credentials were not provided.")
			}

			scheme, key, found := strings.Cut(header, " ")
			if !found || scheme != "Token" || key == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header.")
			}

			user, err := authService.Authenticate(c.Request().Context(), key)
			if err != nil {
				return err
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the user set by TokenAuth, or nil outside an
// authenticated route.
func UserFromContext(c echo.Context) *model.User {
	user, _ := c.Get(ContextUserKey).(*model.User)
	return user
}
