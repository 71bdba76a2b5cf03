package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/shopcart/cart-backend/internal/core/domain"
	"github.com/shopcart/cart-backend/internal/core/ports"
)

// Session reads the session cookie, verifies the token through the auth
// service (signature, expiry, revocation), and injects the verified claims
// into the request context. Errors are left to the central error handler so
// a missing cookie maps to 401 and a bad token to 403.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := ""
			if cookie, err := c.Cookie(domain.SessionCookieName); err == nil {
				token = cookie.Value
			}
			if token == "" {
				return domain.ErrMissingToken
			}

			claims, err := auth.Verify(c.Request().Context(), token)
			if err != nil {
				return err
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)

			return next(c)
		}
	}
}
