package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/shopcart/cart-backend/internal/core/domain"
	"github.com/shopcart/cart-backend/internal/core/ports"
)

// AuthHandler exposes the auth routes and owns the session cookie contract.
// Secure and SameSite come from deployment configuration; the name and
// HttpOnly flag are fixed.
type AuthHandler struct {
	authService    ports.AuthService
	cookieSecure   bool
	cookieSameSite http.SameSite
}

func NewAuthHandler(authService ports.AuthService, cookieSecure bool, cookieSameSite http.SameSite) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		cookieSecure:   cookieSecure,
		cookieSameSite: cookieSameSite,
	}
}

// SignUp creates a new user account.
//
// @Summary      Sign up a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signUpRequest  true  "Signup credentials"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /sign-in [post]
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req signUpRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if _, err := h.authService.SignUp(c.Request().Context(), req.Email, req.Password); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, messageResponse{Message: "User created successfully!"})
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	c.SetCookie(h.sessionCookie(token, 0))

	return c.JSON(http.StatusOK, loginResponse{
		Message: "Login Successful",
		User:    userResponse{Email: user.Email},
	})
}

// Verify checks the session cookie.
//
// @Summary      Verify the current session
// @Tags         auth
// @Produce      json
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /verify [get]
func (h *AuthHandler) Verify(c echo.Context) error {
	if _, err := h.authService.Verify(c.Request().Context(), readSessionCookie(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User verified!"})
}

// Logout revokes the current session and clears the cookie.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200   {object}  messageResponse
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	// Revocation is best-effort; clearing the cookie is the contract.
	_ = h.authService.Logout(c.Request().Context(), readSessionCookie(c))

	c.SetCookie(h.sessionCookie("", -1))

	return c.JSON(http.StatusOK, messageResponse{Message: "Logged out"})
}

// Me returns the authenticated user's identity. Requires the session
// middleware.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Success      200   {object}  userResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	email, err := ctxEmail(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userResponse{Email: email})
}

// sessionCookie builds the session cookie. maxAge < 0 expires it (logout);
// 0 leaves lifetime to the token's own expiry.
func (h *AuthHandler) sessionCookie(token string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     domain.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: h.cookieSameSite,
	}
	if maxAge < 0 {
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
	}
	return cookie
}

func readSessionCookie(c echo.Context) string {
	cookie, err := c.Cookie(domain.SessionCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}
