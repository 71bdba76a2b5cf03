package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/shopcart/cart-backend/internal/api"
	"github.com/shopcart/cart-backend/internal/api/handler"
	"github.com/shopcart/cart-backend/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stub auth service
// ---------------------------------------------------------------------------

type stubAuthService struct {
	signUpFn func(ctx context.Context, email, password string) (*domain.User, error)
	loginFn  func(ctx context.Context, email, password string) (string, *domain.User, error)
	verifyFn func(ctx context.Context, token string) (*domain.SessionClaims, error)
	logoutFn func(ctx context.Context, token string) error
}

func (s *stubAuthService) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	return s.signUpFn(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Verify(ctx context.Context, token string) (*domain.SessionClaims, error) {
	if s.verifyFn == nil {
		if token == "" {
			return nil, domain.ErrMissingToken
		}
		return &domain.SessionClaims{UserID: "user_1", Email: "a@x.com"}, nil
	}
	return s.verifyFn(ctx, token)
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	if s.logoutFn == nil {
		return nil
	}
	return s.logoutFn(ctx, token)
}

// newAuthServer wires the handler into a full echo instance so requests run
// through the validator and the central error handler, like in production.
func newAuthServer(stub *stubAuthService) *echo.Echo {
	e := echo.New()
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = api.NewHTTPErrorHandler(zerolog.Nop())

	h := handler.NewAuthHandler(stub, true, http.SameSiteNoneMode)
	e.POST("/sign-in", h.SignUp)
	e.POST("/login", h.Login)
	e.GET("/verify", h.Verify)
	e.POST("/logout", h.Logout)
	return e
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// ---------------------------------------------------------------------------
// SignUp
// ---------------------------------------------------------------------------

func TestAuthHandler_SignUp_Success(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			if email != "a@x.com" || password != "pw" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: "user_1", Email: email}, nil
		},
	}
	rec := doJSON(newAuthServer(stub), http.MethodPost, "/sign-in", `{"email":"a@x.com","password":"pw"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "User created successfully!" {
		t.Fatalf("unexpected message: %q", resp["message"])
	}
}

func TestAuthHandler_SignUp_Duplicate(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	rec := doJSON(newAuthServer(stub), http.MethodPost, "/sign-in", `{"email":"a@x.com","password":"pw"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["error"] != "User already exists!" {
		t.Fatalf("unexpected error message: %q", resp["error"])
	}
}

func TestAuthHandler_SignUp_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		signUpFn: func(ctx context.Context, email, password string) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	e := newAuthServer(stub)

	if rec := doJSON(e, http.MethodPost, "/sign-in", "not-json"); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed body, got %d", rec.Code)
	}
	if rec := doJSON(e, http.MethodPost, "/sign-in", `{"email":"a@x.com"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing password, got %d", rec.Code)
	}
	if rec := doJSON(e, http.MethodPost, "/sign-in", `{"email":"not-an-email","password":"pw"}`); rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad email, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "token123", &domain.User{ID: "user_1", Email: email}, nil
		},
	}
	rec := doJSON(newAuthServer(stub), http.MethodPost, "/login", `{"email":"a@x.com","password":"pw"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Message string `json:"message"`
		User    struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Message != "Login Successful" || resp.User.Email != "a@x.com" {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	// Hash must never appear in the response.
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}

	cookie := findCookie(rec, domain.SessionCookieName)
	if cookie == nil {
		t.Fatalf("expected session cookie to be set")
	}
	if cookie.Value != "token123" {
		t.Fatalf("unexpected cookie value: %q", cookie.Value)
	}
	if !cookie.HttpOnly || !cookie.Secure || cookie.SameSite != http.SameSiteNoneMode {
		t.Fatalf("unexpected cookie attributes: %+v", cookie)
	}
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}
	rec := doJSON(newAuthServer(stub), http.MethodPost, "/login", `{"email":"a@x.com","password":"bad"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_UserNotFound(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, *domain.User, error) {
			return "", nil, domain.ErrUserNotFound
		},
	}
	rec := doJSON(newAuthServer(stub), http.MethodPost, "/login", `{"email":"ghost@x.com","password":"pw"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// Verify / Logout
// ---------------------------------------------------------------------------

func TestAuthHandler_Verify_WithCookie(t *testing.T) {
	stub := &stubAuthService{
		verifyFn: func(ctx context.Context, token string) (*domain.SessionClaims, error) {
			if token != "token123" {
				t.Fatalf("unexpected token: %q", token)
			}
			return &domain.SessionClaims{UserID: "user_1", Email: "a@x.com"}, nil
		},
	}
	e := newAuthServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/verify", nil)
	req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: "token123"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Verify_NoCookie(t *testing.T) {
	stub := &stubAuthService{
		verifyFn: func(ctx context.Context, token string) (*domain.SessionClaims, error) {
			if token != "" {
				t.Fatalf("expected empty token, got %q", token)
			}
			return nil, domain.ErrMissingToken
		},
	}
	rec := doJSON(newAuthServer(stub), http.MethodGet, "/verify", "")

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthHandler_Verify_BadToken(t *testing.T) {
	stub := &stubAuthService{
		verifyFn: func(ctx context.Context, token string) (*domain.SessionClaims, error) {
			return nil, domain.ErrInvalidToken
		},
	}
	e := newAuthServer(stub)

	req := httptest.NewRequest(http.MethodGet, "/verify", nil)
	req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: "tampered"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	revoked := ""
	stub := &stubAuthService{
		logoutFn: func(ctx context.Context, token string) error {
			revoked = token
			return nil
		},
	}
	e := newAuthServer(stub)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: domain.SessionCookieName, Value: "token123"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if revoked != "token123" {
		t.Fatalf("expected token to be passed to Logout, got %q", revoked)
	}

	cookie := findCookie(rec, domain.SessionCookieName)
	if cookie == nil {
		t.Fatalf("expected replacement cookie to be set")
	}
	if cookie.Value != "" || cookie.MaxAge >= 0 {
		t.Fatalf("expected expired empty cookie, got %+v", cookie)
	}
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
