package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopcart/cart-backend/internal/api/metrics"
	"github.com/shopcart/cart-backend/internal/core/domain"
	"github.com/shopcart/cart-backend/internal/core/ports"
)

const bcryptCost = 10

// TokenBlocklist abstracts the revocation store (Redis). Revoked token IDs
// are held until the token's natural expiry.
type TokenBlocklist interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// AuthService implements signup, login, token verification, and logout.
type AuthService struct {
	repo      ports.UserRepository
	blocklist TokenBlocklist
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, blocklist TokenBlocklist, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		blocklist: blocklist,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// SignUp creates a new account. The duplicate check here is check-then-insert
// and therefore racy; the repository's unique email index is the backstop,
// surfacing as ErrUserExists from Create.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.SignupsTotal.Inc()
	s.log.Info().Str("email", created.Email).Msg("user created")
	return created, nil
}

// Login verifies the password against the stored hash and issues a signed
// session token. The returned user view is public-safe (hash excluded via
// its json tag).
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.log.Info().Str("email", user.Email).Msg("login successful")
	return token, user, nil
}

// Verify checks the token signature, expiry, and revocation status. It never
// touches the user store.
func (s *AuthService) Verify(ctx context.Context, token string) (*domain.SessionClaims, error) {
	if token == "" {
		metrics.VerificationsTotal.WithLabelValues("missing").Inc()
		return nil, domain.ErrMissingToken
	}

	claims, err := s.parseToken(token)
	if err != nil {
		metrics.VerificationsTotal.WithLabelValues("invalid").Inc()
		return nil, domain.ErrInvalidToken
	}

	sc := sessionClaims(claims)
	if sc.TokenID != "" {
		revoked, err := s.blocklist.IsRevoked(ctx, sc.TokenID)
		if err != nil {
			// Revocation is best-effort: a blocklist outage must not lock
			// every holder of a valid token out.
			s.log.Warn().Err(err).Msg("blocklist check failed, accepting token")
		} else if revoked {
			metrics.VerificationsTotal.WithLabelValues("revoked").Inc()
			return nil, domain.ErrInvalidToken
		}
	}

	metrics.VerificationsTotal.WithLabelValues("success").Inc()
	return sc, nil
}

// Logout revokes the presented token until its natural expiry. The session is
// stateless, so an absent, malformed, or already-expired token leaves nothing
// to revoke and logout still succeeds.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := s.parseToken(token)
	if err != nil {
		return nil
	}

	sc := sessionClaims(claims)
	if sc.TokenID == "" || !sc.ExpiresAt.After(time.Now()) {
		return nil
	}

	if err := s.blocklist.Revoke(ctx, sc.TokenID, sc.ExpiresAt); err != nil {
		s.log.Warn().Err(err).Str("token_id", sc.TokenID).Msg("failed to revoke token")
	}
	return nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"jti":   uuid.NewString(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *AuthService) parseToken(token string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

func sessionClaims(claims jwt.MapClaims) *domain.SessionClaims {
	sc := &domain.SessionClaims{}
	sc.UserID, _ = claims["sub"].(string)
	sc.Email, _ = claims["email"].(string)
	sc.TokenID, _ = claims["jti"].(string)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		sc.ExpiresAt = exp.Time
	}
	return sc
}
