package ports

import (
	"context"

	"github.com/shopcart/cart-backend/internal/core/domain"
)

// AuthService covers the full session lifecycle: account creation, login with
// token issuance, stateless verification, and revocation on logout.
type AuthService interface {
	SignUp(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Verify(ctx context.Context, token string) (*domain.SessionClaims, error)
	Logout(ctx context.Context, token string) error
}
