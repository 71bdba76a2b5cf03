package domain

import (
	"errors"
	"time"
)

// SessionCookieName is the fixed name of the HTTP-only session cookie.
const SessionCookieName = "token"

var ErrMissingToken = errors.New("no session token")
var ErrInvalidToken = errors.New("invalid or expired token")

// SessionClaims is the verified content of a session token. Verification is
// purely cryptographic: no user lookup happens, so a deleted user's token
// stays valid until it expires or its TokenID is revoked.
type SessionClaims struct {
	UserID    string
	Email     string
	TokenID   string
	ExpiresAt time.Time
}
