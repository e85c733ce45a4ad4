// Package identity talks to the service that owns accounts and issues access
// tokens. The hosted Supabase provider is the production path; the local
// provider stores bcrypt hashes and signs its own tokens for offline use.
package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrUnauthorized means a bearer token could not be resolved to a caller.
var ErrUnauthorized = errors.New("unauthorized")

// AuthError carries a rejection from the identity service. Message is the
// service's own wording and is relayed to clients unchanged.
type AuthError struct {
	Status  int
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "identity service rejected the request"
	}
	return e.Message
}

type Account struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Session struct {
	AccessToken  string   `json:"access_token"`
	TokenType    string   `json:"token_type"`
	ExpiresIn    int      `json:"expires_in"`
	RefreshToken string   `json:"refresh_token"`
	User         *Account `json:"user"`
}

// Caller is the identity behind a verified access token.
type Caller struct {
	ID    uuid.UUID
	Email string
}

type Provider interface {
	Authenticate(ctx context.Context, email, password string) (*Session, error)
	CreateAccount(ctx context.Context, email, password string) (*Account, error)
	VerifyToken(ctx context.Context, token string) (Caller, error)
}
