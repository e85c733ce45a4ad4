package identity

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/mnyiz/lockdin/internal/utils"
)

// Claims mirrors the shape of Supabase access tokens: the account id is the
// subject and the email rides alongside.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl}
}

func (t *TokenIssuer) Issue(id uuid.UUID, email string) (string, error) {
	jti, err := utils.GenerateSecureToken(16)
	if err != nil {
		return "", fmt.Errorf("token id: %w", err)
	}

	now := time.Now()
	claims := &Claims{
		Email: email,
		Role:  "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   id.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse validates signature and expiry. Every failure wraps ErrUnauthorized.
func (t *TokenIssuer) Parse(token string) (Caller, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return Caller{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return Caller{}, ErrUnauthorized
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Caller{}, fmt.Errorf("%w: subject: %w", ErrUnauthorized, err)
	}
	if claims.Email == "" {
		return Caller{}, fmt.Errorf("%w: %w", ErrUnauthorized, errors.New("token has no email"))
	}
	return Caller{ID: id, Email: claims.Email}, nil
}

func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}
