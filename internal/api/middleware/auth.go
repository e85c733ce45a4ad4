package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mnyiz/lockdin/internal/identity"
	"github.com/mnyiz/lockdin/internal/utils"
)

// Verifier resolves an access token to the caller it was issued to.
type Verifier interface {
	VerifyToken(ctx context.Context, token string) (identity.Caller, error)
}

// CallerHandlerFunc is a handler that runs only for a verified caller.
type CallerHandlerFunc func(w http.ResponseWriter, r *http.Request, caller identity.Caller)

// Authenticate reads the bearer token from r and verifies it. Every failure,
// including an unreachable identity service, wraps identity.ErrUnauthorized.
func Authenticate(r *http.Request, v Verifier) (identity.Caller, error) {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return identity.Caller{}, fmt.Errorf("%w: missing authorization header", identity.ErrUnauthorized)
	}

	scheme, token, ok := strings.Cut(auth, " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return identity.Caller{}, fmt.Errorf("%w: malformed authorization header", identity.ErrUnauthorized)
	}

	caller, err := v.VerifyToken(r.Context(), token)
	if err != nil {
		return identity.Caller{}, fmt.Errorf("%w: %w", identity.ErrUnauthorized, err)
	}
	return caller, nil
}

// RequireCaller passes the verified caller to next, or answers 401.
func RequireCaller(v Verifier, log *slog.Logger, next CallerHandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, err := Authenticate(r, v)
		if err != nil {
			log.WarnContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
			utils.ErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next(w, r, caller)
	})
}
