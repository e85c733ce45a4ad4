package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mnyiz/lockdin/internal/models"
	"github.com/mnyiz/lockdin/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AccountStore interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	GetAccountByEmail(ctx context.Context, email string) (*models.Account, error)
}

// LocalProvider keeps credentials in the application's own database.
type LocalProvider struct {
	accounts AccountStore
	tokens   *TokenIssuer
	cost     int
}

var _ Provider = (*LocalProvider)(nil)

func NewLocalProvider(accounts AccountStore, tokens *TokenIssuer) *LocalProvider {
	return &LocalProvider{accounts: accounts, tokens: tokens, cost: bcrypt.DefaultCost}
}

// WithHashCost overrides the bcrypt cost, mostly so tests stay fast.
func (p *LocalProvider) WithHashCost(cost int) *LocalProvider {
	p.cost = cost
	return p
}

func (p *LocalProvider) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	if email == "" || password == "" {
		return nil, &AuthError{Status: http.StatusBadRequest, Message: "missing email or password"}
	}

	account, err := p.accounts.GetAccountByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, &AuthError{Status: http.StatusBadRequest, Message: "Invalid login credentials"}
	}
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, &AuthError{Status: http.StatusBadRequest, Message: "Invalid login credentials"}
	}

	token, err := p.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return nil, err
	}

	return &Session{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(p.tokens.TTL().Seconds()),
		User:        toAccount(account),
	}, nil
}

func (p *LocalProvider) CreateAccount(ctx context.Context, email, password string) (*Account, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, &AuthError{Status: http.StatusBadRequest, Message: "missing email or password"}
	}
	if !strings.Contains(email, "@") {
		return nil, &AuthError{Status: http.StatusBadRequest, Message: "Unable to validate email address: invalid format"}
	}
	if len(password) < minPasswordLength {
		return nil, &AuthError{
			Status:  http.StatusUnprocessableEntity,
			Message: fmt.Sprintf("Password should be at least %d characters.", minPasswordLength),
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{ID: uuid.New(), Email: email, PasswordHash: string(hash)}
	if err := p.accounts.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, &AuthError{Status: http.StatusUnprocessableEntity, Message: "User already registered"}
		}
		return nil, fmt.Errorf("create account: %w", err)
	}
	return toAccount(account), nil
}

func (p *LocalProvider) VerifyToken(_ context.Context, token string) (Caller, error) {
	return p.tokens.Parse(token)
}

func toAccount(a *models.Account) *Account {
	return &Account{ID: a.ID, Email: a.Email, Role: "authenticated", CreatedAt: a.CreatedAt}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
