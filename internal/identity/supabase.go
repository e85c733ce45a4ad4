package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

// SupabaseProvider calls the GoTrue REST API of a Supabase project. Service
// calls authenticate with the service-role key; token verification forwards
// the caller's own token.
type SupabaseProvider struct {
	baseURL string
	base    *http.Client
	service *http.Client
}

var _ Provider = (*SupabaseProvider)(nil)

// NewSupabaseProvider builds a provider for the project at baseURL. A zero
// timeout leaves gateway calls bounded only by the request context.
func NewSupabaseProvider(baseURL, serviceRoleKey string, timeout time.Duration) *SupabaseProvider {
	base := &http.Client{
		Timeout:   timeout,
		Transport: &apiKeyTransport{key: serviceRoleKey, next: http.DefaultTransport},
	}
	return &SupabaseProvider{
		baseURL: baseURL,
		base:    base,
		service: bearerClient(base, serviceRoleKey),
	}
}

// bearerClient wraps base so every request carries token as its bearer.
func bearerClient(base *http.Client, token string) *http.Client {
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}

type apiKeyTransport struct {
	key  string
	next http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("apikey", t.key)
	return t.next.RoundTrip(r)
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (p *SupabaseProvider) Authenticate(ctx context.Context, email, password string) (*Session, error) {
	var session Session
	err := p.do(ctx, p.service, http.MethodPost, "/auth/v1/token?grant_type=password", credentials{email, password}, &session)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (p *SupabaseProvider) CreateAccount(ctx context.Context, email, password string) (*Account, error) {
	// Signup answers with the bare user, or with a session wrapping it when
	// email confirmation is disabled.
	var body struct {
		Account
		User *Account `json:"user"`
	}
	if err := p.do(ctx, p.service, http.MethodPost, "/auth/v1/signup", credentials{email, password}, &body); err != nil {
		return nil, err
	}

	switch {
	case body.User != nil:
		return body.User, nil
	case body.ID != uuid.Nil:
		return &body.Account, nil
	}
	return nil, &AuthError{Status: http.StatusBadGateway}
}

func (p *SupabaseProvider) VerifyToken(ctx context.Context, token string) (Caller, error) {
	var account Account
	if err := p.do(ctx, bearerClient(p.base, token), http.MethodGet, "/auth/v1/user", nil, &account); err != nil {
		return Caller{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if account.Email == "" {
		return Caller{}, fmt.Errorf("%w: user has no email", ErrUnauthorized)
	}
	return Caller{ID: account.ID, Email: account.Email}, nil
}

func (p *SupabaseProvider) do(ctx context.Context, client *http.Client, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &AuthError{Status: resp.StatusCode, Message: errorMessage(raw)}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage picks the human-readable field out of a GoTrue error body.
// Older and newer GoTrue versions name it differently.
func errorMessage(raw []byte) string {
	var e struct {
		Msg              string `json:"msg"`
		ErrorDescription string `json:"error_description"`
		Message          string `json:"message"`
		Error            string `json:"error"`
	}
	if err := json.Unmarshal(raw, &e); err != nil {
		return ""
	}
	for _, m := range []string{e.Msg, e.ErrorDescription, e.Message, e.Error} {
		if m != "" {
			return m
		}
	}
	return ""
}
