package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/mnyiz/lockdin/internal/friends"
	"github.com/mnyiz/lockdin/internal/identity"
	"github.com/mnyiz/lockdin/internal/models"
)

type ProfileStore interface {
	GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	CreateProfile(ctx context.Context, profile *models.Profile) error
}

type FriendRequester interface {
	Request(ctx context.Context, requester uuid.UUID, username string) (*friends.Result, error)
}

// Handler serves the HTTP routes. All collaborators are injected at startup.
type Handler struct {
	identity identity.Provider
	profiles ProfileStore
	friends  FriendRequester
	log      *slog.Logger
}

func New(provider identity.Provider, profiles ProfileStore, requester FriendRequester, log *slog.Logger) *Handler {
	return &Handler{
		identity: provider,
		profiles: profiles,
		friends:  requester,
		log:      log,
	}
}

// decode reads a JSON body into v. An empty body leaves v zero so that
// missing fields reach the identity service, which owns validation.
func decode(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
