// Package friends decides whether a friend request may be recorded.
//
// A request from A to B is admitted only when B exists, B is not A, and no
// relationship row joins A and B in either direction. Admitted requests are
// stored as pending rows from A to B.
package friends

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/mnyiz/lockdin/internal/models"
	"github.com/mnyiz/lockdin/internal/repositories"
)

type ProfileFinder interface {
	FindProfileByUsername(ctx context.Context, username string) (*models.Profile, error)
}

type RelationshipStore interface {
	// AnyRelationship reports, in a single lookup, whether a row runs along
	// any of the given edges.
	AnyRelationship(ctx context.Context, edges ...models.Edge) (bool, error)
	CreateFriend(ctx context.Context, friend *models.Friend) error
}

type Store interface {
	ProfileFinder
	RelationshipStore
}

// RelationshipExists reports whether a and b are already related, whichever
// of them sent the request.
func RelationshipExists(ctx context.Context, store RelationshipStore, a, b uuid.UUID) (bool, error) {
	return store.AnyRelationship(ctx, models.Both(a, b)...)
}

type Result struct {
	Friend  *models.Friend
	Message string
}

type Service struct {
	store Store
	locks *pairLocks
	log   *slog.Logger
}

func NewService(store Store, log *slog.Logger) *Service {
	return &Service{store: store, locks: newPairLocks(), log: log}
}

// Request records a pending relationship from requester to the profile named
// username.
func (s *Service) Request(ctx context.Context, requester uuid.UUID, username string) (*Result, error) {
	target, err := s.store.FindProfileByUsername(ctx, username)
	if errors.Is(err, repositories.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, &StorageError{Err: fmt.Errorf("find profile: %w", err)}
	}

	if target.ID == requester {
		return nil, ErrSelfReference
	}

	// The check and the insert must not interleave with another request for
	// the same pair.
	unlock := s.locks.lock(requester, target.ID)
	defer unlock()

	exists, err := RelationshipExists(ctx, s.store, requester, target.ID)
	if err != nil {
		return nil, &StorageError{Err: fmt.Errorf("check relationship: %w", err)}
	}
	if exists {
		return nil, ErrConflict
	}

	friend := &models.Friend{
		RequesterID: requester,
		ReceiverID:  target.ID,
		Status:      models.FriendStatusPending,
	}
	if err := s.store.CreateFriend(ctx, friend); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, &StorageError{Err: err}
	}

	s.log.InfoContext(ctx, "friend request created",
		"requester_id", requester, "receiver_id", target.ID, "friend_id", friend.ID)

	return &Result{
		Friend:  friend,
		Message: fmt.Sprintf("Friend request sent to %s", username),
	}, nil
}
