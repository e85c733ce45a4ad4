package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/mnyiz/lockdin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_Profiles(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	id := uuid.New()

	require.NoError(t, m.CreateProfile(ctx, &models.Profile{ID: id, Username: "alice"}))

	got, err := m.GetProfile(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	byName, err := m.FindProfileByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, id, byName.ID)

	_, err = m.FindProfileByUsername(ctx, "Alice")
	assert.ErrorIs(t, err, ErrNotFound)

	err = m.CreateProfile(ctx, &models.Profile{ID: uuid.New(), Username: "alice"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestMemoryStore_AnyRelationship(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	a, b, c := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, m.CreateFriend(ctx, &models.Friend{RequesterID: a, ReceiverID: b, Status: models.FriendStatusPending}))

	tests := []struct {
		name  string
		edges []models.Edge
		want  bool
	}{
		{"forward", []models.Edge{{RequesterID: a, ReceiverID: b}}, true},
		{"reverse only", []models.Edge{{RequesterID: b, ReceiverID: a}}, false},
		{"both orderings", models.Both(b, a), true},
		{"unrelated pair", models.Both(a, c), false},
		{"no edges", nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.AnyRelationship(ctx, tc.edges...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMemoryStore_CreateFriendRejectsReversePair(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	a, b := uuid.New(), uuid.New()

	first := &models.Friend{RequesterID: a, ReceiverID: b, Status: models.FriendStatusPending}
	require.NoError(t, m.CreateFriend(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	err := m.CreateFriend(ctx, &models.Friend{RequesterID: b, ReceiverID: a, Status: models.FriendStatusPending})
	assert.ErrorIs(t, err, ErrDuplicate)

	err = m.CreateFriend(ctx, &models.Friend{RequesterID: a, ReceiverID: a})
	assert.Error(t, err)

	assert.Len(t, m.Friends(), 1)
}

func TestMemoryStore_Accounts(t *testing.T) {
	ctx := context.Background()
	m := NewMemoryStore()
	id := uuid.New()

	require.NoError(t, m.CreateAccount(ctx, &models.Account{ID: id, Email: "a@b.com", PasswordHash: "h"}))
	assert.ErrorIs(t, m.CreateAccount(ctx, &models.Account{ID: uuid.New(), Email: "a@b.com"}), ErrDuplicate)

	got, err := m.GetAccountByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)

	_, err = m.GetAccount(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
