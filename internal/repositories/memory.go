package repositories

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mnyiz/lockdin/internal/models"
)

// MemoryStore keeps rows in process memory. It enforces the same uniqueness
// rules as the postgres schema and is meant for development and tests.
type MemoryStore struct {
	mu       sync.RWMutex
	profiles map[uuid.UUID]models.Profile
	friends  []models.Friend
	accounts map[uuid.UUID]models.Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		profiles: make(map[uuid.UUID]models.Profile),
		accounts: make(map[uuid.UUID]models.Account),
	}
}

func (m *MemoryStore) GetProfile(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (m *MemoryStore) FindProfileByUsername(_ context.Context, username string) (*models.Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.profiles {
		if p.Username == username {
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) CreateProfile(_ context.Context, profile *models.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.profiles[profile.ID]; ok {
		return fmt.Errorf("%w: profile %s", ErrDuplicate, profile.ID)
	}
	for _, p := range m.profiles {
		if p.Username == profile.Username {
			return fmt.Errorf("%w: username %q", ErrDuplicate, profile.Username)
		}
	}
	m.profiles[profile.ID] = *profile
	return nil
}

func (m *MemoryStore) AnyRelationship(_ context.Context, edges ...models.Edge) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, f := range m.friends {
		for _, e := range edges {
			if f.Matches(e) {
				return true, nil
			}
		}
	}
	return false, nil
}

func (m *MemoryStore) CreateFriend(_ context.Context, friend *models.Friend) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if friend.RequesterID == friend.ReceiverID {
		return fmt.Errorf("friends_no_self: requester and receiver are both %s", friend.RequesterID)
	}
	for _, f := range m.friends {
		for _, e := range models.Both(friend.RequesterID, friend.ReceiverID) {
			if f.Matches(e) {
				return fmt.Errorf("%w: friends_unordered_pair_idx", ErrDuplicate)
			}
		}
	}

	if friend.ID == uuid.Nil {
		friend.ID = uuid.New()
	}
	if friend.CreatedAt.IsZero() {
		friend.CreatedAt = time.Now().UTC()
	}
	m.friends = append(m.friends, *friend)
	return nil
}

// Friends returns a copy of every relationship row.
func (m *MemoryStore) Friends() []models.Friend {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return append([]models.Friend(nil), m.friends...)
}

func (m *MemoryStore) CreateAccount(_ context.Context, account *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.accounts {
		if a.Email == account.Email {
			return fmt.Errorf("%w: email %q", ErrDuplicate, account.Email)
		}
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}
	m.accounts[account.ID] = *account
	return nil
}

func (m *MemoryStore) GetAccountByEmail(_ context.Context, email string) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.accounts {
		if a.Email == email {
			return &a, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryStore) GetAccount(_ context.Context, id uuid.UUID) (*models.Account, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.accounts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &a, nil
}
