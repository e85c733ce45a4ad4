package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/mnyiz/lockdin/internal/models"
	"gorm.io/gorm"
)

// Store reads and writes profile, friends and accounts rows through gorm.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (s *Store) FindProfileByUsername(ctx context.Context, username string) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&profile).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

func (s *Store) CreateProfile(ctx context.Context, profile *models.Profile) error {
	return translate(s.db.WithContext(ctx).Create(profile).Error)
}

// AnyRelationship runs one query matching a row along any of the given edges.
func (s *Store) AnyRelationship(ctx context.Context, edges ...models.Edge) (bool, error) {
	if len(edges) == 0 {
		return false, nil
	}

	cond := s.db.Where("requester_id = ? AND receiver_id = ?", edges[0].RequesterID, edges[0].ReceiverID)
	for _, e := range edges[1:] {
		cond = cond.Or("requester_id = ? AND receiver_id = ?", e.RequesterID, e.ReceiverID)
	}

	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Friend{}).Where(cond).Count(&n).Error; err != nil {
		return false, translate(err)
	}
	return n > 0, nil
}

func (s *Store) CreateFriend(ctx context.Context, friend *models.Friend) error {
	if friend.ID == uuid.Nil {
		friend.ID = uuid.New()
	}
	return translate(s.db.WithContext(ctx).Create(friend).Error)
}

func (s *Store) CreateAccount(ctx context.Context, account *models.Account) error {
	return translate(s.db.WithContext(ctx).Create(account).Error)
}

func (s *Store) GetAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

func (s *Store) GetAccount(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}
