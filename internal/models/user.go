package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is a credential row owned by the local identity provider. Hosted
// deployments keep accounts in the identity service and never use this table.
type Account struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (Account) TableName() string {
	return "accounts"
}
