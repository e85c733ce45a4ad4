package models

import (
	"github.com/google/uuid"
)

// Profile is the display record paired one-to-one with an account; ID is the
// account id.
type Profile struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	SessionHours float64   `json:"session_hours" gorm:"type:numeric;not null;default:0"`
}

func (Profile) TableName() string {
	return "profile"
}
