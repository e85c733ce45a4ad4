package models

import (
	"time"

	"github.com/google/uuid"
)

type FriendStatus string

const (
	FriendStatusPending  FriendStatus = "pending"
	FriendStatusAccepted FriendStatus = "accepted"
	FriendStatusRejected FriendStatus = "rejected"
)

// Friend is a directed relationship row. At most one row exists per unordered
// pair of profiles.
type Friend struct {
	ID          uuid.UUID    `json:"id" gorm:"type:uuid;primaryKey"`
	RequesterID uuid.UUID    `json:"requester_id" gorm:"type:uuid;index;not null"`
	ReceiverID  uuid.UUID    `json:"receiver_id" gorm:"type:uuid;index;not null;check:friends_no_self,requester_id <> receiver_id"`
	Status      FriendStatus `json:"status" gorm:"type:text;not null;default:'pending'"`
	CreatedAt   time.Time    `json:"created_at" gorm:"autoCreateTime"`
}

func (Friend) TableName() string {
	return "friends"
}

// Edge is one direction of a relationship, used to query for existing rows.
type Edge struct {
	RequesterID uuid.UUID
	ReceiverID  uuid.UUID
}

// Both returns the two orderings of the unordered pair {a, b}.
func Both(a, b uuid.UUID) []Edge {
	return []Edge{
		{RequesterID: a, ReceiverID: b},
		{RequesterID: b, ReceiverID: a},
	}
}

// Matches reports whether f runs along e.
func (f Friend) Matches(e Edge) bool {
	return f.RequesterID == e.RequesterID && f.ReceiverID == e.ReceiverID
}
