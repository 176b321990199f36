package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionToken is a server-side session record. Only the SHA-256 hash of the
// opaque cookie value is stored.
type SessionToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index" json:"account_id"`
	TokenHash string    `gorm:"uniqueIndex;not null;size:64" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
	Revoked   bool      `gorm:"default:false" json:"revoked"`
	CreatedAt time.Time `json:"created_at"`
}
