package models

import (
	"time"

	"github.com/google/uuid"
)

// Credential maps a unique email to a bcrypt password hash and one account.
// The hash never leaves the database layer.
type Credential struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	AccountID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"account_id"`
	CreatedAt    time.Time `json:"created_at"`
}
