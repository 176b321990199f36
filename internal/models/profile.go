package models

import (
	"time"

	"github.com/google/uuid"
)

const defaultProfileDescription = "I just joined Flextrack!"

// Profile holds the public fitness stats for an account.
type Profile struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"account_id"`
	Username    string    `gorm:"size:100;not null" json:"username"`
	Height      float64   `json:"height"`
	Weight      float64   `json:"weight"`
	Deadlift    float64   `json:"deadlift"`
	Squat       float64   `json:"squat"`
	OHP         float64   `json:"ohp"`
	Bench       float64   `json:"bench"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewProfile returns the zero-stat profile every account starts with.
func NewProfile(accountID uuid.UUID, username string) Profile {
	return Profile{
		ID:          uuid.New(),
		AccountID:   accountID,
		Username:    username,
		Description: defaultProfileDescription,
	}
}
