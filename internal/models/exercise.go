package models

import (
	"time"

	"github.com/google/uuid"
)

// Exercise is a named movement owned by the account that created it.
// Deleting an exercise cascades to every set referencing it and their logs.
type Exercise struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string    `gorm:"size:100;not null" json:"name"`
	TargetMuscle string    `gorm:"size:100" json:"targetMuscle"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt    time.Time `json:"created_at"`

	Sets          []SessionSet   `gorm:"foreignKey:ExerciseID" json:"-"`
	ChallengeSets []ChallengeSet `gorm:"foreignKey:ExerciseID" json:"-"`
}
