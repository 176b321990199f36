package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// WorkoutLog is an actual performance recorded against a planned set. One
// entry per (date, set, account).
type WorkoutLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Date      datatypes.Date `gorm:"not null;uniqueIndex:idx_workout_logs_key" json:"date"`
	SetID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_workout_logs_key" json:"set_id"`
	AccountID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_workout_logs_key" json:"account_id"`
	Weight    float64        `json:"weight"`
	Reps      int            `json:"reps"`

	Set   *SessionSet `gorm:"foreignKey:SetID" json:"set,omitempty"`
	Posts []Post      `gorm:"many2many:post_workout_logs" json:"-"`
}
