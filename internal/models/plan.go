package models

import (
	"time"

	"github.com/google/uuid"
)

// Plan is a workout template: weekday+type sessions, each with ordered sets.
type Plan struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Sessions []Session `gorm:"foreignKey:PlanID" json:"sessions,omitempty"`
	Posts    []Post    `gorm:"many2many:post_plans" json:"-"`
}

// AddSessions attaches sessions to the plan through the owning collection,
// setting the back-reference on each session at the same time.
func (p *Plan) AddSessions(sessions []Session) {
	for i := range sessions {
		sessions[i].PlanID = p.ID
	}
	p.Sessions = append(p.Sessions, sessions...)
}

// Session is one workout within a plan. The (plan, day, type) triple is the
// natural key: at most one session per weekday and workout type per plan.
type Session struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PlanID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_sessions_plan_day_type" json:"plan_id"`
	DayOfWeek   string    `gorm:"size:20;not null;uniqueIndex:idx_sessions_plan_day_type" json:"day_of_week"`
	WorkoutType string    `gorm:"size:50;not null;uniqueIndex:idx_sessions_plan_day_type" json:"workout_type"`
	CreatedAt   time.Time `json:"created_at"`

	Sets []SessionSet `gorm:"foreignKey:SessionID" json:"sets,omitempty"`
}

// AddSets attaches sets through the owning collection, mirroring the session
// back-reference onto each set.
func (s *Session) AddSets(sets []SessionSet) {
	for i := range sets {
		sets[i].SessionID = s.ID
	}
	s.Sets = append(s.Sets, sets...)
}

// SessionSet is one planned set of an exercise within a session. The same
// exercise may appear at several set numbers.
type SessionSet struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_sets_key" json:"session_id"`
	SetNumber    int       `gorm:"not null;uniqueIndex:idx_session_sets_key" json:"set_number"`
	ExerciseID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_sets_key" json:"exercise_id"`
	TargetWeight float64   `json:"target_weight"`
	TargetReps   int       `json:"target_reps"`

	Exercise *Exercise    `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
	Logs     []WorkoutLog `gorm:"foreignKey:SetID" json:"-"`
}
