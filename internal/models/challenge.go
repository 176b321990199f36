package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ChallengeStatusInProgress is the only status this service ever writes.
// Completion transitions are not modeled yet.
const ChallengeStatusInProgress = "In Progress"

// Challenge is a competitive structure shared across participant accounts:
// a flat list of target sets, with per-participant logs.
type Challenge struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:100;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `gorm:"size:50;not null;default:'In Progress'" json:"status"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`

	Participants []Account         `gorm:"many2many:challenge_participants" json:"participants,omitempty"`
	Sets         []ChallengeSet    `gorm:"foreignKey:ChallengeID" json:"sets,omitempty"`
	Invites      []ChallengeInvite `gorm:"foreignKey:ChallengeID" json:"-"`
	Posts        []Post            `gorm:"many2many:post_challenges" json:"-"`
}

// NewChallenge builds a challenge owned by ownerID with its sets attached
// through the owning collection.
func NewChallenge(name string, ownerID uuid.UUID, sets []ChallengeSet) Challenge {
	now := time.Now()
	c := Challenge{
		ID:      uuid.New(),
		Name:    name,
		OwnerID: ownerID,
		Start:   now,
		End:     now,
		Status:  ChallengeStatusInProgress,
	}
	c.AddSets(sets)
	return c
}

// AddSets attaches sets through the owning collection, mirroring the challenge
// back-reference onto each set.
func (c *Challenge) AddSets(sets []ChallengeSet) {
	for i := range sets {
		sets[i].ChallengeID = c.ID
	}
	c.Sets = append(c.Sets, sets...)
}

// ChallengeSet mirrors SessionSet for the challenge context.
type ChallengeSet struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ChallengeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_sets_key" json:"challenge_id"`
	SetNumber    int       `gorm:"not null;uniqueIndex:idx_challenge_sets_key" json:"set_number"`
	ExerciseID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_sets_key" json:"exercise_id"`
	TargetWeight float64   `json:"target_weight"`
	TargetReps   int       `json:"target_reps"`

	Exercise *Exercise      `gorm:"foreignKey:ExerciseID" json:"exercise,omitempty"`
	Logs     []ChallengeLog `gorm:"foreignKey:SetID" json:"-"`
}

// ChallengeLog mirrors WorkoutLog for the challenge context.
type ChallengeLog struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Date      datatypes.Date `gorm:"not null;uniqueIndex:idx_challenge_logs_key" json:"date"`
	SetID     uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_logs_key" json:"set_id"`
	AccountID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_logs_key" json:"account_id"`
	Weight    float64        `json:"weight"`
	Reps      int            `json:"reps"`

	Set   *ChallengeSet `gorm:"foreignKey:SetID" json:"set,omitempty"`
	Posts []Post        `gorm:"many2many:post_challenge_logs" json:"-"`
}

// ChallengeInvite carries no payload beyond who invited whom to what.
type ChallengeInvite struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_invites_key" json:"recipient_id"`
	ChallengeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_invites_key" json:"challenge_id"`
	InviterID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_challenge_invites_key" json:"inviter_id"`
	CreatedAt   time.Time `json:"created_at"`

	Challenge *Challenge `gorm:"foreignKey:ChallengeID" json:"challenge,omitempty"`
}
