package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is a user identity. Login credentials and fitness stats live on the
// associated Credential and Profile rows, one of each per account.
type Account struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Credential *Credential `gorm:"foreignKey:AccountID" json:"-"`
	Profile    *Profile    `gorm:"foreignKey:AccountID" json:"profile,omitempty"`

	Exercises []Exercise   `gorm:"foreignKey:OwnerID" json:"exercises,omitempty"`
	Plans     []Plan       `gorm:"foreignKey:OwnerID" json:"plans,omitempty"`
	Posts     []Post       `gorm:"foreignKey:AuthorID" json:"posts,omitempty"`
	Logs      []WorkoutLog `gorm:"foreignKey:AccountID" json:"logs,omitempty"`

	OwnedChallenges         []Challenge `gorm:"foreignKey:OwnerID" json:"owned_challenges,omitempty"`
	ParticipatingChallenges []Challenge `gorm:"many2many:challenge_participants" json:"participating_challenges,omitempty"`

	// Friendships is the outgoing half of the mirrored friend edge. AddFriend
	// inserts both directions, so reading one side is always enough.
	Friendships []Friendship `gorm:"foreignKey:AccountID" json:"-"`

	ReceivedInvites []ChallengeInvite `gorm:"foreignKey:RecipientID" json:"received_invites,omitempty"`
	SentInvites     []ChallengeInvite `gorm:"foreignKey:InviterID" json:"-"`
	ReceivedShares  []PostShare       `gorm:"foreignKey:RecipientID" json:"received_shares,omitempty"`
	SentShares      []PostShare       `gorm:"foreignKey:SharerID" json:"-"`
}

// Friendship is one direction of an undirected friend edge. The pair is unique
// per direction; symmetry is the repository's job, not the schema's.
type Friendship struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair" json:"account_id"`
	FriendID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair" json:"friend_id"`
	CreatedAt time.Time `json:"created_at"`

	Friend *Account `gorm:"foreignKey:FriendID" json:"friend,omitempty"`
}

func (Friendship) TableName() string {
	return "friendships"
}
