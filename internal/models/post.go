package models

import (
	"time"

	"github.com/google/uuid"
)

// Post is a feed entry. CommentCount is a monotonic per-post counter used to
// assign comment sequence numbers; it never decreases, so deleted comments
// cannot cause sequence collisions.
type Post struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string    `gorm:"size:200;not null" json:"title"`
	Caption      string    `gorm:"type:text" json:"caption"`
	Date         time.Time `gorm:"not null;index" json:"date"`
	AuthorID     uuid.UUID `gorm:"type:uuid;not null;index" json:"author_id"`
	CommentCount int       `gorm:"not null;default:0" json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`

	Author   *Account    `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Comments []Comment   `gorm:"foreignKey:PostID" json:"comments,omitempty"`
	Shares   []PostShare `gorm:"foreignKey:PostID" json:"-"`

	Challenges    []Challenge    `gorm:"many2many:post_challenges" json:"challenges,omitempty"`
	Plans         []Plan         `gorm:"many2many:post_plans" json:"plans,omitempty"`
	WorkoutLogs   []WorkoutLog   `gorm:"many2many:post_workout_logs" json:"workout_logs,omitempty"`
	ChallengeLogs []ChallengeLog `gorm:"many2many:post_challenge_logs" json:"challenge_logs,omitempty"`
}

// Comment is identified by (post, seq). Seq comes from the post's monotonic
// comment counter, so it is unique within the post but not globally.
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	PostID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_comments_post_seq" json:"post_id"`
	Seq       int       `gorm:"not null;uniqueIndex:idx_comments_post_seq" json:"id"`
	Caption   string    `gorm:"type:text;not null" json:"caption"`
	Date      time.Time `gorm:"not null" json:"date"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`

	Author *Account `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
}

// PostShare records a post forwarded from one account to another.
type PostShare struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_shares_key" json:"recipient_id"`
	PostID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_shares_key" json:"post_id"`
	SharerID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_post_shares_key" json:"sharer_id"`
	CreatedAt   time.Time `json:"created_at"`

	Post *Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}
