package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Title   string    `json:"title"`
	Caption string    `json:"caption"`
	Date    time.Time `json:"date"`

	// Optional associations rendered inline with the post.
	PlanID      *uuid.UUID `json:"plan_id,omitempty"`
	ChallengeID *uuid.UUID `json:"challenge_id,omitempty"`
}

type AddCommentRequest struct {
	PostID  uuid.UUID `json:"postId"`
	Caption string    `json:"caption"`
	Date    time.Time `json:"date"`
}

type SharePostRequest struct {
	PostID      uuid.UUID `json:"post_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
}
