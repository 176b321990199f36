package dto

import "github.com/google/uuid"

type CreateChallengeRequest struct {
	Name  string      `json:"name"`
	Users []uuid.UUID `json:"users"`
	Sets  []SetInput  `json:"sets"`
}

type InviteRequest struct {
	ChallengeID uuid.UUID `json:"challenge_id"`
	RecipientID uuid.UUID `json:"recipient_id"`
}

type AcceptInviteRequest struct {
	ChallengeID uuid.UUID `json:"challenge_id"`
}
