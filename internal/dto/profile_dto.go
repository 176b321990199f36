package dto

import "github.com/flextrackapp/flextrack-backend/internal/models"

// UpdateProfileRequest updates only the fields present in the body.
type UpdateProfileRequest struct {
	Username    *string  `json:"username"`
	Height      *float64 `json:"height"`
	Weight      *float64 `json:"weight"`
	Deadlift    *float64 `json:"deadlift"`
	Squat       *float64 `json:"squat"`
	OHP         *float64 `json:"ohp"`
	Bench       *float64 `json:"bench"`
	Description *string  `json:"description"`
}

// ProfileWithFriend is a profile annotated with whether the viewer already
// has that account as a friend.
type ProfileWithFriend struct {
	models.Profile
	Friend bool `json:"friend"`
}
