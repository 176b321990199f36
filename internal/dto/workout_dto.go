package dto

import "github.com/google/uuid"

type CreateExerciseRequest struct {
	Name         string `json:"name"`
	TargetMuscle string `json:"targetMuscle"`
}

type SetInput struct {
	SetNumber    int       `json:"set_number"`
	ExerciseID   uuid.UUID `json:"exercise_id"`
	TargetWeight float64   `json:"target_weight"`
	TargetReps   int       `json:"target_reps"`
}

type SessionInput struct {
	DayOfWeek   string     `json:"day_of_week"`
	WorkoutType string     `json:"workout_type"`
	Sets        []SetInput `json:"sets"`
}

type CreatePlanRequest struct {
	Name     string         `json:"name"`
	Sessions []SessionInput `json:"sessions"`
}

type AddSessionsRequest struct {
	PlanID   uuid.UUID      `json:"plan_id"`
	Sessions []SessionInput `json:"sessions"`
}

type UpdatePlanNameRequest struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// LogSetRequest records actual performance against a planned set. Date is
// "2006-01-02"; empty means today.
type LogSetRequest struct {
	SetID  uuid.UUID `json:"set_id"`
	Date   string    `json:"date"`
	Weight float64   `json:"weight"`
	Reps   int       `json:"reps"`
}
