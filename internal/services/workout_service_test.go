package services

import (
	"errors"
	"testing"

	"github.com/flextrackapp/flextrack-backend/internal/dto"
	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/flextrackapp/flextrack-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newWorkoutService(db *gorm.DB) *WorkoutService {
	return NewWorkoutService(repository.NewPlanRepository(db), repository.NewExerciseRepository(db))
}

func TestCreatePlanPersistsSessionsAndSets(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkoutService(db)
	auth := newAuthService(t, db)
	owner := signUp(t, auth, "alice", "alice@example.com")
	benchID := seedExerciseFor(t, db, owner, "Bench Press")
	squatID := seedExerciseFor(t, db, owner, "Squat")

	plan, err := svc.CreatePlan(owner, &dto.CreatePlanRequest{
		Name: "strength",
		Sessions: []dto.SessionInput{
			{
				DayOfWeek:   "Monday",
				WorkoutType: "Push",
				Sets: []dto.SetInput{
					{SetNumber: 1, ExerciseID: benchID, TargetWeight: 80, TargetReps: 8},
					{SetNumber: 2, ExerciseID: benchID, TargetWeight: 85, TargetReps: 6},
				},
			},
			{
				DayOfWeek:   "Wednesday",
				WorkoutType: "Legs",
				Sets: []dto.SetInput{
					{SetNumber: 1, ExerciseID: squatID, TargetWeight: 120, TargetReps: 5},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}

	got, err := svc.GetPlan(plan.ID)
	if err != nil {
		t.Fatalf("GetPlan failed: %v", err)
	}
	if len(got.Sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(got.Sessions))
	}
	if n := countRows(t, db, &models.SessionSet{}); n != 3 {
		t.Errorf("got %d sets, want 3", n)
	}
}

func TestCreatePlanAbortsOnUnknownExercise(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkoutService(db)
	auth := newAuthService(t, db)
	owner := signUp(t, auth, "alice", "alice@example.com")
	benchID := seedExerciseFor(t, db, owner, "Bench Press")

	_, err := svc.CreatePlan(owner, &dto.CreatePlanRequest{
		Name: "strength",
		Sessions: []dto.SessionInput{
			{
				DayOfWeek:   "Monday",
				WorkoutType: "Push",
				Sets: []dto.SetInput{
					{SetNumber: 1, ExerciseID: benchID, TargetReps: 8},
					{SetNumber: 2, ExerciseID: uuid.New(), TargetReps: 6},
				},
			},
		},
	})
	if !errors.Is(err, ErrExerciseNotResolved) {
		t.Fatalf("got %v, want ErrExerciseNotResolved", err)
	}

	// Nothing may be persisted when any exercise reference fails to resolve.
	if n := countRows(t, db, &models.Plan{}); n != 0 {
		t.Errorf("got %d plans, want 0", n)
	}
	if n := countRows(t, db, &models.Session{}); n != 0 {
		t.Errorf("got %d sessions, want 0", n)
	}
	if n := countRows(t, db, &models.SessionSet{}); n != 0 {
		t.Errorf("got %d sets, want 0", n)
	}
}

func TestAddSessionsOwnerCheck(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkoutService(db)
	auth := newAuthService(t, db)
	owner := signUp(t, auth, "alice", "alice@example.com")
	stranger := signUp(t, auth, "bob", "bob@example.com")

	plan, err := svc.CreatePlan(owner, &dto.CreatePlanRequest{Name: "strength"})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}

	_, err = svc.AddSessions(stranger, &dto.AddSessionsRequest{PlanID: plan.ID})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound for foreign plan", err)
	}
}

func TestGetSessionGroupsByExercise(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkoutService(db)
	auth := newAuthService(t, db)
	owner := signUp(t, auth, "alice", "alice@example.com")
	benchID := seedExerciseFor(t, db, owner, "Bench Press")
	squatID := seedExerciseFor(t, db, owner, "Squat")

	plan, err := svc.CreatePlan(owner, &dto.CreatePlanRequest{
		Name: "strength",
		Sessions: []dto.SessionInput{
			{
				DayOfWeek:   "Monday",
				WorkoutType: "Push",
				Sets: []dto.SetInput{
					{SetNumber: 1, ExerciseID: benchID, TargetReps: 8},
					{SetNumber: 2, ExerciseID: squatID, TargetReps: 5},
					{SetNumber: 3, ExerciseID: benchID, TargetReps: 6},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}

	_, groups, err := svc.GetSession(plan.ID, "Monday", "Push")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	if groups[0].Name != "Bench Press" || groups[1].Name != "Squat" {
		t.Errorf("group order %q, %q; want first-appearance order", groups[0].Name, groups[1].Name)
	}
	if len(groups[0].Sets) != 2 {
		t.Errorf("bench group has %d sets, want 2", len(groups[0].Sets))
	}
	for _, g := range groups {
		for _, set := range g.Sets {
			if set.Completed {
				t.Error("completed must always be false")
			}
		}
	}
}

func TestUpdatePlanNameOwnerCheck(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkoutService(db)
	auth := newAuthService(t, db)
	owner := signUp(t, auth, "alice", "alice@example.com")
	stranger := signUp(t, auth, "bob", "bob@example.com")

	plan, err := svc.CreatePlan(owner, &dto.CreatePlanRequest{Name: "old"})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}

	if _, err := svc.UpdatePlanName(stranger, plan.ID, "hijacked"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound for foreign plan", err)
	}

	updated, err := svc.UpdatePlanName(owner, plan.ID, "new")
	if err != nil {
		t.Fatalf("UpdatePlanName failed: %v", err)
	}
	if updated.Name != "new" {
		t.Errorf("got %q, want new", updated.Name)
	}
}

func TestLogSetRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkoutService(db)
	auth := newAuthService(t, db)
	owner := signUp(t, auth, "alice", "alice@example.com")
	benchID := seedExerciseFor(t, db, owner, "Bench Press")

	plan, err := svc.CreatePlan(owner, &dto.CreatePlanRequest{
		Name: "strength",
		Sessions: []dto.SessionInput{
			{
				DayOfWeek:   "Monday",
				WorkoutType: "Push",
				Sets:        []dto.SetInput{{SetNumber: 1, ExerciseID: benchID, TargetReps: 8}},
			},
		},
	})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}
	setID := plan.Sessions[0].Sets[0].ID

	if _, err := svc.LogSet(owner, &dto.LogSetRequest{SetID: setID, Date: "2024-05-01", Weight: 82.5, Reps: 8}); err != nil {
		t.Fatalf("LogSet failed: %v", err)
	}

	logs, err := svc.ListLogs(owner, setID)
	if err != nil {
		t.Fatalf("ListLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("got %d logs, want 1", len(logs))
	}
	if logs[0].Weight != 82.5 || logs[0].Reps != 8 {
		t.Errorf("got weight %.1f reps %d, want 82.5 and 8", logs[0].Weight, logs[0].Reps)
	}
}

func TestLogSetRejectsUnknownSetAndBadDate(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkoutService(db)
	auth := newAuthService(t, db)
	owner := signUp(t, auth, "alice", "alice@example.com")

	if _, err := svc.LogSet(owner, &dto.LogSetRequest{SetID: uuid.New()}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound for unknown set", err)
	}

	benchID := seedExerciseFor(t, db, owner, "Bench Press")
	plan, err := svc.CreatePlan(owner, &dto.CreatePlanRequest{
		Name: "strength",
		Sessions: []dto.SessionInput{
			{DayOfWeek: "Monday", WorkoutType: "Push", Sets: []dto.SetInput{{SetNumber: 1, ExerciseID: benchID}}},
		},
	})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}

	if _, err := svc.LogSet(owner, &dto.LogSetRequest{SetID: plan.Sessions[0].Sets[0].ID, Date: "01/05/2024"}); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDeletePlanOwnerCheck(t *testing.T) {
	db := newTestDB(t)
	svc := newWorkoutService(db)
	auth := newAuthService(t, db)
	owner := signUp(t, auth, "alice", "alice@example.com")
	stranger := signUp(t, auth, "bob", "bob@example.com")

	plan, err := svc.CreatePlan(owner, &dto.CreatePlanRequest{Name: "strength"})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}

	if _, err := svc.DeletePlan(stranger, plan.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound for foreign plan", err)
	}

	deleted, err := svc.DeletePlan(owner, plan.ID)
	if err != nil {
		t.Fatalf("DeletePlan failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("got %d deleted, want 1", deleted)
	}
}
