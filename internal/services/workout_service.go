package services

import (
	"errors"
	"time"

	"github.com/flextrackapp/flextrack-backend/internal/dto"
	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/flextrackapp/flextrack-backend/internal/repository"
	"github.com/flextrackapp/flextrack-backend/internal/views"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ErrExerciseNotResolved aborts a plan or challenge creation when a set
// references an exercise id that does not exist. Nothing is persisted.
var ErrExerciseNotResolved = errors.New("exercise not found")

type WorkoutService struct {
	plans     *repository.PlanRepository
	exercises *repository.ExerciseRepository
}

func NewWorkoutService(plans *repository.PlanRepository, exercises *repository.ExerciseRepository) *WorkoutService {
	return &WorkoutService{plans: plans, exercises: exercises}
}

func (s *WorkoutService) ListPlans(ownerID uuid.UUID) ([]models.Plan, error) {
	return s.plans.ListByOwner(ownerID, repository.PlanSessionsSets)
}

// CreatePlan builds the whole plan graph in memory, then persists it as one
// flush. Every referenced exercise id is resolved up front in a single
// batched lookup; any miss aborts before anything is written.
func (s *WorkoutService) CreatePlan(ownerID uuid.UUID, req *dto.CreatePlanRequest) (*models.Plan, error) {
	plan := models.Plan{
		ID:      uuid.New(),
		Name:    req.Name,
		OwnerID: ownerID,
	}

	sessions, err := s.buildSessions(plan.ID, req.Sessions)
	if err != nil {
		return nil, err
	}
	plan.AddSessions(sessions)

	if err := s.plans.Create(&plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// AddSessions appends sessions to an existing plan owned by the caller.
func (s *WorkoutService) AddSessions(ownerID uuid.UUID, req *dto.AddSessionsRequest) (*models.Plan, error) {
	plan, err := s.plans.Find(req.PlanID, repository.PlanSessions)
	if err != nil {
		return nil, err
	}
	if plan.OwnerID != ownerID {
		return nil, repository.ErrNotFound
	}

	sessions, err := s.buildSessions(plan.ID, req.Sessions)
	if err != nil {
		return nil, err
	}

	if err := s.plans.CreateSessions(sessions); err != nil {
		return nil, err
	}
	plan.AddSessions(sessions)
	return plan, nil
}

// buildSessions constructs sessions and their sets after batch-resolving all
// exercise references. Construction is synchronous; the only round trip is
// the one exercise lookup.
func (s *WorkoutService) buildSessions(planID uuid.UUID, inputs []dto.SessionInput) ([]models.Session, error) {
	var ids []uuid.UUID
	for _, session := range inputs {
		for _, set := range session.Sets {
			ids = append(ids, set.ExerciseID)
		}
	}

	resolved, err := s.exercises.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	sessions := make([]models.Session, 0, len(inputs))
	for _, input := range inputs {
		session := models.Session{
			ID:          uuid.New(),
			PlanID:      planID,
			DayOfWeek:   input.DayOfWeek,
			WorkoutType: input.WorkoutType,
		}

		sets := make([]models.SessionSet, 0, len(input.Sets))
		for _, set := range input.Sets {
			if _, ok := resolved[set.ExerciseID]; !ok {
				return nil, ErrExerciseNotResolved
			}
			sets = append(sets, models.SessionSet{
				ID:           uuid.New(),
				SetNumber:    set.SetNumber,
				ExerciseID:   set.ExerciseID,
				TargetWeight: set.TargetWeight,
				TargetReps:   set.TargetReps,
			})
		}
		session.AddSets(sets)
		sessions = append(sessions, session)
	}
	return sessions, nil
}

func (s *WorkoutService) GetPlan(id uuid.UUID) (*models.Plan, error) {
	return s.plans.Find(id, repository.PlanSessionsSets)
}

func (s *WorkoutService) UpdatePlanName(ownerID, planID uuid.UUID, name string) (*models.Plan, error) {
	plan, err := s.plans.Find(planID)
	if err != nil {
		return nil, err
	}
	if plan.OwnerID != ownerID {
		return nil, repository.ErrNotFound
	}
	return s.plans.UpdateName(planID, name)
}

func (s *WorkoutService) DeletePlan(ownerID, planID uuid.UUID) (int64, error) {
	plan, err := s.plans.Find(planID)
	if err != nil {
		return 0, err
	}
	if plan.OwnerID != ownerID {
		return 0, repository.ErrNotFound
	}
	return s.plans.Delete(planID)
}

// GetSession resolves a session by its natural key and shapes its sets into
// the grouped per-exercise view.
func (s *WorkoutService) GetSession(planID uuid.UUID, dayOfWeek, workoutType string) (*models.Session, []views.ExerciseGroup, error) {
	session, err := s.plans.FindSession(planID, dayOfWeek, workoutType)
	if err != nil {
		return nil, nil, err
	}
	return session, views.GroupSessionSets(session.Sets), nil
}

// LogSet records actual performance against a planned set.
func (s *WorkoutService) LogSet(accountID uuid.UUID, req *dto.LogSetRequest) (*models.WorkoutLog, error) {
	if _, err := s.plans.FindSet(req.SetID); err != nil {
		return nil, err
	}

	day, err := parseLogDate(req.Date)
	if err != nil {
		return nil, err
	}

	log := models.WorkoutLog{
		ID:        uuid.New(),
		Date:      day,
		SetID:     req.SetID,
		AccountID: accountID,
		Weight:    req.Weight,
		Reps:      req.Reps,
	}
	if err := s.plans.CreateLog(&log); err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *WorkoutService) ListLogs(accountID, setID uuid.UUID) ([]models.WorkoutLog, error) {
	return s.plans.ListLogs(accountID, setID)
}

func parseLogDate(s string) (datatypes.Date, error) {
	if s == "" {
		return datatypes.Date(time.Now()), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return datatypes.Date{}, errors.New("date must be formatted 2006-01-02")
	}
	return datatypes.Date(t), nil
}
