package services

import (
	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/flextrackapp/flextrack-backend/internal/repository"
	"github.com/google/uuid"
)

type ExerciseService struct {
	exercises *repository.ExerciseRepository
}

func NewExerciseService(exercises *repository.ExerciseRepository) *ExerciseService {
	return &ExerciseService{exercises: exercises}
}

func (s *ExerciseService) List(ownerID uuid.UUID) ([]models.Exercise, error) {
	return s.exercises.ListByOwner(ownerID)
}

func (s *ExerciseService) Create(ownerID uuid.UUID, name, targetMuscle string) (*models.Exercise, error) {
	exercise := models.Exercise{
		ID:           uuid.New(),
		Name:         name,
		TargetMuscle: targetMuscle,
		OwnerID:      ownerID,
	}
	if err := s.exercises.Create(&exercise); err != nil {
		return nil, err
	}
	return &exercise, nil
}

// Delete removes the exercise and everything that depends on it. Returns the
// number of exercises deleted (0 or 1).
func (s *ExerciseService) Delete(ownerID, exerciseID uuid.UUID) (int64, error) {
	exercise, err := s.exercises.Find(exerciseID)
	if err != nil {
		return 0, err
	}
	if exercise.OwnerID != ownerID {
		return 0, repository.ErrNotFound
	}
	return s.exercises.Delete(exerciseID)
}
