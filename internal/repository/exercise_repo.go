package repository

import (
	"fmt"

	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExerciseRepository struct {
	db *gorm.DB
}

func NewExerciseRepository(db *gorm.DB) *ExerciseRepository {
	return &ExerciseRepository{db: db}
}

func (r *ExerciseRepository) Create(exercise *models.Exercise) error {
	if err := r.db.Create(exercise).Error; err != nil {
		return fmt.Errorf("failed to create exercise: %w", err)
	}
	return nil
}

func (r *ExerciseRepository) Find(id uuid.UUID) (*models.Exercise, error) {
	var exercise models.Exercise
	if err := r.db.First(&exercise, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &exercise, nil
}

// FindByIDs resolves all referenced exercise ids in a single query, keyed by
// id. Callers building nested aggregates check the map for misses before
// constructing anything.
func (r *ExerciseRepository) FindByIDs(ids []uuid.UUID) (map[uuid.UUID]models.Exercise, error) {
	byID := make(map[uuid.UUID]models.Exercise, len(ids))
	if len(ids) == 0 {
		return byID, nil
	}
	var exercises []models.Exercise
	if err := r.db.Where("id IN ?", ids).Find(&exercises).Error; err != nil {
		return nil, fmt.Errorf("failed to load exercises: %w", err)
	}
	for _, e := range exercises {
		byID[e.ID] = e
	}
	return byID, nil
}

func (r *ExerciseRepository) ListByOwner(ownerID uuid.UUID) ([]models.Exercise, error) {
	var exercises []models.Exercise
	err := r.db.Where("owner_id = ?", ownerID).Order("created_at").Find(&exercises).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load exercises: %w", err)
	}
	return exercises, nil
}

// Delete hard-deletes the exercise and cascades through its dependent sets
// and their logs, all in one transaction.
func (r *ExerciseRepository) Delete(id uuid.UUID) (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		sessionSets := tx.Model(&models.SessionSet{}).Select("id").Where("exercise_id = ?", id)
		if err := tx.Where("set_id IN (?)", sessionSets).Delete(&models.WorkoutLog{}).Error; err != nil {
			return err
		}
		challengeSets := tx.Model(&models.ChallengeSet{}).Select("id").Where("exercise_id = ?", id)
		if err := tx.Where("set_id IN (?)", challengeSets).Delete(&models.ChallengeLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exercise_id = ?", id).Delete(&models.SessionSet{}).Error; err != nil {
			return err
		}
		if err := tx.Where("exercise_id = ?", id).Delete(&models.ChallengeSet{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Exercise{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete exercise: %w", err)
	}
	return deleted, nil
}
