package repository

import (
	"fmt"

	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// Create persists the plan with its nested sessions and sets as one flush.
// A failure anywhere rolls back the entire graph.
func (r *PlanRepository) Create(plan *models.Plan) error {
	if err := r.db.Create(plan).Error; err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return nil
}

// CreateSessions persists sessions (with their sets) onto an existing plan,
// again as a single flush.
func (r *PlanRepository) CreateSessions(sessions []models.Session) error {
	if len(sessions) == 0 {
		return nil
	}
	if err := r.db.Create(&sessions).Error; err != nil {
		return fmt.Errorf("failed to create sessions: %w", err)
	}
	return nil
}

func (r *PlanRepository) Find(id uuid.UUID, populate ...string) (*models.Plan, error) {
	var plan models.Plan
	if err := withPreloads(r.db, populate).First(&plan, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &plan, nil
}

func (r *PlanRepository) ListByOwner(ownerID uuid.UUID, populate ...string) ([]models.Plan, error) {
	var plans []models.Plan
	err := withPreloads(r.db, populate).
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Find(&plans).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load plans: %w", err)
	}
	return plans, nil
}

// FindSession resolves a session by its (plan, day, type) natural key with
// sets and their exercises eagerly loaded in set-number order.
func (r *PlanRepository) FindSession(planID uuid.UUID, dayOfWeek, workoutType string) (*models.Session, error) {
	var session models.Session
	err := r.db.
		Preload("Sets", func(db *gorm.DB) *gorm.DB { return db.Order("set_number") }).
		Preload("Sets.Exercise").
		First(&session, "plan_id = ? AND day_of_week = ? AND workout_type = ?", planID, dayOfWeek, workoutType).Error
	if err != nil {
		return nil, translate(err)
	}
	return &session, nil
}

func (r *PlanRepository) UpdateName(id uuid.UUID, name string) (*models.Plan, error) {
	var plan models.Plan
	if err := r.db.First(&plan, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	plan.Name = name
	if err := r.db.Save(&plan).Error; err != nil {
		return nil, fmt.Errorf("failed to update plan name: %w", err)
	}
	return &plan, nil
}

// Delete removes the plan and cascades through sessions, sets and logs.
func (r *PlanRepository) Delete(id uuid.UUID) (int64, error) {
	var deleted int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		sessions := tx.Model(&models.Session{}).Select("id").Where("plan_id = ?", id)
		sets := tx.Model(&models.SessionSet{}).Select("id").Where("session_id IN (?)", sessions)
		if err := tx.Where("set_id IN (?)", sets).Delete(&models.WorkoutLog{}).Error; err != nil {
			return err
		}
		if err := tx.Where("session_id IN (?)", sessions).Delete(&models.SessionSet{}).Error; err != nil {
			return err
		}
		if err := tx.Where("plan_id = ?", id).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Plan{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete plan: %w", err)
	}
	return deleted, nil
}

func (r *PlanRepository) FindSet(id uuid.UUID) (*models.SessionSet, error) {
	var set models.SessionSet
	if err := r.db.First(&set, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &set, nil
}

func (r *PlanRepository) CreateLog(log *models.WorkoutLog) error {
	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to create workout log: %w", err)
	}
	return nil
}

func (r *PlanRepository) ListLogs(accountID, setID uuid.UUID) ([]models.WorkoutLog, error) {
	var logs []models.WorkoutLog
	err := r.db.Where("account_id = ? AND set_id = ?", accountID, setID).
		Order("date").
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load workout logs: %w", err)
	}
	return logs, nil
}
