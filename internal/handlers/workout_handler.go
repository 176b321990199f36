package handlers

import (
	"errors"
	"log/slog"

	"github.com/flextrackapp/flextrack-backend/internal/dto"
	"github.com/flextrackapp/flextrack-backend/internal/middleware"
	"github.com/flextrackapp/flextrack-backend/internal/repository"
	"github.com/flextrackapp/flextrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type WorkoutHandler struct {
	workoutService *services.WorkoutService
}

func NewWorkoutHandler(workoutService *services.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// GetAll handles GET /workout/get-all.
func (h *WorkoutHandler) GetAll(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	plans, err := h.workoutService.ListPlans(accountID)
	if err != nil {
		slog.Error("get plans failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to get plans"})
	}

	return c.JSON(plans)
}

// Create handles POST /workout/create. The whole plan graph persists in one
// flush or not at all.
func (h *WorkoutHandler) Create(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	var req dto.CreatePlanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	plan, err := h.workoutService.CreatePlan(accountID, &req)
	if err != nil {
		if errors.Is(err, services.ErrExerciseNotResolved) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Exercise not found"})
		}
		slog.Error("create plan failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error creating plan"})
	}

	return c.JSON(fiber.Map{"plan": plan})
}

// AddSessions handles POST /workout/add-sessions.
func (h *WorkoutHandler) AddSessions(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	var req dto.AddSessionsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	plan, err := h.workoutService.AddSessions(accountID, &req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExerciseNotResolved):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Exercise not found"})
		case errors.Is(err, repository.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Plan not found"})
		}
		slog.Error("add sessions failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error adding sessions to plan"})
	}

	return c.JSON(fiber.Map{"plan": plan})
}

// Delete handles DELETE /workout/delete?plan_id=...
func (h *WorkoutHandler) Delete(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	planID, err := uuid.Parse(c.Query("plan_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid plan id"})
	}

	deleted, err := h.workoutService.DeletePlan(accountID, planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Plan not found"})
		}
		slog.Error("delete plan failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error deleting plan"})
	}

	return c.JSON(fiber.Map{"deleted": deleted})
}

// UpdateName handles POST /workout/update-name.
func (h *WorkoutHandler) UpdateName(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	var req dto.UpdatePlanNameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	plan, err := h.workoutService.UpdatePlanName(accountID, req.ID, req.Name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Plan not found"})
		}
		slog.Error("update plan name failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error updating plan name"})
	}

	return c.JSON(fiber.Map{"plan": plan})
}

// Get handles GET /workout/get?plan_id&session&day: one session of a plan
// with its sets grouped by exercise.
func (h *WorkoutHandler) Get(c *fiber.Ctx) error {
	if _, err := middleware.AccountID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	planID, err := uuid.Parse(c.Query("plan_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid plan id"})
	}
	workoutType := c.Query("session")
	day := c.Query("day")
	if workoutType == "" || day == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "session and day are required"})
	}

	session, exercises, err := h.workoutService.GetSession(planID, day, workoutType)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Session not found"})
		}
		slog.Error("get session failed", "error", err, "plan_id", planID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error getting plan"})
	}

	return c.JSON(fiber.Map{"session": session, "exercises": exercises})
}

// GetPlan handles GET /workout/get-plan?plan_id=...
func (h *WorkoutHandler) GetPlan(c *fiber.Ctx) error {
	if _, err := middleware.AccountID(c); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	planID, err := uuid.Parse(c.Query("plan_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid plan id"})
	}

	plan, err := h.workoutService.GetPlan(planID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Plan not found"})
		}
		slog.Error("get plan failed", "error", err, "plan_id", planID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error getting plan"})
	}

	return c.JSON(fiber.Map{"plan": plan})
}

// LogSet handles POST /workout/log.
func (h *WorkoutHandler) LogSet(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	var req dto.LogSetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	log, err := h.workoutService.LogSet(accountID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Set not found"})
		}
		slog.Error("log set failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to log set"})
	}

	return c.JSON(fiber.Map{"log": log})
}

// GetLogs handles GET /workout/logs?set_id=...
func (h *WorkoutHandler) GetLogs(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	setID, err := uuid.Parse(c.Query("set_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid set id"})
	}

	logs, err := h.workoutService.ListLogs(accountID, setID)
	if err != nil {
		slog.Error("get logs failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to get logs"})
	}

	return c.JSON(logs)
}
