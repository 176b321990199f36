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

type ExerciseHandler struct {
	exerciseService *services.ExerciseService
}

func NewExerciseHandler(exerciseService *services.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// GetAll handles GET /exercise/get-all.
func (h *ExerciseHandler) GetAll(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	exercises, err := h.exerciseService.List(accountID)
	if err != nil {
		slog.Error("get exercises failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to get exercises"})
	}

	return c.JSON(exercises)
}

// Create handles POST /exercise/create.
func (h *ExerciseHandler) Create(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	var req dto.CreateExerciseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}
	if req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Exercise name is required"})
	}

	exercise, err := h.exerciseService.Create(accountID, req.Name, req.TargetMuscle)
	if err != nil {
		slog.Error("create exercise failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error creating exercise"})
	}

	return c.JSON(fiber.Map{"exercise": exercise})
}

// Delete handles DELETE /exercise/delete?exercise_id=...
func (h *ExerciseHandler) Delete(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	exerciseID, err := uuid.Parse(c.Query("exercise_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid exercise id"})
	}

	deleted, err := h.exerciseService.Delete(accountID, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Exercise not found"})
		}
		slog.Error("delete exercise failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error deleting exercise"})
	}

	return c.JSON(fiber.Map{"deleted": deleted})
}
