package handlers

import (
	"errors"
	"log/slog"

	"github.com/flextrackapp/flextrack-backend/internal/dto"
	"github.com/flextrackapp/flextrack-backend/internal/middleware"
	"github.com/flextrackapp/flextrack-backend/internal/repository"
	"github.com/flextrackapp/flextrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type ProfileHandler struct {
	profileService *services.ProfileService
	friendService  *services.FriendService
}

func NewProfileHandler(profileService *services.ProfileService, friendService *services.FriendService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService, friendService: friendService}
}

// GetAll handles GET /profile/get-all: every other profile, flagged with
// whether the viewer is already friends with it.
func (h *ProfileHandler) GetAll(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	profiles, err := h.friendService.ListProfiles(accountID)
	if err != nil {
		slog.Error("get profiles failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to get profiles"})
	}

	return c.JSON(profiles)
}

// Get handles GET /profile/get.
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	profile, err := h.profileService.Get(accountID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Profile not found"})
		}
		slog.Error("get profile failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to get profile"})
	}

	return c.JSON(profile)
}

// Update handles POST /profile/update. Absent fields are left untouched.
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	profile, err := h.profileService.Update(accountID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Profile not found"})
		}
		slog.Error("update profile failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to update profile"})
	}

	return c.JSON(profile)
}
