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

type ChallengeHandler struct {
	challengeService *services.ChallengeService
}

func NewChallengeHandler(challengeService *services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{challengeService: challengeService}
}

// GetAll handles GET /challenge/get-all: owned challenges first, then
// participating ones, with per-challenge grouped exercise views.
func (h *ChallengeHandler) GetAll(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	challenges, exercises, err := h.challengeService.List(accountID)
	if err != nil {
		slog.Error("get challenges failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error getting challenges"})
	}

	return c.JSON(fiber.Map{"challenges": challenges, "exercises": exercises})
}

// Create handles POST /challenge/create.
func (h *ChallengeHandler) Create(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	var req dto.CreateChallengeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	challenge, err := h.challengeService.Create(accountID, &req)
	if err != nil {
		if errors.Is(err, services.ErrExerciseNotResolved) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Exercise not found"})
		}
		slog.Error("create challenge failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error creating challenge"})
	}

	return c.JSON(fiber.Map{"challenge": challenge})
}

// Invite handles POST /challenge/invite.
func (h *ChallengeHandler) Invite(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	var req dto.InviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	invite, err := h.challengeService.Invite(accountID, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Challenge not found"})
		case errors.Is(err, services.ErrFriendNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Recipient not found"})
		}
		slog.Error("invite failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to send invite"})
	}

	return c.JSON(fiber.Map{"invite": invite})
}

// GetInvites handles GET /challenge/invites.
func (h *ChallengeHandler) GetInvites(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	invites, err := h.challengeService.ListInvites(accountID)
	if err != nil {
		slog.Error("get invites failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to get invites"})
	}

	return c.JSON(invites)
}

// AcceptInvite handles POST /challenge/accept-invite.
func (h *ChallengeHandler) AcceptInvite(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	var req dto.AcceptInviteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	challenge, err := h.challengeService.AcceptInvite(accountID, req.ChallengeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Invite not found"})
		}
		slog.Error("accept invite failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to accept invite"})
	}

	return c.JSON(fiber.Map{"challenge": challenge})
}

// LogSet handles POST /challenge/log.
func (h *ChallengeHandler) LogSet(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	var req dto.LogSetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	log, err := h.challengeService.LogSet(accountID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Set not found"})
		}
		slog.Error("log challenge set failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to log set"})
	}

	return c.JSON(fiber.Map{"log": log})
}
