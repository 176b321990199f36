package handlers

import (
	"errors"
	"log/slog"

	"github.com/flextrackapp/flextrack-backend/internal/dto"
	"github.com/flextrackapp/flextrack-backend/internal/middleware"
	"github.com/flextrackapp/flextrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FriendHandler struct {
	friendService *services.FriendService
}

func NewFriendHandler(friendService *services.FriendService) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

// AddFriend handles POST /user/add-friend.
func (h *FriendHandler) AddFriend(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	var req dto.AddFriendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	profile, err := h.friendService.AddFriend(accountID, req.ID)
	if err != nil {
		if errors.Is(err, services.ErrFriendNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Friend with id " + req.ID.String() + " not found"})
		}
		slog.Error("add friend failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to add friend"})
	}

	return c.JSON(profile)
}

// GetAllFriends handles GET /user/get-all-friends.
func (h *FriendHandler) GetAllFriends(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	friends, err := h.friendService.ListFriends(accountID)
	if err != nil {
		slog.Error("get friends failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to get users"})
	}

	return c.JSON(friends)
}
