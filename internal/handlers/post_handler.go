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

type PostHandler struct {
	postService *services.PostService
}

func NewPostHandler(postService *services.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// GetAll handles GET /post/get-all: the feed, date ascending.
func (h *PostHandler) GetAll(c *fiber.Ctx) error {
	posts, err := h.postService.Feed()
	if err != nil {
		slog.Error("get posts failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to get posts"})
	}

	return c.JSON(posts)
}

// Create handles POST /post/create.
func (h *PostHandler) Create(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	var req dto.CreatePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	post, err := h.postService.Create(accountID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Linked entity not found"})
		}
		slog.Error("create post failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to create post"})
	}

	return c.JSON(fiber.Map{"post": post})
}

// AddComment handles POST /post/add-comment.
func (h *PostHandler) AddComment(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	var req dto.AddCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	post, err := h.postService.AddComment(accountID, &req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Post not found"})
		}
		slog.Error("add comment failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to add comments to post"})
	}

	return c.JSON(fiber.Map{"post": post})
}

// Share handles POST /post/share.
func (h *PostHandler) Share(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	var req dto.SharePostRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	share, err := h.postService.Share(accountID, &req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Post not found"})
		case errors.Is(err, services.ErrFriendNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Recipient not found"})
		}
		slog.Error("share post failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to share post"})
	}

	return c.JSON(fiber.Map{"share": share})
}

// GetShared handles GET /post/shared: posts shared with the caller.
func (h *PostHandler) GetShared(c *fiber.Ctx) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Not authenticated"})
	}

	shares, err := h.postService.ListShared(accountID)
	if err != nil {
		slog.Error("get shared posts failed", "error", err, "account_id", accountID.String())
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to get shared posts"})
	}

	return c.JSON(shares)
}
