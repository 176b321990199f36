package handlers

import (
	"time"

	"github.com/flextrackapp/flextrack-backend/internal/database"
	"github.com/flextrackapp/flextrack-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	now := time.Now().UTC().Format(time.RFC3339)
	if err := database.Ping(h.db); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.HealthResponse{
			Status:    "unhealthy",
			Timestamp: now,
			DB:        "down",
		})
	}
	return c.JSON(dto.HealthResponse{Status: "healthy", Timestamp: now, DB: "up"})
}
