package handlers

import (
	"errors"
	"log/slog"
	"time"

	"github.com/flextrackapp/flextrack-backend/internal/config"
	"github.com/flextrackapp/flextrack-backend/internal/dto"
	"github.com/flextrackapp/flextrack-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Signup handles POST /user/signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	res, err := h.authService.Signup(req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) || errors.Is(err, services.ErrInvalidSignup) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		slog.Error("signup failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to signup user"})
	}

	h.setSessionCookie(c, res.SessionToken)
	return c.JSON(fiber.Map{
		"user":         res.Account,
		"access_token": res.AccessToken,
	})
}

// Login handles POST /user/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Invalid request body"})
	}

	res, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		slog.Error("login failed", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Login failed"})
	}

	h.setSessionCookie(c, res.SessionToken)
	return c.JSON(fiber.Map{
		"message":      "Login successful",
		"access_token": res.AccessToken,
	})
}

// Logout handles GET /user/logout.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	raw := c.Cookies(h.cfg.SessionCookie)
	if raw != "" {
		if err := h.authService.Logout(raw); err != nil {
			slog.Error("logout failed", "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Failed to logout user"})
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.SessionCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return c.JSON(fiber.Map{"message": "Logged out"})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.SessionCookie,
		Value:    token,
		Expires:  time.Now().Add(h.cfg.SessionTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
}
