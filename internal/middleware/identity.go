package middleware

import (
	"errors"
	"strings"

	"github.com/flextrackapp/flextrack-backend/internal/config"
	"github.com/flextrackapp/flextrack-backend/internal/session"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const localsAccountID = "account_id"

// ErrUnauthenticated means no identity could be resolved for the request.
var ErrUnauthenticated = errors.New("not authenticated")

// Identity resolves the requesting account and stores it in context locals.
// Resolution order: explicit ?id= query override, then the session cookie,
// then a bearer access token. Requests with no identity pass through;
// handlers that need one reject with 401.
func Identity(store *session.Store, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if q := c.Query("id"); q != "" {
			if id, err := uuid.Parse(q); err == nil {
				c.Locals(localsAccountID, id)
				return c.Next()
			}
		}

		if raw := c.Cookies(cfg.SessionCookie); raw != "" {
			if id, err := store.Resolve(raw); err == nil {
				c.Locals(localsAccountID, id)
				return c.Next()
			}
		}

		if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, "Bearer ") {
			if id, err := parseAccessToken(strings.TrimPrefix(header, "Bearer "), cfg.JWTSecret); err == nil {
				c.Locals(localsAccountID, id)
			}
		}

		return c.Next()
	}
}

// AccountID extracts the resolved account id from context locals.
func AccountID(c *fiber.Ctx) (uuid.UUID, error) {
	if id, ok := c.Locals(localsAccountID).(uuid.UUID); ok {
		return id, nil
	}
	return uuid.Nil, ErrUnauthenticated
}

func parseAccessToken(raw, secret string) (uuid.UUID, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrUnauthenticated
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, ErrUnauthenticated
	}
	sub, ok := claims["sub"].(string)
	if !ok {
		return uuid.Nil, ErrUnauthenticated
	}
	return uuid.Parse(sub)
}
