// Package session implements the server-side session store. The cookie value
// is an opaque random token; only its SHA-256 hash ever reaches the database.
package session

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrInvalidSession = errors.New("invalid or expired session")

type Store struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewStore(db *gorm.DB, ttl time.Duration) *Store {
	return &Store{db: db, ttl: ttl}
}

// Issue creates a session for the account and returns the raw token to put
// in the cookie.
func (s *Store) Issue(accountID uuid.UUID) (string, error) {
	rawBytes := make([]byte, 32)
	if _, err := rand.Read(rawBytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}

	rawToken := base64.URLEncoding.EncodeToString(rawBytes)
	record := models.SessionToken{
		ID:        uuid.New(),
		AccountID: accountID,
		TokenHash: hashToken(rawToken),
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if err := s.db.Create(&record).Error; err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return rawToken, nil
}

// Resolve maps a raw token back to its account id.
func (s *Store) Resolve(rawToken string) (uuid.UUID, error) {
	var stored models.SessionToken
	err := s.db.Where("token_hash = ? AND revoked = false", hashToken(rawToken)).First(&stored).Error
	if err != nil {
		return uuid.Nil, ErrInvalidSession
	}

	if time.Now().After(stored.ExpiresAt) {
		s.db.Model(&stored).Update("revoked", true)
		return uuid.Nil, ErrInvalidSession
	}

	return stored.AccountID, nil
}

// Destroy revokes the session behind a raw token. Unknown tokens are ignored.
func (s *Store) Destroy(rawToken string) error {
	return s.db.Model(&models.SessionToken{}).
		Where("token_hash = ?", hashToken(rawToken)).
		Update("revoked", true).Error
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
