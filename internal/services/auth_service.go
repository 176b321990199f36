package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/flextrackapp/flextrack-backend/internal/config"
	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/flextrackapp/flextrack-backend/internal/repository"
	"github.com/flextrackapp/flextrack-backend/internal/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken = errors.New("an account with that email already exists")
	// ErrInvalidCredentials is the single answer to every failed login,
	// whether the email exists or not.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidSignup marks signup input that failed validation.
	ErrInvalidSignup = errors.New("invalid signup request")
)

type AuthService struct {
	accounts *repository.AccountRepository
	sessions *session.Store
	cfg      *config.Config
}

func NewAuthService(accounts *repository.AccountRepository, sessions *session.Store, cfg *config.Config) *AuthService {
	return &AuthService{accounts: accounts, sessions: sessions, cfg: cfg}
}

// AuthResult is a signed-in identity: the account plus the session cookie
// value and a bearer token for clients that prefer headers over cookies.
type AuthResult struct {
	Account      *models.Account
	SessionToken string
	AccessToken  string
}

// Signup registers a new identity. Account, credential and profile are
// created in one flush; a duplicate email creates nothing.
func (s *AuthService) Signup(username, email, password string) (*AuthResult, error) {
	if email == "" || len(password) < 8 {
		return nil, fmt.Errorf("%w: email required and password must be at least 8 characters", ErrInvalidSignup)
	}
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidSignup)
	}

	if _, err := s.accounts.FindCredentialByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	accountID := uuid.New()
	profile := models.NewProfile(accountID, username)
	account := models.Account{
		ID: accountID,
		Credential: &models.Credential{
			ID:           uuid.New(),
			Email:        email,
			PasswordHash: string(hash),
			AccountID:    accountID,
		},
		Profile: &profile,
	}

	if err := s.accounts.Create(&account); err != nil {
		return nil, err
	}

	return s.signIn(&account)
}

// Login verifies credentials and opens a session. All failure modes collapse
// into ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (*AuthResult, error) {
	cred, err := s.accounts.FindCredentialByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	account, err := s.accounts.Find(cred.AccountID, repository.AccountProfile)
	if err != nil {
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	return s.signIn(account)
}

// Logout revokes the session behind the raw cookie value.
func (s *AuthService) Logout(rawToken string) error {
	return s.sessions.Destroy(rawToken)
}

func (s *AuthService) signIn(account *models.Account) (*AuthResult, error) {
	sessionToken, err := s.sessions.Issue(account.ID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.generateAccessToken(account.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Account:      account,
		SessionToken: sessionToken,
		AccessToken:  accessToken,
	}, nil
}

func (s *AuthService) generateAccessToken(accountID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"sub": accountID.String(),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(s.cfg.JWTAccessExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}
