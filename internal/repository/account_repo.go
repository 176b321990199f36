package repository

import (
	"errors"
	"fmt"

	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Find returns the account with the requested relations resolved.
func (r *AccountRepository) Find(id uuid.UUID, populate ...string) (*models.Account, error) {
	var account models.Account
	if err := withPreloads(r.db, populate).First(&account, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &account, nil
}

// FindByIDs returns the accounts that exist among ids; missing ids are simply
// absent from the result.
func (r *AccountRepository) FindByIDs(ids []uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if len(ids) == 0 {
		return accounts, nil
	}
	if err := r.db.Where("id IN ?", ids).Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	return accounts, nil
}

// Create persists an account together with its nested credential and profile
// in a single transaction. A constraint violation rolls back the whole graph.
func (r *AccountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindCredentialByEmail(email string) (*models.Credential, error) {
	var cred models.Credential
	if err := r.db.First(&cred, "email = ?", email).Error; err != nil {
		return nil, translate(err)
	}
	return &cred, nil
}

// AddFriend inserts the undirected friend edge as two mirrored rows in one
// transaction. Adding an existing friend is a no-op.
func (r *AccountRepository) AddFriend(accountID, friendID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, pair := range [][2]uuid.UUID{{accountID, friendID}, {friendID, accountID}} {
			var existing models.Friendship
			err := tx.First(&existing, "account_id = ? AND friend_id = ?", pair[0], pair[1]).Error
			if err == nil {
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			edge := models.Friendship{ID: uuid.New(), AccountID: pair[0], FriendID: pair[1]}
			if err := tx.Create(&edge).Error; err != nil {
				return fmt.Errorf("failed to add friend edge: %w", err)
			}
		}
		return nil
	})
}

// Friends returns the friend edges of an account with profiles resolved.
func (r *AccountRepository) Friends(accountID uuid.UUID) ([]models.Friendship, error) {
	var edges []models.Friendship
	err := r.db.Preload("Friend.Profile").
		Where("account_id = ?", accountID).
		Find(&edges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load friends: %w", err)
	}
	return edges, nil
}

// AreFriends reports whether an edge exists from accountID to otherID.
func (r *AccountRepository) AreFriends(accountID, otherID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Friendship{}).
		Where("account_id = ? AND friend_id = ?", accountID, otherID).
		Count(&count).Error
	return count > 0, err
}

func (r *AccountRepository) FindProfile(accountID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.First(&profile, "account_id = ?", accountID).Error; err != nil {
		return nil, translate(err)
	}
	return &profile, nil
}

// ListProfilesExcept returns every profile except the given account's own.
func (r *AccountRepository) ListProfilesExcept(accountID uuid.UUID) ([]models.Profile, error) {
	var profiles []models.Profile
	err := r.db.Where("account_id <> ?", accountID).Find(&profiles).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return profiles, nil
}

func (r *AccountRepository) SaveProfile(profile *models.Profile) error {
	if err := r.db.Save(profile).Error; err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}
