package repository

import (
	"errors"
	"fmt"

	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChallengeRepository struct {
	db *gorm.DB
}

func NewChallengeRepository(db *gorm.DB) *ChallengeRepository {
	return &ChallengeRepository{db: db}
}

// Create persists the challenge with its sets and the participant edges in a
// single transaction.
func (r *ChallengeRepository) Create(challenge *models.Challenge, participants []models.Account) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(challenge).Error; err != nil {
			return err
		}
		for i := range participants {
			if err := tx.Model(challenge).Association("Participants").Append(&participants[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to create challenge: %w", err)
	}
	return nil
}

func (r *ChallengeRepository) Find(id uuid.UUID, populate ...string) (*models.Challenge, error) {
	var challenge models.Challenge
	if err := withPreloads(r.db, populate).First(&challenge, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &challenge, nil
}

// ListOwned returns challenges owned by the account, sets and exercises
// resolved in set-number order.
func (r *ChallengeRepository) ListOwned(accountID uuid.UUID) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := r.setScope().
		Where("owner_id = ?", accountID).
		Order("created_at").
		Find(&challenges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load owned challenges: %w", err)
	}
	return challenges, nil
}

// ListParticipating returns challenges the account joined as a participant.
func (r *ChallengeRepository) ListParticipating(accountID uuid.UUID) ([]models.Challenge, error) {
	var challenges []models.Challenge
	err := r.setScope().
		Joins("JOIN challenge_participants cp ON cp.challenge_id = challenges.id").
		Where("cp.account_id = ?", accountID).
		Order("challenges.created_at").
		Find(&challenges).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load participating challenges: %w", err)
	}
	return challenges, nil
}

func (r *ChallengeRepository) setScope() *gorm.DB {
	return r.db.
		Preload("Sets", func(db *gorm.DB) *gorm.DB { return db.Order("set_number") }).
		Preload("Sets.Exercise")
}

func (r *ChallengeRepository) FindSet(id uuid.UUID) (*models.ChallengeSet, error) {
	var set models.ChallengeSet
	if err := r.db.First(&set, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &set, nil
}

func (r *ChallengeRepository) CreateLog(log *models.ChallengeLog) error {
	if err := r.db.Create(log).Error; err != nil {
		return fmt.Errorf("failed to create challenge log: %w", err)
	}
	return nil
}

// CreateInvite records an invite once; re-inviting the same person to the
// same challenge is a no-op.
func (r *ChallengeRepository) CreateInvite(invite *models.ChallengeInvite) error {
	var existing models.ChallengeInvite
	err := r.db.First(&existing,
		"recipient_id = ? AND challenge_id = ? AND inviter_id = ?",
		invite.RecipientID, invite.ChallengeID, invite.InviterID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := r.db.Create(invite).Error; err != nil {
		return fmt.Errorf("failed to create invite: %w", err)
	}
	return nil
}

func (r *ChallengeRepository) ListInvites(recipientID uuid.UUID) ([]models.ChallengeInvite, error) {
	var invites []models.ChallengeInvite
	err := r.db.Preload("Challenge").
		Where("recipient_id = ?", recipientID).
		Order("created_at").
		Find(&invites).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load invites: %w", err)
	}
	return invites, nil
}

// AcceptInvite adds the recipient as a participant and removes every invite
// they hold for the challenge, in one transaction.
func (r *ChallengeRepository) AcceptInvite(recipientID, challengeID uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var invite models.ChallengeInvite
		err := tx.First(&invite, "recipient_id = ? AND challenge_id = ?", recipientID, challengeID).Error
		if err != nil {
			return translate(err)
		}

		var challenge models.Challenge
		if err := tx.First(&challenge, "id = ?", challengeID).Error; err != nil {
			return translate(err)
		}
		participant := models.Account{ID: recipientID}
		if err := tx.Model(&challenge).Association("Participants").Append(&participant); err != nil {
			return err
		}

		return tx.Where("recipient_id = ? AND challenge_id = ?", recipientID, challengeID).
			Delete(&models.ChallengeInvite{}).Error
	})
}
