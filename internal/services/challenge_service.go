package services

import (
	"errors"

	"github.com/flextrackapp/flextrack-backend/internal/dto"
	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/flextrackapp/flextrack-backend/internal/repository"
	"github.com/flextrackapp/flextrack-backend/internal/views"
	"github.com/google/uuid"
)

type ChallengeService struct {
	challenges *repository.ChallengeRepository
	exercises  *repository.ExerciseRepository
	accounts   *repository.AccountRepository
}

func NewChallengeService(
	challenges *repository.ChallengeRepository,
	exercises *repository.ExerciseRepository,
	accounts *repository.AccountRepository,
) *ChallengeService {
	return &ChallengeService{challenges: challenges, exercises: exercises, accounts: accounts}
}

// List returns every challenge the account owns or participates in, owned
// first, plus the per-challenge grouped exercise views in the same order.
func (s *ChallengeService) List(accountID uuid.UUID) ([]models.Challenge, []views.ChallengeExercises, error) {
	owned, err := s.challenges.ListOwned(accountID)
	if err != nil {
		return nil, nil, err
	}
	participating, err := s.challenges.ListParticipating(accountID)
	if err != nil {
		return nil, nil, err
	}

	merged := views.MergeChallenges(owned, participating)
	return merged, views.FormatChallenges(merged), nil
}

// Create builds the challenge with its sets after batch-resolving every
// referenced exercise, then persists challenge, sets and participant edges
// in one flush. Participant ids that do not resolve are skipped.
func (s *ChallengeService) Create(ownerID uuid.UUID, req *dto.CreateChallengeRequest) (*models.Challenge, error) {
	var ids []uuid.UUID
	for _, set := range req.Sets {
		ids = append(ids, set.ExerciseID)
	}
	resolved, err := s.exercises.FindByIDs(ids)
	if err != nil {
		return nil, err
	}

	sets := make([]models.ChallengeSet, 0, len(req.Sets))
	for _, set := range req.Sets {
		if _, ok := resolved[set.ExerciseID]; !ok {
			return nil, ErrExerciseNotResolved
		}
		sets = append(sets, models.ChallengeSet{
			ID:           uuid.New(),
			SetNumber:    set.SetNumber,
			ExerciseID:   set.ExerciseID,
			TargetWeight: set.TargetWeight,
			TargetReps:   set.TargetReps,
		})
	}

	challenge := models.NewChallenge(req.Name, ownerID, sets)

	participants, err := s.accounts.FindByIDs(req.Users)
	if err != nil {
		return nil, err
	}

	if err := s.challenges.Create(&challenge, participants); err != nil {
		return nil, err
	}
	return &challenge, nil
}

// Invite records a challenge invite from the owner or a participant.
func (s *ChallengeService) Invite(inviterID uuid.UUID, req *dto.InviteRequest) (*models.ChallengeInvite, error) {
	if _, err := s.challenges.Find(req.ChallengeID); err != nil {
		return nil, err
	}
	if _, err := s.accounts.Find(req.RecipientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFriendNotFound
		}
		return nil, err
	}

	invite := models.ChallengeInvite{
		ID:          uuid.New(),
		RecipientID: req.RecipientID,
		ChallengeID: req.ChallengeID,
		InviterID:   inviterID,
	}
	if err := s.challenges.CreateInvite(&invite); err != nil {
		return nil, err
	}
	return &invite, nil
}

func (s *ChallengeService) ListInvites(accountID uuid.UUID) ([]models.ChallengeInvite, error) {
	return s.challenges.ListInvites(accountID)
}

// AcceptInvite turns a pending invite into participation.
func (s *ChallengeService) AcceptInvite(accountID, challengeID uuid.UUID) (*models.Challenge, error) {
	if err := s.challenges.AcceptInvite(accountID, challengeID); err != nil {
		return nil, err
	}
	return s.challenges.Find(challengeID, repository.ChallengeSetsExercise)
}

// LogSet records actual performance against a challenge set.
func (s *ChallengeService) LogSet(accountID uuid.UUID, req *dto.LogSetRequest) (*models.ChallengeLog, error) {
	if _, err := s.challenges.FindSet(req.SetID); err != nil {
		return nil, err
	}

	day, err := parseLogDate(req.Date)
	if err != nil {
		return nil, err
	}

	log := models.ChallengeLog{
		ID:        uuid.New(),
		Date:      day,
		SetID:     req.SetID,
		AccountID: accountID,
		Weight:    req.Weight,
		Reps:      req.Reps,
	}
	if err := s.challenges.CreateLog(&log); err != nil {
		return nil, err
	}
	return &log, nil
}
