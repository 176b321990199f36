package services

import (
	"github.com/flextrackapp/flextrack-backend/internal/dto"
	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/flextrackapp/flextrack-backend/internal/repository"
	"github.com/google/uuid"
)

type ProfileService struct {
	accounts *repository.AccountRepository
}

func NewProfileService(accounts *repository.AccountRepository) *ProfileService {
	return &ProfileService{accounts: accounts}
}

func (s *ProfileService) Get(accountID uuid.UUID) (*models.Profile, error) {
	return s.accounts.FindProfile(accountID)
}

// Update overwrites only the fields present in the request.
func (s *ProfileService) Update(accountID uuid.UUID, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.accounts.FindProfile(accountID)
	if err != nil {
		return nil, err
	}

	if req.Username != nil {
		profile.Username = *req.Username
	}
	if req.Height != nil {
		profile.Height = *req.Height
	}
	if req.Weight != nil {
		profile.Weight = *req.Weight
	}
	if req.Deadlift != nil {
		profile.Deadlift = *req.Deadlift
	}
	if req.Squat != nil {
		profile.Squat = *req.Squat
	}
	if req.OHP != nil {
		profile.OHP = *req.OHP
	}
	if req.Bench != nil {
		profile.Bench = *req.Bench
	}
	if req.Description != nil {
		profile.Description = *req.Description
	}

	if err := s.accounts.SaveProfile(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
