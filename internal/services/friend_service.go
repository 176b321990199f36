package services

import (
	"errors"

	"github.com/flextrackapp/flextrack-backend/internal/dto"
	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/flextrackapp/flextrack-backend/internal/repository"
	"github.com/google/uuid"
)

var ErrFriendNotFound = errors.New("friend not found")

type FriendService struct {
	accounts *repository.AccountRepository
}

func NewFriendService(accounts *repository.AccountRepository) *FriendService {
	return &FriendService{accounts: accounts}
}

// AddFriend makes the two accounts friends of each other. The edge is
// undirected and the call is idempotent. Returns the caller's profile.
func (s *FriendService) AddFriend(accountID, friendID uuid.UUID) (*models.Profile, error) {
	account, err := s.accounts.Find(accountID, repository.AccountProfile)
	if err != nil {
		return nil, err
	}

	if _, err := s.accounts.Find(friendID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFriendNotFound
		}
		return nil, err
	}

	if err := s.accounts.AddFriend(accountID, friendID); err != nil {
		return nil, err
	}

	return account.Profile, nil
}

// ListFriends returns the friend accounts with their profiles.
func (s *FriendService) ListFriends(accountID uuid.UUID) ([]models.Account, error) {
	if _, err := s.accounts.Find(accountID); err != nil {
		return nil, err
	}

	edges, err := s.accounts.Friends(accountID)
	if err != nil {
		return nil, err
	}

	friends := make([]models.Account, 0, len(edges))
	for _, edge := range edges {
		if edge.Friend != nil {
			friends = append(friends, *edge.Friend)
		}
	}
	return friends, nil
}

// ListProfiles returns every other account's profile, flagged with whether
// the viewer already counts them as a friend.
func (s *FriendService) ListProfiles(accountID uuid.UUID) ([]dto.ProfileWithFriend, error) {
	profiles, err := s.accounts.ListProfilesExcept(accountID)
	if err != nil {
		return nil, err
	}

	edges, err := s.accounts.Friends(accountID)
	if err != nil {
		return nil, err
	}
	friendIDs := make(map[uuid.UUID]bool, len(edges))
	for _, edge := range edges {
		friendIDs[edge.FriendID] = true
	}

	annotated := make([]dto.ProfileWithFriend, 0, len(profiles))
	for _, p := range profiles {
		annotated = append(annotated, dto.ProfileWithFriend{
			Profile: p,
			Friend:  friendIDs[p.AccountID],
		})
	}
	return annotated, nil
}
