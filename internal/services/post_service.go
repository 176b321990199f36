package services

import (
	"errors"
	"time"

	"github.com/flextrackapp/flextrack-backend/internal/dto"
	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/flextrackapp/flextrack-backend/internal/repository"
	"github.com/flextrackapp/flextrack-backend/internal/views"
	"github.com/google/uuid"
)

type PostService struct {
	posts      *repository.PostRepository
	plans      *repository.PlanRepository
	challenges *repository.ChallengeRepository
	accounts   *repository.AccountRepository
}

func NewPostService(
	posts *repository.PostRepository,
	plans *repository.PlanRepository,
	challenges *repository.ChallengeRepository,
	accounts *repository.AccountRepository,
) *PostService {
	return &PostService{posts: posts, plans: plans, challenges: challenges, accounts: accounts}
}

// Feed returns every post ordered by date ascending, with author and
// commenter usernames resolved.
func (s *PostService) Feed() ([]models.Post, error) {
	posts, err := s.posts.ListAll(repository.PostAuthor, repository.PostComments)
	if err != nil {
		return nil, err
	}
	views.SortPostsByDate(posts)
	return posts, nil
}

// Create makes a post, optionally linked to a plan or challenge the post
// talks about.
func (s *PostService) Create(authorID uuid.UUID, req *dto.CreatePostRequest) (*models.Post, error) {
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}

	// Resolve linked entities before persisting anything so a bad
	// plan_id or challenge_id never leaves an orphan post behind.
	var plan *models.Plan
	if req.PlanID != nil {
		p, err := s.plans.Find(*req.PlanID)
		if err != nil {
			return nil, err
		}
		plan = p
	}
	var challenge *models.Challenge
	if req.ChallengeID != nil {
		ch, err := s.challenges.Find(*req.ChallengeID)
		if err != nil {
			return nil, err
		}
		challenge = ch
	}

	post := models.Post{
		ID:       uuid.New(),
		Title:    req.Title,
		Caption:  req.Caption,
		Date:     date,
		AuthorID: authorID,
	}
	if err := s.posts.Create(&post); err != nil {
		return nil, err
	}
	if plan != nil {
		if err := s.posts.LinkPlan(&post, plan); err != nil {
			return nil, err
		}
	}
	if challenge != nil {
		if err := s.posts.LinkChallenge(&post, challenge); err != nil {
			return nil, err
		}
	}

	return &post, nil
}

func (s *PostService) AddComment(authorID uuid.UUID, req *dto.AddCommentRequest) (*models.Post, error) {
	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	return s.posts.AddComment(req.PostID, authorID, req.Caption, date)
}

// Share forwards a post to another account.
func (s *PostService) Share(sharerID uuid.UUID, req *dto.SharePostRequest) (*models.PostShare, error) {
	if _, err := s.posts.Find(req.PostID); err != nil {
		return nil, err
	}
	if _, err := s.accounts.Find(req.RecipientID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrFriendNotFound
		}
		return nil, err
	}

	share := models.PostShare{
		ID:          uuid.New(),
		RecipientID: req.RecipientID,
		PostID:      req.PostID,
		SharerID:    sharerID,
	}
	if err := s.posts.CreateShare(&share); err != nil {
		return nil, err
	}
	return &share, nil
}

func (s *PostService) ListShared(accountID uuid.UUID) ([]models.PostShare, error) {
	return s.posts.ListSharedWith(accountID)
}
