package services

import (
	"errors"
	"testing"
	"time"

	"github.com/flextrackapp/flextrack-backend/internal/dto"
	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/flextrackapp/flextrack-backend/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func newPostService(db *gorm.DB) *PostService {
	return NewPostService(
		repository.NewPostRepository(db),
		repository.NewPlanRepository(db),
		repository.NewChallengeRepository(db),
		repository.NewAccountRepository(db),
	)
}

func TestFeedOrdersByDateAscending(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	auth := newAuthService(t, db)
	author := signUp(t, auth, "alice", "alice@example.com")

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	// Created out of order on purpose.
	for _, offset := range []int{2, 0, 1} {
		_, err := svc.Create(author, &dto.CreatePostRequest{
			Title: "post",
			Date:  base.AddDate(0, 0, offset),
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
	}

	feed, err := svc.Feed()
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if len(feed) != 3 {
		t.Fatalf("got %d posts, want 3", len(feed))
	}
	for i := 1; i < len(feed); i++ {
		if feed[i].Date.Before(feed[i-1].Date) {
			t.Errorf("feed not date-ascending at position %d", i)
		}
	}
}

func TestFeedResolvesAuthors(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	auth := newAuthService(t, db)
	author := signUp(t, auth, "alice", "alice@example.com")

	if _, err := svc.Create(author, &dto.CreatePostRequest{Title: "hello"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	feed, err := svc.Feed()
	if err != nil {
		t.Fatalf("Feed failed: %v", err)
	}
	if feed[0].Author == nil || feed[0].Author.Profile == nil {
		t.Fatal("author profile not resolved")
	}
	if feed[0].Author.Profile.Username != "alice" {
		t.Errorf("got author %q, want alice", feed[0].Author.Profile.Username)
	}
}

func TestCreatePostLinksPlan(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	auth := newAuthService(t, db)
	author := signUp(t, auth, "alice", "alice@example.com")

	workout := newWorkoutService(db)
	plan, err := workout.CreatePlan(author, &dto.CreatePlanRequest{Name: "strength"})
	if err != nil {
		t.Fatalf("CreatePlan failed: %v", err)
	}

	post, err := svc.Create(author, &dto.CreatePostRequest{Title: "new plan", PlanID: &plan.ID})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	var linked models.Post
	if err := db.Preload("Plans").First(&linked, "id = ?", post.ID).Error; err != nil {
		t.Fatalf("load post: %v", err)
	}
	if len(linked.Plans) != 1 || linked.Plans[0].ID != plan.ID {
		t.Errorf("plan link missing: %+v", linked.Plans)
	}
}

func TestCreatePostUnknownPlan(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	auth := newAuthService(t, db)
	author := signUp(t, auth, "alice", "alice@example.com")

	missing := uuid.New()
	if _, err := svc.Create(author, &dto.CreatePostRequest{Title: "x", PlanID: &missing}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	if n := countRows(t, db, &models.Post{}); n != 0 {
		t.Errorf("got %d posts after failed create, want 0", n)
	}
}

func TestCreatePostUnknownChallenge(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	auth := newAuthService(t, db)
	author := signUp(t, auth, "alice", "alice@example.com")

	missing := uuid.New()
	if _, err := svc.Create(author, &dto.CreatePostRequest{Title: "x", ChallengeID: &missing}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
	if n := countRows(t, db, &models.Post{}); n != 0 {
		t.Errorf("got %d posts after failed create, want 0", n)
	}
}

func TestAddCommentDefaultsDate(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	auth := newAuthService(t, db)
	author := signUp(t, auth, "alice", "alice@example.com")

	post, err := svc.Create(author, &dto.CreatePostRequest{Title: "leg day"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.AddComment(author, &dto.AddCommentRequest{PostID: post.ID, Caption: "nice"})
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if len(updated.Comments) != 1 {
		t.Fatalf("got %d comments, want 1", len(updated.Comments))
	}
	if updated.Comments[0].Date.IsZero() {
		t.Error("comment date must default to now")
	}
	if updated.Comments[0].Seq != 1 {
		t.Errorf("got seq %d, want 1", updated.Comments[0].Seq)
	}
}

func TestShareAndListShared(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	auth := newAuthService(t, db)
	alice := signUp(t, auth, "alice", "alice@example.com")
	bob := signUp(t, auth, "bob", "bob@example.com")

	post, err := svc.Create(alice, &dto.CreatePostRequest{Title: "pr day"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Share(alice, &dto.SharePostRequest{PostID: post.ID, RecipientID: bob}); err != nil {
		t.Fatalf("Share failed: %v", err)
	}

	shares, err := svc.ListShared(bob)
	if err != nil {
		t.Fatalf("ListShared failed: %v", err)
	}
	if len(shares) != 1 {
		t.Fatalf("got %d shares, want 1", len(shares))
	}
	if shares[0].Post == nil || shares[0].Post.Title != "pr day" {
		t.Error("shared post not resolved")
	}
}

func TestShareUnknownRecipient(t *testing.T) {
	db := newTestDB(t)
	svc := newPostService(db)
	auth := newAuthService(t, db)
	alice := signUp(t, auth, "alice", "alice@example.com")

	post, err := svc.Create(alice, &dto.CreatePostRequest{Title: "pr day"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Share(alice, &dto.SharePostRequest{PostID: post.ID, RecipientID: uuid.New()}); !errors.Is(err, ErrFriendNotFound) {
		t.Errorf("got %v, want ErrFriendNotFound", err)
	}
}
