package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/flextrackapp/flextrack-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(post *models.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

func (r *PostRepository) Find(id uuid.UUID, populate ...string) (*models.Post, error) {
	var post models.Post
	if err := withPreloads(r.db, populate).First(&post, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

// ListAll returns the whole feed ordered by post date ascending.
func (r *PostRepository) ListAll(populate ...string) ([]models.Post, error) {
	var posts []models.Post
	err := withPreloads(r.db, populate).Order("date").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load posts: %w", err)
	}
	return posts, nil
}

// LinkPlan attaches an existing plan to the post.
func (r *PostRepository) LinkPlan(post *models.Post, plan *models.Plan) error {
	return r.db.Model(post).Association("Plans").Append(plan)
}

// LinkChallenge attaches an existing challenge to the post.
func (r *PostRepository) LinkChallenge(post *models.Post, challenge *models.Challenge) error {
	return r.db.Model(post).Association("Challenges").Append(challenge)
}

// AddComment assigns the next per-post sequence number and creates the
// comment in the same transaction that bumps the counter. The counter only
// ever grows, so sequence numbers cannot collide after deletions.
func (r *PostRepository) AddComment(postID, authorID uuid.UUID, caption string, date time.Time) (*models.Post, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.First(&post, "id = ?", postID).Error; err != nil {
			return translate(err)
		}

		seq := post.CommentCount + 1
		if err := tx.Model(&post).Update("comment_count", seq).Error; err != nil {
			return err
		}

		comment := models.Comment{
			ID:       uuid.New(),
			PostID:   postID,
			Seq:      seq,
			Caption:  caption,
			Date:     date,
			AuthorID: authorID,
		}
		return tx.Create(&comment).Error
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	return r.Find(postID, PostComments)
}

// CreateShare records a share once; re-sharing the same post to the same
// recipient is a no-op.
func (r *PostRepository) CreateShare(share *models.PostShare) error {
	var existing models.PostShare
	err := r.db.First(&existing,
		"recipient_id = ? AND post_id = ? AND sharer_id = ?",
		share.RecipientID, share.PostID, share.SharerID).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err := r.db.Create(share).Error; err != nil {
		return fmt.Errorf("failed to create share: %w", err)
	}
	return nil
}

func (r *PostRepository) ListSharedWith(recipientID uuid.UUID) ([]models.PostShare, error) {
	var shares []models.PostShare
	err := r.db.Preload("Post.Author.Profile").
		Where("recipient_id = ?", recipientID).
		Order("created_at").
		Find(&shares).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load shares: %w", err)
	}
	return shares, nil
}
