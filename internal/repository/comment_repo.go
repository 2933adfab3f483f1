package repository

import (
	"errors"

	"blogapi/internal/apperr"
	"blogapi/internal/models"

	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return apperr.Internal(err, "create comment")
	}
	return nil
}

func (r *CommentRepository) Save(comment *models.Comment) error {
	if err := r.db.Save(comment).Error; err != nil {
		return apperr.Internal(err, "save comment %d", comment.ID)
	}
	return nil
}

func (r *CommentRepository) FindByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("comment not found with id: %d", id)
		}
		return nil, apperr.Internal(err, "find comment %d", id)
	}
	return &comment, nil
}

func (r *CommentRepository) Delete(id uint) error {
	if err := r.db.Delete(&models.Comment{}, id).Error; err != nil {
		return apperr.Internal(err, "delete comment %d", id)
	}
	return nil
}

// FindByPostID returns a post's comments newest first.
func (r *CommentRepository) FindByPostID(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("post_id = ?", postID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, apperr.Internal(err, "list comments of post %d", postID)
	}
	return comments, nil
}

// FindByUserID returns a user's comments newest first.
func (r *CommentRepository) FindByUserID(userID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&comments).Error; err != nil {
		return nil, apperr.Internal(err, "list comments of user %d", userID)
	}
	return comments, nil
}

func (r *CommentRepository) CountByPostID(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, apperr.Internal(err, "count comments of post %d", postID)
	}
	return count, nil
}
