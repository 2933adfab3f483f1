package repository

import (
	"errors"

	"blogapi/internal/apperr"
	"blogapi/internal/models"

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
		return apperr.Internal(err, "create post")
	}
	return nil
}

func (r *PostRepository) Save(post *models.Post) error {
	if err := r.db.Save(post).Error; err != nil {
		return apperr.Internal(err, "save post %d", post.ID)
	}
	return nil
}

func (r *PostRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("post not found with id: %d", id)
		}
		return nil, apperr.Internal(err, "find post %d", id)
	}
	return &post, nil
}

func (r *PostRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Post{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperr.Internal(err, "check post %d", id)
	}
	return count > 0, nil
}

func (r *PostRepository) FindAll() ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Order("id ASC").Find(&posts).Error; err != nil {
		return nil, apperr.Internal(err, "list posts")
	}
	return posts, nil
}

func (r *PostRepository) FindByCategory(category string) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("category = ?", category).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, apperr.Internal(err, "list posts by category")
	}
	return posts, nil
}

func (r *PostRepository) FindByUserID(userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.Where("user_id = ?", userID).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, apperr.Internal(err, "list posts by user")
	}
	return posts, nil
}

// Delete removes the post together with its comments, likes and saved
// entries in one transaction. Cascade policy: deleting a post deletes its
// dependents, never orphans them.
func (r *PostRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("post_id = ?", id).Delete(&models.SavedPost{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, id).Error
	})
	if err != nil {
		return apperr.Internal(err, "delete post %d", id)
	}
	return nil
}
