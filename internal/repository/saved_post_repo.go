package repository

import (
	"blogapi/internal/apperr"
	"blogapi/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SavedPostRepository struct {
	db *gorm.DB
}

func NewSavedPostRepository(db *gorm.DB) *SavedPostRepository {
	return &SavedPostRepository{db: db}
}

// Toggle saves the post for the user, or unsaves it when already saved.
func (r *SavedPostRepository) Toggle(postID, userID uint) (saved bool, count int64, err error) {
	txErr := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.SavedPost{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.SavedPost{PostID: postID, UserID: userID}).Error; err != nil {
				return err
			}
			saved = true
		}
		return tx.Model(&models.SavedPost{}).Where("post_id = ?", postID).Count(&count).Error
	})
	if txErr != nil {
		return false, 0, apperr.Internal(txErr, "toggle saved post %d", postID)
	}
	return saved, count, nil
}

// FindByUserID returns a user's saved entries newest first.
func (r *SavedPostRepository) FindByUserID(userID uint) ([]models.SavedPost, error) {
	var saved []models.SavedPost
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&saved).Error; err != nil {
		return nil, apperr.Internal(err, "list saved posts of user %d", userID)
	}
	return saved, nil
}
