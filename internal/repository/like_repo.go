package repository

import (
	"blogapi/internal/apperr"
	"blogapi/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Toggle flips the membership of userID in the post's liker set inside a
// single transaction and returns the resulting membership and count. Two
// toggles flip twice; callers that need idempotence use Add/Remove instead.
func (r *LikeRepository) Toggle(postID, userID uint) (liked bool, count int64, err error) {
	txErr := r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("post_id = ? AND user_id = ?", postID, userID).Delete(&models.Like{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// Not a member yet, add the like. The unique index catches the
			// race where a concurrent toggle inserted first.
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&models.Like{PostID: postID, UserID: userID}).Error; err != nil {
				return err
			}
			liked = true
		}
		return tx.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	})
	if txErr != nil {
		return false, 0, apperr.Internal(txErr, "toggle like on post %d", postID)
	}
	return liked, count, nil
}

// Add inserts the (post, user) pair if absent. No-op when already present.
func (r *LikeRepository) Add(postID, userID uint) (count int64, err error) {
	txErr := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
			Create(&models.Like{PostID: postID, UserID: userID}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	})
	if txErr != nil {
		return 0, apperr.Internal(txErr, "add like on post %d", postID)
	}
	return count, nil
}

// Remove deletes the (post, user) pair if present. No-op when absent.
func (r *LikeRepository) Remove(postID, userID uint) (count int64, err error) {
	txErr := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ? AND user_id = ?", postID, userID).
			Delete(&models.Like{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	})
	if txErr != nil {
		return 0, apperr.Internal(txErr, "remove like on post %d", postID)
	}
	return count, nil
}

func (r *LikeRepository) Count(postID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, apperr.Internal(err, "count likes on post %d", postID)
	}
	return count, nil
}

func (r *LikeRepository) Exists(postID, userID uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Like{}).
		Where("post_id = ? AND user_id = ?", postID, userID).
		Count(&count).Error; err != nil {
		return false, apperr.Internal(err, "check like on post %d", postID)
	}
	return count > 0, nil
}

// IDsByPost returns the liker user ids of a post in insertion order. Row
// primary keys are monotonic, so ordering by id recovers the order likes were
// added in.
func (r *LikeRepository) IDsByPost(postID uint) ([]uint, error) {
	ids := make([]uint, 0)
	if err := r.db.Model(&models.Like{}).
		Where("post_id = ?", postID).
		Order("id ASC").
		Pluck("user_id", &ids).Error; err != nil {
		return nil, apperr.Internal(err, "list likers of post %d", postID)
	}
	return ids, nil
}

// IDsByPosts batch-loads liker ids for many posts in one query, keyed by post
// id, each list in insertion order.
func (r *LikeRepository) IDsByPosts(postIDs []uint) (map[uint][]uint, error) {
	result := make(map[uint][]uint)
	if len(postIDs) == 0 {
		return result, nil
	}

	var likes []models.Like
	if err := r.db.Where("post_id IN ?", postIDs).Order("id ASC").Find(&likes).Error; err != nil {
		return nil, apperr.Internal(err, "batch list likers")
	}
	for _, l := range likes {
		result[l.PostID] = append(result[l.PostID], l.UserID)
	}
	return result, nil
}
