package repository

import (
	"errors"

	"blogapi/internal/apperr"
	"blogapi/internal/models"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return apperr.Internal(err, "create user")
	}
	return nil
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found with id: %d", id)
		}
		return nil, apperr.Internal(err, "find user %d", id)
	}
	return &user, nil
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found with email: %s", email)
		}
		return nil, apperr.Internal(err, "find user by email")
	}
	return &user, nil
}

func (r *UserRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperr.Internal(err, "check user %d", id)
	}
	return count > 0, nil
}

func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, apperr.Internal(err, "check email")
	}
	return count > 0, nil
}

// FindByIDs returns the users whose ids are in ids, in id order. Missing ids
// are silently skipped, matching the batch username lookup contract.
func (r *UserRepository) FindByIDs(ids []uint) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	if err := r.db.Where("id IN ?", ids).Order("id ASC").Find(&users).Error; err != nil {
		return nil, apperr.Internal(err, "find users by ids")
	}
	return users, nil
}
