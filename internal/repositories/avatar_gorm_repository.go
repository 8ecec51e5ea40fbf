package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vastra/internal/models"
)

// GORMAvatarRepository is a GORM implementation of AvatarRepository.
type GORMAvatarRepository struct {
	db *gorm.DB
}

// NewGORMAvatarRepository creates a new instance of GORMAvatarRepository.
func NewGORMAvatarRepository(db *gorm.DB) *GORMAvatarRepository {
	return &GORMAvatarRepository{
		db: db,
	}
}

// Create inserts a new avatar.
func (r *GORMAvatarRepository) Create(avatar *models.Avatar) error {
	if err := r.db.Create(avatar).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create avatar: %w", err)
	}
	return nil
}

// GetByID retrieves an avatar by its ID.
func (r *GORMAvatarRepository) GetByID(id uint) (*models.Avatar, error) {
	var avatar models.Avatar
	if err := r.db.First(&avatar, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get avatar by ID %d: %w", id, err)
	}
	return &avatar, nil
}

// GetByUserID retrieves the avatar owned by a user.
func (r *GORMAvatarRepository) GetByUserID(userID uint) (*models.Avatar, error) {
	var avatar models.Avatar
	if err := r.db.First(&avatar, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get avatar for user %d: %w", userID, err)
	}
	return &avatar, nil
}
