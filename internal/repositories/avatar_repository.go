package repositories

import "vastra/internal/models"

// AvatarRepository defines the interface for avatar data access.
type AvatarRepository interface {
	Create(avatar *models.Avatar) error
	GetByID(id uint) (*models.Avatar, error)
	GetByUserID(userID uint) (*models.Avatar, error)
}
