package repositories

import "vastra/internal/models"

// TryOnRepository defines the interface for try-on history data access.
type TryOnRepository interface {
	Create(tryOn *models.TryOnHistory) error
	GetByID(id uint) (*models.TryOnHistory, error)
	ListByUserID(userID uint) ([]models.TryOnHistory, error)
}
