package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vastra/internal/models"
)

// GORMTryOnRepository is a GORM implementation of TryOnRepository.
type GORMTryOnRepository struct {
	db *gorm.DB
}

// NewGORMTryOnRepository creates a new instance of GORMTryOnRepository.
func NewGORMTryOnRepository(db *gorm.DB) *GORMTryOnRepository {
	return &GORMTryOnRepository{
		db: db,
	}
}

// Create inserts a new try-on record.
func (r *GORMTryOnRepository) Create(tryOn *models.TryOnHistory) error {
	if err := r.db.Create(tryOn).Error; err != nil {
		return fmt.Errorf("failed to create try-on record: %w", err)
	}
	return nil
}

// GetByID retrieves a try-on record by its ID.
func (r *GORMTryOnRepository) GetByID(id uint) (*models.TryOnHistory, error) {
	var tryOn models.TryOnHistory
	if err := r.db.First(&tryOn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get try-on record by ID %d: %w", id, err)
	}
	return &tryOn, nil
}

// ListByUserID retrieves the full try-on history of a user.
func (r *GORMTryOnRepository) ListByUserID(userID uint) ([]models.TryOnHistory, error) {
	var history []models.TryOnHistory
	if err := r.db.Find(&history, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to list try-on history for user %d: %w", userID, err)
	}
	return history, nil
}
