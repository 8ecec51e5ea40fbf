package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vastra/internal/models"
)

// GORMMeasurementRepository is a GORM implementation of MeasurementRepository.
type GORMMeasurementRepository struct {
	db *gorm.DB
}

// NewGORMMeasurementRepository creates a new instance of GORMMeasurementRepository.
func NewGORMMeasurementRepository(db *gorm.DB) *GORMMeasurementRepository {
	return &GORMMeasurementRepository{
		db: db,
	}
}

// Create inserts a new measurement.
func (r *GORMMeasurementRepository) Create(measurement *models.Measurement) error {
	if err := r.db.Create(measurement).Error; err != nil {
		return fmt.Errorf("failed to create measurement: %w", err)
	}
	return nil
}

// GetByID retrieves a measurement by its ID.
func (r *GORMMeasurementRepository) GetByID(id uint) (*models.Measurement, error) {
	var measurement models.Measurement
	if err := r.db.First(&measurement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get measurement by ID %d: %w", id, err)
	}
	return &measurement, nil
}

// ListByUserID retrieves the full measurement history of a user.
func (r *GORMMeasurementRepository) ListByUserID(userID uint) ([]models.Measurement, error) {
	var measurements []models.Measurement
	if err := r.db.Find(&measurements, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to list measurements for user %d: %w", userID, err)
	}
	return measurements, nil
}
