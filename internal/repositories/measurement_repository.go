package repositories

import "vastra/internal/models"

// MeasurementRepository defines the interface for measurement data access.
type MeasurementRepository interface {
	Create(measurement *models.Measurement) error
	GetByID(id uint) (*models.Measurement, error)
	ListByUserID(userID uint) ([]models.Measurement, error)
}
