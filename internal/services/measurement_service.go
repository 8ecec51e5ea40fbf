package services

import (
	"vastra/internal/models"
	"vastra/internal/repositories"
)

// MeasurementService handles business logic for body measurements.
type MeasurementService struct {
	repo repositories.MeasurementRepository
}

// NewMeasurementService creates a new MeasurementService.
func NewMeasurementService(repo repositories.MeasurementRepository) *MeasurementService {
	return &MeasurementService{
		repo: repo,
	}
}

// GetByID retrieves a single measurement.
func (s *MeasurementService) GetByID(id uint) (*models.Measurement, error) {
	return s.repo.GetByID(id)
}

// ListByUserID retrieves the measurement history of a user.
func (s *MeasurementService) ListByUserID(userID uint) ([]models.Measurement, error) {
	return s.repo.ListByUserID(userID)
}

// Create records a new measurement.
func (s *MeasurementService) Create(in models.CreateMeasurementInput) (*models.Measurement, error) {
	measurement := in.ToModel()
	if err := s.repo.Create(&measurement); err != nil {
		return nil, err
	}
	return &measurement, nil
}
