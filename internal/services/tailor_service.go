package services

import (
	"vastra/internal/models"
	"vastra/internal/repositories"
)

// TailorServiceService handles business logic for tailor services.
type TailorServiceService struct {
	repo repositories.TailorServiceRepository
}

// NewTailorServiceService creates a new TailorServiceService.
func NewTailorServiceService(repo repositories.TailorServiceRepository) *TailorServiceService {
	return &TailorServiceService{
		repo: repo,
	}
}

// List retrieves the tailor services matching the filter, best rated
// first.
func (s *TailorServiceService) List(filter repositories.TailorServiceFilter) ([]models.TailorService, error) {
	return s.repo.List(filter)
}

// GetByID retrieves a tailor service.
func (s *TailorServiceService) GetByID(id uint) (*models.TailorService, error) {
	return s.repo.GetByID(id)
}

// GetByUserID retrieves the tailor service owned by a user, first
// match if the user owns several.
func (s *TailorServiceService) GetByUserID(userID uint) (*models.TailorService, error) {
	return s.repo.GetByUserID(userID)
}

// Create publishes a new tailor service. The verification flag,
// rating and review count start at their defaults.
func (s *TailorServiceService) Create(in models.CreateTailorServiceInput) (*models.TailorService, error) {
	service := in.ToModel()
	if err := s.repo.Create(&service); err != nil {
		return nil, err
	}
	return &service, nil
}
