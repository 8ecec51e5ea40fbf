package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vastra/internal/models"
)

// GORMTailorServiceRepository is a GORM implementation of TailorServiceRepository.
type GORMTailorServiceRepository struct {
	db *gorm.DB
}

// NewGORMTailorServiceRepository creates a new instance of GORMTailorServiceRepository.
func NewGORMTailorServiceRepository(db *gorm.DB) *GORMTailorServiceRepository {
	return &GORMTailorServiceRepository{
		db: db,
	}
}

// Create inserts a new tailor service.
func (r *GORMTailorServiceRepository) Create(service *models.TailorService) error {
	if err := r.db.Create(service).Error; err != nil {
		return fmt.Errorf("failed to create tailor service: %w", err)
	}
	return nil
}

// GetByID retrieves a tailor service by its ID.
func (r *GORMTailorServiceRepository) GetByID(id uint) (*models.TailorService, error) {
	var service models.TailorService
	if err := r.db.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tailor service by ID %d: %w", id, err)
	}
	return &service, nil
}

// GetByUserID retrieves the first tailor service owned by a user in
// primary key order. Nothing prevents a user from owning several.
func (r *GORMTailorServiceRepository) GetByUserID(userID uint) (*models.TailorService, error) {
	var service models.TailorService
	if err := r.db.First(&service, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tailor service for user %d: %w", userID, err)
	}
	return &service, nil
}

// List retrieves the tailor services matching the filter, best rated
// first. An empty filter returns all services.
func (r *GORMTailorServiceRepository) List(filter TailorServiceFilter) ([]models.TailorService, error) {
	services := []models.TailorService{}
	query := filter.apply(r.db.Model(&models.TailorService{}))
	if err := query.Order("rating DESC").Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list tailor services: %w", err)
	}
	return services, nil
}
