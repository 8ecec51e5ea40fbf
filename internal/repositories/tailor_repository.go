package repositories

import "vastra/internal/models"

// TailorServiceRepository defines the interface for tailor service
// data access. GetByUserID has first-match semantics: the schema does
// not force one service per user.
type TailorServiceRepository interface {
	Create(service *models.TailorService) error
	GetByID(id uint) (*models.TailorService, error)
	GetByUserID(userID uint) (*models.TailorService, error)
	List(filter TailorServiceFilter) ([]models.TailorService, error)
}
