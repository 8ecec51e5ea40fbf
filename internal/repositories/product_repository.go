package repositories

import "vastra/internal/models"

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uint) (*models.Product, error)
	List(filter ProductFilter) ([]models.Product, error)
}
