package services

import (
	"vastra/internal/models"
	"vastra/internal/repositories"
)

// ProductService handles business logic for the product catalog.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// List retrieves the products matching the filter, newest first.
func (s *ProductService) List(filter repositories.ProductFilter) ([]models.Product, error) {
	return s.repo.List(filter)
}

// GetByID retrieves a single product.
func (s *ProductService) GetByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// Create adds a product to the catalog. Rating and review count
// start at zero regardless of the request.
func (s *ProductService) Create(in models.CreateProductInput) (*models.Product, error) {
	product := in.ToModel()
	if err := s.repo.Create(&product); err != nil {
		return nil, err
	}
	return &product, nil
}
