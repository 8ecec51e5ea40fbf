package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"vastra/internal/models"
)

// GORMWishlistRepository is a GORM implementation of WishlistRepository.
type GORMWishlistRepository struct {
	db *gorm.DB
}

// NewGORMWishlistRepository creates a new instance of GORMWishlistRepository.
func NewGORMWishlistRepository(db *gorm.DB) *GORMWishlistRepository {
	return &GORMWishlistRepository{
		db: db,
	}
}

// Create inserts a new wishlist row. ErrDuplicate signals that the
// (user, product) pair already exists.
func (r *GORMWishlistRepository) Create(item *models.WishlistItem) error {
	if err := r.db.Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create wishlist item: %w", err)
	}
	return nil
}

// Find retrieves the wishlist row for a (user, product) pair.
func (r *GORMWishlistRepository) Find(userID, productID uint) (*models.WishlistItem, error) {
	var item models.WishlistItem
	err := r.db.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find wishlist item for user %d, product %d: %w", userID, productID, err)
	}
	return &item, nil
}

// ListByUserID retrieves all wishlist rows of a user.
func (r *GORMWishlistRepository) ListByUserID(userID uint) ([]models.WishlistItem, error) {
	var items []models.WishlistItem
	if err := r.db.Find(&items, "user_id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to list wishlist for user %d: %w", userID, err)
	}
	return items, nil
}

// Delete removes the row for a (user, product) pair. Deleting an
// absent pair is a no-op, not an error.
func (r *GORMWishlistRepository) Delete(userID, productID uint) error {
	res := r.db.Delete(&models.WishlistItem{}, "user_id = ? AND product_id = ?", userID, productID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete wishlist item for user %d, product %d: %w", userID, productID, res.Error)
	}
	return nil
}
