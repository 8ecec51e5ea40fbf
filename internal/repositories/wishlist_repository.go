package repositories

import "vastra/internal/models"

// WishlistRepository defines the interface for wishlist data access.
// Delete of an absent pair is a silent no-op.
type WishlistRepository interface {
	Create(item *models.WishlistItem) error
	Find(userID, productID uint) (*models.WishlistItem, error)
	ListByUserID(userID uint) ([]models.WishlistItem, error)
	Delete(userID, productID uint) error
}
