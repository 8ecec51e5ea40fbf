package services

import (
	"errors"

	"vastra/internal/models"
	"vastra/internal/repositories"
)

// WishlistService handles business logic for wishlists.
type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
	productRepo  repositories.ProductRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repositories.WishlistRepository, productRepo repositories.ProductRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
	}
}

// ListByUserID retrieves a user's wishlist with each product attached
// inline. Entries whose product no longer resolves are dropped.
func (s *WishlistService) ListByUserID(userID uint) ([]models.WishlistEntry, error) {
	items, err := s.wishlistRepo.ListByUserID(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]models.WishlistEntry, 0, len(items))
	for _, item := range items {
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				// product delisted after it was saved
				continue
			}
			return nil, err
		}
		entries = append(entries, models.WishlistEntry{
			WishlistItem: item,
			Product:      *product,
		})
	}
	return entries, nil
}

// Add saves a (user, product) pair. Adding a pair that already exists
// returns the existing row unchanged. If a concurrent identical
// request wins the insert, the unique index rejects ours and the
// winner's row is returned instead, so either way the call succeeds.
func (s *WishlistService) Add(in models.CreateWishlistInput) (*models.WishlistItem, error) {
	existing, err := s.wishlistRepo.Find(in.UserID, in.ProductID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	item := in.ToModel()
	if err := s.wishlistRepo.Create(&item); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return s.wishlistRepo.Find(in.UserID, in.ProductID)
		}
		return nil, err
	}
	return &item, nil
}

// Remove deletes a (user, product) pair. Removing an absent pair
// succeeds with no observable change.
func (s *WishlistService) Remove(userID, productID uint) error {
	return s.wishlistRepo.Delete(userID, productID)
}
