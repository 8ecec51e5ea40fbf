package models

import "time"

// WishlistItem links a user to a product they saved. The composite
// unique index guarantees at most one row per (user, product) pair,
// closing the window between concurrent identical inserts.
type WishlistItem struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	ProductID uint      `json:"productId" gorm:"not null;uniqueIndex:idx_wishlist_user_product"`
	AddedAt   time.Time `json:"addedAt" gorm:"autoCreateTime"`
}

// WishlistEntry is a wishlist row with its product attached inline
// for the list response.
type WishlistEntry struct {
	WishlistItem
	Product Product `json:"product"`
}

// CreateWishlistInput identifies the pair to save.
type CreateWishlistInput struct {
	UserID    uint `json:"userId" validate:"required"`
	ProductID uint `json:"productId" validate:"required"`
}

func (in CreateWishlistInput) ToModel() WishlistItem {
	return WishlistItem{
		UserID:    in.UserID,
		ProductID: in.ProductID,
	}
}
