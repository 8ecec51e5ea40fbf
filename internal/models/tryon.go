package models

import "time"

// TryOnHistory records one virtual fitting of a product by a user,
// optionally with the rendered result image.
type TryOnHistory struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	ProductID uint      `json:"productId" gorm:"not null;index"`
	ImageURL  *string   `json:"imageUrl" gorm:"column:image_url"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName keeps the singular table name instead of the pluralized
// "try_on_histories".
func (TryOnHistory) TableName() string {
	return "try_on_history"
}

// CreateTryOnInput carries the client-settable try-on fields.
type CreateTryOnInput struct {
	UserID    uint    `json:"userId" validate:"required"`
	ProductID uint    `json:"productId" validate:"required"`
	ImageURL  *string `json:"imageUrl"`
}

func (in CreateTryOnInput) ToModel() TryOnHistory {
	return TryOnHistory{
		UserID:    in.UserID,
		ProductID: in.ProductID,
		ImageURL:  in.ImageURL,
	}
}
