package models

import "time"

// Color is one selectable color of a product.
type Color struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

// Product is a catalog entry. Prices are stored in the smallest
// currency unit. Rating and ReviewCount are server-owned and start
// at zero.
type Product struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	Name             string    `json:"name" gorm:"not null"`
	Description      string    `json:"description" gorm:"not null"`
	Category         string    `json:"category" gorm:"not null;index"`
	Gender           string    `json:"gender" gorm:"not null;index"`
	Type             string    `json:"type" gorm:"not null"`
	Brand            string    `json:"brand" gorm:"not null"`
	Occasion         *string   `json:"occasion"`
	Fabric           *string   `json:"fabric"`
	Price            int       `json:"price" gorm:"not null"`
	SalePrice        *int      `json:"salePrice"`
	Discount         *int      `json:"discount"`
	Sizes            []string  `json:"sizes" gorm:"type:jsonb;serializer:json;not null"`
	Colors           []Color   `json:"colors" gorm:"type:jsonb;serializer:json;not null"`
	MainImageURL     string    `json:"mainImageUrl" gorm:"column:main_image_url;not null"`
	AdditionalImages []string  `json:"additionalImages" gorm:"type:jsonb;serializer:json"`
	ModelURL         *string   `json:"modelUrl" gorm:"column:model_url"`
	StockAvailable   int       `json:"stockAvailable" gorm:"default:0"`
	Rating           float64   `json:"rating" gorm:"default:0"`
	ReviewCount      int       `json:"reviewCount" gorm:"default:0"`
	IsFeatured       bool      `json:"isFeatured" gorm:"default:false"`
	RetailerID       *uint     `json:"retailerId" gorm:"index"`
	CreatedAt        time.Time `json:"createdAt" gorm:"index"`
}

// CreateProductInput is the client-settable part of a Product.
// Rating and review count have no input fields at all, so they can
// never be set at creation.
type CreateProductInput struct {
	Name             string   `json:"name" validate:"required"`
	Description      string   `json:"description" validate:"required"`
	Category         string   `json:"category" validate:"required"`
	Gender           string   `json:"gender" validate:"required"`
	Type             string   `json:"type" validate:"required"`
	Brand            string   `json:"brand" validate:"required"`
	Occasion         *string  `json:"occasion"`
	Fabric           *string  `json:"fabric"`
	Price            int      `json:"price" validate:"required,gt=0"`
	SalePrice        *int     `json:"salePrice" validate:"omitempty,gt=0"`
	Discount         *int     `json:"discount" validate:"omitempty,gte=0"`
	Sizes            []string `json:"sizes" validate:"required,min=1,dive,required"`
	Colors           []Color  `json:"colors" validate:"required,min=1,dive"`
	MainImageURL     string   `json:"mainImageUrl" validate:"required"`
	AdditionalImages []string `json:"additionalImages"`
	ModelURL         *string  `json:"modelUrl"`
	StockAvailable   *int     `json:"stockAvailable" validate:"omitempty,gte=0"`
	IsFeatured       *bool    `json:"isFeatured"`
	RetailerID       *uint    `json:"retailerId"`
}

func (in CreateProductInput) ToModel() Product {
	product := Product{
		Name:             in.Name,
		Description:      in.Description,
		Category:         in.Category,
		Gender:           in.Gender,
		Type:             in.Type,
		Brand:            in.Brand,
		Occasion:         in.Occasion,
		Fabric:           in.Fabric,
		Price:            in.Price,
		SalePrice:        in.SalePrice,
		Discount:         in.Discount,
		Sizes:            in.Sizes,
		Colors:           in.Colors,
		MainImageURL:     in.MainImageURL,
		AdditionalImages: in.AdditionalImages,
		ModelURL:         in.ModelURL,
		RetailerID:       in.RetailerID,
	}
	if in.StockAvailable != nil {
		product.StockAvailable = *in.StockAvailable
	}
	if in.IsFeatured != nil {
		product.IsFeatured = *in.IsFeatured
	}
	return product
}
