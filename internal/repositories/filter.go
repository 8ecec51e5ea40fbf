package repositories

import "gorm.io/gorm"

// ProductFilter holds the optional predicates of a product listing.
// Zero-valued fields are skipped; set fields combine with AND. Price
// bounds are inclusive.
type ProductFilter struct {
	Category   string
	Gender     string
	Type       string
	Brand      string
	Occasion   string
	Fabric     string
	MinPrice   *int
	MaxPrice   *int
	RetailerID *uint
	Featured   *bool
}

func (f ProductFilter) apply(query *gorm.DB) *gorm.DB {
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.Gender != "" {
		query = query.Where("gender = ?", f.Gender)
	}
	if f.Type != "" {
		query = query.Where("type = ?", f.Type)
	}
	if f.Brand != "" {
		query = query.Where("brand = ?", f.Brand)
	}
	if f.Occasion != "" {
		query = query.Where("occasion = ?", f.Occasion)
	}
	if f.Fabric != "" {
		query = query.Where("fabric = ?", f.Fabric)
	}
	if f.MinPrice != nil {
		query = query.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("price <= ?", *f.MaxPrice)
	}
	if f.RetailerID != nil {
		query = query.Where("retailer_id = ?", *f.RetailerID)
	}
	if f.Featured != nil {
		query = query.Where("is_featured = ?", *f.Featured)
	}
	return query
}

// TailorServiceFilter holds the optional predicates of a tailor
// service listing, same composition rules as ProductFilter.
type TailorServiceFilter struct {
	City           string
	ServiceType    string
	MinRatePerHour *int
	MaxRatePerHour *int
	IsVerified     *bool
}

func (f TailorServiceFilter) apply(query *gorm.DB) *gorm.DB {
	if f.City != "" {
		query = query.Where("city = ?", f.City)
	}
	if f.ServiceType != "" {
		query = query.Where("service_type = ?", f.ServiceType)
	}
	if f.MinRatePerHour != nil {
		query = query.Where("rate_per_hour >= ?", *f.MinRatePerHour)
	}
	if f.MaxRatePerHour != nil {
		query = query.Where("rate_per_hour <= ?", *f.MaxRatePerHour)
	}
	if f.IsVerified != nil {
		query = query.Where("is_verified = ?", *f.IsVerified)
	}
	return query
}
