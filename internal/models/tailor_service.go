package models

import "time"

// TailorService is a tailoring offer published by a tailor user.
// IsVerified, Rating and ReviewCount are server-owned and start at
// their zero defaults.
type TailorService struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	UserID          uint      `json:"userId" gorm:"not null;index"`
	ServiceName     string    `json:"serviceName" gorm:"not null"`
	Description     string    `json:"description" gorm:"not null"`
	ServiceType     string    `json:"serviceType" gorm:"not null;index"`
	RatePerHour     int       `json:"ratePerHour" gorm:"not null"`
	RatePerItem     *int      `json:"ratePerItem"`
	Specializations []string  `json:"specializations" gorm:"type:jsonb;serializer:json"`
	Experience      *int      `json:"experience"`
	Address         *string   `json:"address"`
	City            *string   `json:"city" gorm:"index"`
	Pincode         *string   `json:"pincode"`
	PhoneNumber     *string   `json:"phoneNumber"`
	ImageURL        *string   `json:"imageUrl" gorm:"column:image_url"`
	AvailableDays   []string  `json:"availableDays" gorm:"type:jsonb;serializer:json"`
	IsVerified      bool      `json:"isVerified" gorm:"default:false"`
	Rating          float64   `json:"rating" gorm:"default:0"`
	ReviewCount     int       `json:"reviewCount" gorm:"default:0"`
	CreatedAt       time.Time `json:"createdAt"`
}

// CreateTailorServiceInput is the client-settable part of a
// TailorService. Verification, rating and review count cannot be
// supplied at creation.
type CreateTailorServiceInput struct {
	UserID          uint     `json:"userId" validate:"required"`
	ServiceName     string   `json:"serviceName" validate:"required"`
	Description     string   `json:"description" validate:"required"`
	ServiceType     string   `json:"serviceType" validate:"required"`
	RatePerHour     int      `json:"ratePerHour" validate:"required,gt=0"`
	RatePerItem     *int     `json:"ratePerItem" validate:"omitempty,gt=0"`
	Specializations []string `json:"specializations"`
	Experience      *int     `json:"experience" validate:"omitempty,gte=0"`
	Address         *string  `json:"address"`
	City            *string  `json:"city"`
	Pincode         *string  `json:"pincode"`
	PhoneNumber     *string  `json:"phoneNumber"`
	ImageURL        *string  `json:"imageUrl"`
	AvailableDays   []string `json:"availableDays"`
}

func (in CreateTailorServiceInput) ToModel() TailorService {
	return TailorService{
		UserID:          in.UserID,
		ServiceName:     in.ServiceName,
		Description:     in.Description,
		ServiceType:     in.ServiceType,
		RatePerHour:     in.RatePerHour,
		RatePerItem:     in.RatePerItem,
		Specializations: in.Specializations,
		Experience:      in.Experience,
		Address:         in.Address,
		City:            in.City,
		Pincode:         in.Pincode,
		PhoneNumber:     in.PhoneNumber,
		ImageURL:        in.ImageURL,
		AvailableDays:   in.AvailableDays,
	}
}
