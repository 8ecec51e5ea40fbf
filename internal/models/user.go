package models

import "time"

// User represents an account on the platform. The stored password is
// a bcrypt hash and is never serialized.
type User struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	Username    string     `json:"username" gorm:"uniqueIndex;type:varchar(100);not null"`
	Password    string     `json:"-" gorm:"type:varchar(255);not null"`
	Email       string     `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	FullName    string     `json:"fullName" gorm:"not null"`
	Gender      string     `json:"gender" gorm:"default:unspecified"`
	UserType    string     `json:"userType" gorm:"not null"`
	PhoneNumber *string    `json:"phoneNumber"`
	CreatedAt   time.Time  `json:"createdAt"`
	LastLogin   *time.Time `json:"lastLogin"`
}

// CreateUserInput is the client-settable part of a User. ID and the
// timestamps are server-owned and cannot be supplied here.
type CreateUserInput struct {
	Username    string  `json:"username" validate:"required,min=3,max=100"`
	Password    string  `json:"password" validate:"required,min=6"`
	Email       string  `json:"email" validate:"required,email"`
	FullName    string  `json:"fullName" validate:"required"`
	Gender      string  `json:"gender"`
	UserType    string  `json:"userType" validate:"required,oneof=buyer retailer tailor"`
	PhoneNumber *string `json:"phoneNumber"`
}

// ToModel builds the record to insert. The password is still the
// plain secret at this point; the service hashes it before storage.
func (in CreateUserInput) ToModel() User {
	gender := in.Gender
	if gender == "" {
		gender = "unspecified"
	}
	return User{
		Username:    in.Username,
		Password:    in.Password,
		Email:       in.Email,
		FullName:    in.FullName,
		Gender:      gender,
		UserType:    in.UserType,
		PhoneNumber: in.PhoneNumber,
	}
}
