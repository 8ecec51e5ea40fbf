package models

import "time"

// Avatar is the 3D body descriptor of a user. Each user has at most
// one, enforced by the unique index on UserID.
type Avatar struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;uniqueIndex"`
	Gender    string    `json:"gender" gorm:"not null"`
	SkinTone  *string   `json:"skinTone"`
	HairStyle *string   `json:"hairStyle"`
	HairColor *string   `json:"hairColor"`
	BodyType  *string   `json:"bodyType"`
	ModelURL  *string   `json:"modelUrl" gorm:"column:model_url"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateAvatarInput carries the client-settable avatar fields.
type CreateAvatarInput struct {
	UserID    uint    `json:"userId" validate:"required"`
	Gender    string  `json:"gender" validate:"required"`
	SkinTone  *string `json:"skinTone"`
	HairStyle *string `json:"hairStyle"`
	HairColor *string `json:"hairColor"`
	BodyType  *string `json:"bodyType"`
	ModelURL  *string `json:"modelUrl"`
}

func (in CreateAvatarInput) ToModel() Avatar {
	return Avatar{
		UserID:    in.UserID,
		Gender:    in.Gender,
		SkinTone:  in.SkinTone,
		HairStyle: in.HairStyle,
		HairColor: in.HairColor,
		BodyType:  in.BodyType,
		ModelURL:  in.ModelURL,
	}
}
