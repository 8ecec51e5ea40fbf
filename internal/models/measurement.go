package models

import "time"

// Measurement is one set of body dimensions for a user. Users keep a
// history, so several rows per user are expected.
type Measurement struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	Gender    string    `json:"gender" gorm:"not null"`
	Bust      *float64  `json:"bust"`
	Waist     float64   `json:"waist" gorm:"not null"`
	Hip       float64   `json:"hip" gorm:"not null"`
	Height    float64   `json:"height" gorm:"not null"`
	Weight    *float64  `json:"weight"`
	Shoulder  float64   `json:"shoulder" gorm:"not null"`
	Neck      *float64  `json:"neck"`
	ArmLength *float64  `json:"armLength"`
	Inseam    *float64  `json:"inseam"`
	Thigh     *float64  `json:"thigh"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateMeasurementInput carries the client-settable measurement
// fields. Waist, hip, height and shoulder are mandatory.
type CreateMeasurementInput struct {
	UserID    uint     `json:"userId" validate:"required"`
	Gender    string   `json:"gender" validate:"required"`
	Bust      *float64 `json:"bust" validate:"omitempty,gt=0"`
	Waist     float64  `json:"waist" validate:"required,gt=0"`
	Hip       float64  `json:"hip" validate:"required,gt=0"`
	Height    float64  `json:"height" validate:"required,gt=0"`
	Weight    *float64 `json:"weight" validate:"omitempty,gt=0"`
	Shoulder  float64  `json:"shoulder" validate:"required,gt=0"`
	Neck      *float64 `json:"neck" validate:"omitempty,gt=0"`
	ArmLength *float64 `json:"armLength" validate:"omitempty,gt=0"`
	Inseam    *float64 `json:"inseam" validate:"omitempty,gt=0"`
	Thigh     *float64 `json:"thigh" validate:"omitempty,gt=0"`
}

func (in CreateMeasurementInput) ToModel() Measurement {
	return Measurement{
		UserID:    in.UserID,
		Gender:    in.Gender,
		Bust:      in.Bust,
		Waist:     in.Waist,
		Hip:       in.Hip,
		Height:    in.Height,
		Weight:    in.Weight,
		Shoulder:  in.Shoulder,
		Neck:      in.Neck,
		ArmLength: in.ArmLength,
		Inseam:    in.Inseam,
		Thigh:     in.Thigh,
	}
}
