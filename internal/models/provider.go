package models

import "time"

type Provider struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Slug         string `gorm:"size:120;uniqueIndex" json:"slug"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	Speciality  string  `gorm:"size:100" json:"speciality"`
	City        string  `gorm:"size:100" json:"city"`
	Address     string  `gorm:"size:255" json:"address"`
	Bio         string  `gorm:"type:text" json:"bio"`
	HourlyPrice float64 `json:"hourly_price"`
	AvatarURL   string  `gorm:"size:500" json:"avatar_url"`

	Timezone string `gorm:"size:64" json:"timezone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
