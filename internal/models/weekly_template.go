package models

import "time"

// TemplateSlot é o modelo semanal persistido como arrays de slots por dia.
// O PUT de disponibilidade substitui a semana inteira (delete + create).
type TemplateSlot struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProviderID uint `gorm:"index" json:"provider_id"`

	Day      string `gorm:"size:10;not null" json:"day"`
	Time     string `gorm:"size:13;not null" json:"time"`
	Position int    `json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
