package models

import "time"

// BlockedDate marca uma data inteira como indisponível, independente do
// modelo semanal e dos overrides.
type BlockedDate struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProviderID uint `gorm:"index:idx_blocked_provider_date" json:"provider_id"`

	Date string `gorm:"size:10;index:idx_blocked_provider_date" json:"date"`

	CreatedAt time.Time `json:"created_at"`
}
