package models

import "time"

// DateOverride é a exceção persistida de uma data específica. O save de um
// dia substitui todos os slots daquela data (last-writer-wins).
type DateOverride struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	ProviderID uint `gorm:"index:idx_override_provider_date" json:"provider_id"`

	Date        string `gorm:"size:10;index:idx_override_provider_date" json:"date"`
	Time        string `gorm:"size:13;not null" json:"time"`
	IsAvailable bool   `json:"is_available"`
	Position    int    `json:"position"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
