package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ProviderID uint     `gorm:"index" json:"provider_id"`
	Provider   Provider `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"provider"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// Date + SlotTime identificam o slot exibido no painel; StartTime/EndTime
	// são os instantes concretos no timezone do prestador.
	Date     string `gorm:"size:10;index" json:"date"`
	SlotTime string `gorm:"size:13" json:"slot_time"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Notes         string     `gorm:"size:255" json:"notes"`
	ConfirmedAt   *time.Time `json:"confirmed_at"`
	RejectedAt    *time.Time `json:"rejected_at"`
	CancelledAt   *time.Time `json:"cancelled_at"`
	CompletedAt   *time.Time `json:"completed_at"`
	RescheduledAt *time.Time `json:"rescheduled_at"`

	// marca o lembrete de 1h como enviado (o job roda a cada minuto)
	ReminderSentAt *time.Time `json:"reminder_sent_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
