package cron

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/provider-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
	"github.com/BruksfildServices01/provider-scheduler/internal/notify"
)

// Scheduler dispara lembretes de agendamentos confirmados que começam em
// cerca de uma hora. A janela de 55 a 65 minutos tolera atrasos do tick.
type Scheduler struct {
	db       *gorm.DB
	notifier *notify.Service
	cron     *cron.Cron
}

func NewScheduler(db *gorm.DB, notifier *notify.Service) *Scheduler {
	return &Scheduler{
		db:       db,
		notifier: notifier,
		cron:     cron.New(),
	}
}

func (s *Scheduler) Start() {
	s.cron.AddFunc("@every 1m", s.runReminders)
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()
	windowStart := now.Add(55 * time.Minute)
	windowEnd := now.Add(65 * time.Minute)

	var apts []models.Appointment
	err := s.db.WithContext(ctx).
		Preload("Client").
		Where(
			"status = ? AND reminder_sent_at IS NULL AND start_time BETWEEN ? AND ?",
			string(domain.StatusConfirmed),
			windowStart,
			windowEnd,
		).
		Find(&apts).Error
	if err != nil {
		log.Printf("cron: failed to load upcoming appointments: %v", err)
		return
	}

	for i := range apts {
		ap := &apts[i]

		s.notifier.NotifyProvider(ctx, ap.ProviderID,
			fmt.Sprintf("Lembrete: agendamento com %s às %s.", ap.Client.Name, ap.SlotTime),
		)

		s.notifier.EmailClient(&ap.Client,
			"Lembrete de agendamento",
			fmt.Sprintf("Seu horário de %s em %s começa em cerca de uma hora.", ap.SlotTime, ap.Date),
		)

		sentAt := now
		if err := s.db.WithContext(ctx).
			Model(&models.Appointment{}).
			Where("id = ?", ap.ID).
			Update("reminder_sent_at", &sentAt).Error; err != nil {
			log.Printf("cron: failed to mark reminder for appointment %d: %v", ap.ID, err)
		}
	}
}
