package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/provider-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/provider-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/provider-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/provider-scheduler/internal/httperr"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
	"github.com/BruksfildServices01/provider-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RescheduleInput struct {
	ProviderID    uint
	AppointmentID uint

	Date string // YYYY-MM-DD
	Time string // HH:MM - HH:MM
}

// ======================================================
// USE CASE
// ======================================================

type RescheduleAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier Notifier,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	provider, err := uc.repo.GetProviderByID(ctx, in.ProviderID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForProvider(ctx, in.AppointmentID, in.ProviderID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	start, end, err := slotBounds(provider.Timezone, in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(provider.Timezone)
	if availability.IsPastSlot(in.Date, in.Time, now) {
		return nil, httperr.ErrBusiness("slot_in_the_past")
	}

	// o novo slot precisa estar aberto na agenda reconciliada do dia
	week, err := uc.repo.GetPersistedWeek(ctx, in.ProviderID)
	if err != nil {
		return nil, err
	}
	tpl := TemplateForDay(week, start.Weekday().String())

	blocked, err := uc.repo.IsDateBlocked(ctx, in.ProviderID, in.Date)
	if err != nil {
		return nil, err
	}

	backend, err := MaterializedSlots(ctx, uc.repo, in.ProviderID, in.Date, tpl)
	if err != nil {
		return nil, err
	}

	slots := availability.ReconcileDaySlots(backend, tpl, blocked)
	if !openSlot(slots, in.Time) && !(in.Date == ap.Date && in.Time == ap.SlotTime) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	if err := uc.repo.AssertNoTimeConflict(ctx, in.ProviderID, start, end, ap.ID); err != nil {
		return nil, err
	}

	oldDate, oldTime := ap.Date, ap.SlotTime
	if err := domain.Reschedule(ap, in.Date, in.Time, start, end, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: in.ProviderID,
		Action:     "appointment_rescheduled",
		Entity:     "appointment",
		EntityID:   &ap.ID,
		Metadata: map[string]any{
			"from_date": oldDate,
			"from_time": oldTime,
			"to_date":   in.Date,
			"to_time":   in.Time,
		},
	})

	uc.notifier.EmailClient(&ap.Client,
		"Agendamento remarcado",
		fmt.Sprintf("Seu horário foi remarcado de %s (%s) para %s (%s).", oldDate, oldTime, in.Date, in.Time),
	)

	return ap, nil
}
