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

type CreatePublicAppointmentInput struct {
	ProviderID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	Date  string // YYYY-MM-DD
	Time  string // HH:MM - HH:MM
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

// CreatePublicAppointment é a reserva feita pelo cliente na página pública:
// nasce pendente e espera aprovação do prestador.
type CreatePublicAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
}

func NewCreatePublicAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier Notifier,
) *CreatePublicAppointment {
	return &CreatePublicAppointment{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

func (uc *CreatePublicAppointment) Execute(
	ctx context.Context,
	in CreatePublicAppointmentInput,
) (*models.Appointment, error) {

	provider, err := uc.repo.GetProviderByID(ctx, in.ProviderID)
	if err != nil {
		return nil, err
	}

	start, end, err := slotBounds(provider.Timezone, in.Date, in.Time)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(provider.Timezone)
	if availability.IsPastSlot(in.Date, in.Time, now) {
		return nil, httperr.ErrBusiness("slot_in_the_past")
	}

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
	if !openSlot(slots, in.Time) {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.ProviderID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.AssertNoTimeConflict(ctx, in.ProviderID, start, end, 0); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		ProviderID: in.ProviderID,
		ClientID:   client.ID,
		Date:       in.Date,
		SlotTime:   in.Time,
		StartTime:  start,
		EndTime:    end,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: in.ProviderID,
		Action:     "appointment_requested",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	uc.notifier.NotifyProvider(ctx, in.ProviderID,
		fmt.Sprintf("Nova solicitação de %s para %s às %s.", client.Name, in.Date, in.Time),
	)

	return ap, nil
}
