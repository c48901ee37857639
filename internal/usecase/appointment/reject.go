package appointment

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/provider-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/provider-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/provider-scheduler/internal/httperr"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
	"github.com/BruksfildServices01/provider-scheduler/internal/timezone"
)

type RejectAppointment struct {
	repo     domain.Repository
	audit    *audit.Dispatcher
	notifier Notifier
}

func NewRejectAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	notifier Notifier,
) *RejectAppointment {
	return &RejectAppointment{
		repo:     repo,
		audit:    audit,
		notifier: notifier,
	}
}

func (uc *RejectAppointment) Execute(
	ctx context.Context,
	providerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	provider, err := uc.repo.GetProviderByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForProvider(ctx, appointmentID, providerID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(provider.Timezone)
	if err := domain.Reject(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ProviderID: providerID,
		Action:     "appointment_rejected",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	uc.notifier.EmailClient(&ap.Client,
		"Agendamento recusado",
		fmt.Sprintf("Seu horário de %s em %s não pôde ser confirmado.", ap.SlotTime, ap.Date),
	)

	return ap, nil
}
