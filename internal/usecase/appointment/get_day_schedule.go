package appointment

import (
	"context"

	"github.com/BruksfildServices01/provider-scheduler/internal/domain/availability"
	domain "github.com/BruksfildServices01/provider-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/provider-scheduler/internal/httperr"
	"github.com/BruksfildServices01/provider-scheduler/internal/timezone"
)

// ======================================================
// OUTPUT
// ======================================================

type ScheduleSlot struct {
	availability.Slot
	IsPast bool `json:"isPast"`
}

type DaySchedule struct {
	Date    string         `json:"date"`
	Day     string         `json:"day"`
	Blocked bool           `json:"blocked"`
	Slots   []ScheduleSlot `json:"slots"`
}

// ======================================================
// USE CASE
// ======================================================

// GetDaySchedule calcula a lista exibível de slots de uma data: overrides e
// agendamentos materializados no banco têm precedência; sem eles, o dia é
// derivado do modelo semanal, exceto quando bloqueado ou desativado.
type GetDaySchedule struct {
	repo domain.Repository
}

func NewGetDaySchedule(repo domain.Repository) *GetDaySchedule {
	return &GetDaySchedule{repo: repo}
}

func (uc *GetDaySchedule) Execute(
	ctx context.Context,
	providerID uint,
	dateStr string,
) (*DaySchedule, error) {

	provider, err := uc.repo.GetProviderByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	date, err := timezone.ParseDay(provider.Timezone, dateStr)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	dayName := date.Weekday().String()

	week, err := uc.repo.GetPersistedWeek(ctx, providerID)
	if err != nil {
		return nil, err
	}

	tpl := TemplateForDay(week, dayName)

	blocked, err := uc.repo.IsDateBlocked(ctx, providerID, dateStr)
	if err != nil {
		return nil, err
	}

	backend, err := MaterializedSlots(ctx, uc.repo, providerID, dateStr, tpl)
	if err != nil {
		return nil, err
	}

	slots := availability.ReconcileDaySlots(backend, tpl, blocked)

	// passado é reavaliado a cada chamada, nunca cacheado
	now := timezone.NowIn(provider.Timezone)

	out := make([]ScheduleSlot, 0, len(slots))
	for _, s := range slots {
		out = append(out, ScheduleSlot{
			Slot:   s,
			IsPast: availability.IsPastSlot(dateStr, s.Time, now),
		})
	}

	return &DaySchedule{
		Date:    dateStr,
		Day:     dayName,
		Blocked: blocked,
		Slots:   out,
	}, nil
}

// ======================================================
// HELPERS
// ======================================================

// TemplateForDay reconstrói o modelo editável da semana e devolve o dia
// pedido; dia sem slots persistidos volta desativado.
func TemplateForDay(week []availability.PersistedDay, dayName string) availability.DayTemplate {
	for _, tpl := range availability.ImportTemplate(week) {
		if tpl.Day == dayName {
			return tpl
		}
	}
	return availability.DayTemplate{Day: dayName, Enabled: false}
}

// MaterializedSlots monta a visão do banco para uma data: os overrides salvos
// do dia, com isBooked vindo dos agendamentos; se não há override mas a data
// já tem agendamento, o dia é materializado a partir do modelo. Data nunca
// tocada devolve vazio (materialização preguiçosa).
func MaterializedSlots(
	ctx context.Context,
	repo domain.Repository,
	providerID uint,
	date string,
	tpl availability.DayTemplate,
) ([]availability.BackendSlot, error) {

	overrides, err := repo.ListOverridesForDate(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	apts, err := repo.ListAppointmentsForDate(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(apts))
	for _, ap := range apts {
		if ap.Status == string(domain.StatusPending) || ap.Status == string(domain.StatusConfirmed) {
			booked[ap.SlotTime] = true
		}
	}

	if len(overrides) > 0 {
		backend := make([]availability.BackendSlot, 0, len(overrides))
		for _, o := range overrides {
			backend = append(backend, availability.BackendSlot{
				Time:        o.Time,
				IsAvailable: o.IsAvailable,
				IsBooked:    booked[o.Time],
			})
		}
		return backend, nil
	}

	if len(booked) == 0 {
		return nil, nil
	}

	derived := availability.DeriveSlots(tpl)
	backend := make([]availability.BackendSlot, 0, len(derived))
	for _, s := range derived {
		backend = append(backend, availability.BackendSlot{
			Time:        s.Time,
			IsAvailable: true,
			IsBooked:    booked[s.Time],
		})
	}
	return backend, nil
}
