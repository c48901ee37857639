package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/provider-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
)

type Repository interface {
	// -------- Provider --------
	GetProviderByID(
		ctx context.Context,
		id uint,
	) (*models.Provider, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		providerID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// excludeID ignora o próprio agendamento em remarcações (0 = nenhum)
	AssertNoTimeConflict(
		ctx context.Context,
		providerID uint,
		start time.Time,
		end time.Time,
		excludeID uint,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForProvider(
		ctx context.Context,
		appointmentID uint,
		providerID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		providerID uint,
		date string,
		status string,
	) ([]models.Appointment, error)

	ListAppointmentsForDate(
		ctx context.Context,
		providerID uint,
		date string,
	) ([]models.Appointment, error)

	// -------- Availability --------
	GetPersistedWeek(
		ctx context.Context,
		providerID uint,
	) ([]availability.PersistedDay, error)

	ReplaceWeeklyTemplate(
		ctx context.Context,
		providerID uint,
		slots []models.TemplateSlot,
	) error

	ListOverridesForDate(
		ctx context.Context,
		providerID uint,
		date string,
	) ([]models.DateOverride, error)

	ReplaceOverridesForDate(
		ctx context.Context,
		providerID uint,
		date string,
		overrides []models.DateOverride,
	) error

	// -------- Blocked dates --------
	ListBlockedDates(
		ctx context.Context,
		providerID uint,
	) ([]string, error)

	IsDateBlocked(
		ctx context.Context,
		providerID uint,
		date string,
	) (bool, error)
}
