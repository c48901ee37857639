package appointment

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/BruksfildServices01/provider-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetProviderByID(ctx context.Context, id uint) (*models.Provider, error) {
	args := m.Called(ctx, id)
	if p := args.Get(0); p != nil {
		return p.(*models.Provider), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetOrCreateClient(ctx context.Context, providerID uint, name, phone, email string) (*models.Client, error) {
	args := m.Called(ctx, providerID, name, phone, email)
	if c := args.Get(0); c != nil {
		return c.(*models.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *mockRepository) AssertNoTimeConflict(ctx context.Context, providerID uint, start, end time.Time, excludeID uint) error {
	args := m.Called(ctx, providerID, start, end, excludeID)
	return args.Error(0)
}

func (m *mockRepository) GetAppointmentForProvider(ctx context.Context, appointmentID, providerID uint) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, providerID)
	if ap := args.Get(0); ap != nil {
		return ap.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *mockRepository) ListAppointments(ctx context.Context, providerID uint, date, status string) ([]models.Appointment, error) {
	args := m.Called(ctx, providerID, date, status)
	if apts := args.Get(0); apts != nil {
		return apts.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ListAppointmentsForDate(ctx context.Context, providerID uint, date string) ([]models.Appointment, error) {
	args := m.Called(ctx, providerID, date)
	if apts := args.Get(0); apts != nil {
		return apts.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetPersistedWeek(ctx context.Context, providerID uint) ([]availability.PersistedDay, error) {
	args := m.Called(ctx, providerID)
	if week := args.Get(0); week != nil {
		return week.([]availability.PersistedDay), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ReplaceWeeklyTemplate(ctx context.Context, providerID uint, slots []models.TemplateSlot) error {
	args := m.Called(ctx, providerID, slots)
	return args.Error(0)
}

func (m *mockRepository) ListOverridesForDate(ctx context.Context, providerID uint, date string) ([]models.DateOverride, error) {
	args := m.Called(ctx, providerID, date)
	if overrides := args.Get(0); overrides != nil {
		return overrides.([]models.DateOverride), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) ReplaceOverridesForDate(ctx context.Context, providerID uint, date string, overrides []models.DateOverride) error {
	args := m.Called(ctx, providerID, date, overrides)
	return args.Error(0)
}

func (m *mockRepository) ListBlockedDates(ctx context.Context, providerID uint) ([]string, error) {
	args := m.Called(ctx, providerID)
	if dates := args.Get(0); dates != nil {
		return dates.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) IsDateBlocked(ctx context.Context, providerID uint, date string) (bool, error) {
	args := m.Called(ctx, providerID, date)
	return args.Bool(0), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) NotifyProvider(ctx context.Context, providerID uint, message string) {
	m.Called(ctx, providerID, message)
}

func (m *mockNotifier) EmailClient(client *models.Client, subject, body string) {
	m.Called(client, subject, body)
}
