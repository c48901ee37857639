package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/provider-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/provider-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/provider-scheduler/internal/httperr"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
)

// 2030-01-07 é uma segunda-feira
const futureMonday = "2030-01-07"

func mondayWeek() []availability.PersistedDay {
	return []availability.PersistedDay{
		{Day: "Monday", Slots: []string{"09:00 - 09:30", "09:30 - 10:00"}},
	}
}

func TestRescheduleAppointment_MovesToOpenSlot(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)

	ap := &models.Appointment{
		ID:         10,
		ProviderID: 1,
		Date:       futureMonday,
		SlotTime:   "09:00 - 09:30",
		Status:     string(domain.StatusConfirmed),
		Client:     models.Client{ID: 5, Name: "João", Email: "joao@example.com"},
	}

	repo.On("GetProviderByID", mock.Anything, uint(1)).Return(testProvider(), nil)
	repo.On("GetAppointmentForProvider", mock.Anything, uint(10), uint(1)).Return(ap, nil)
	repo.On("GetPersistedWeek", mock.Anything, uint(1)).Return(mondayWeek(), nil)
	repo.On("IsDateBlocked", mock.Anything, uint(1), futureMonday).Return(false, nil)
	repo.On("ListOverridesForDate", mock.Anything, uint(1), futureMonday).
		Return([]models.DateOverride{}, nil)
	repo.On("ListAppointmentsForDate", mock.Anything, uint(1), futureMonday).
		Return([]models.Appointment{{ID: 10, Date: futureMonday, SlotTime: "09:00 - 09:30", Status: ap.Status}}, nil)
	repo.On("AssertNoTimeConflict", mock.Anything, uint(1), mock.Anything, mock.Anything, uint(10)).
		Return(nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)
	notifier.On("EmailClient", &ap.Client, mock.Anything, mock.Anything).Return()

	uc := NewRescheduleAppointment(repo, testDispatcher(), notifier)

	got, err := uc.Execute(context.Background(), RescheduleInput{
		ProviderID:    1,
		AppointmentID: 10,
		Date:          futureMonday,
		Time:          "09:30 - 10:00",
	})
	require.NoError(t, err)

	assert.Equal(t, "09:30 - 10:00", got.SlotTime)
	assert.Equal(t, futureMonday, got.Date)
	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	require.NotNil(t, got.RescheduledAt)

	repo.AssertExpectations(t)
}

func TestRescheduleAppointment_RejectsPastSlot(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)

	ap := &models.Appointment{ID: 10, ProviderID: 1, Status: string(domain.StatusPending)}

	repo.On("GetProviderByID", mock.Anything, uint(1)).Return(testProvider(), nil)
	repo.On("GetAppointmentForProvider", mock.Anything, uint(10), uint(1)).Return(ap, nil)

	uc := NewRescheduleAppointment(repo, testDispatcher(), notifier)

	_, err := uc.Execute(context.Background(), RescheduleInput{
		ProviderID:    1,
		AppointmentID: 10,
		Date:          "2020-01-06",
		Time:          "09:00 - 09:30",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_in_the_past"))

	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}

func TestRescheduleAppointment_BlockedDateIsUnavailable(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)

	ap := &models.Appointment{
		ID:         10,
		ProviderID: 1,
		Date:       "2030-01-08",
		SlotTime:   "10:00 - 10:30",
		Status:     string(domain.StatusPending),
	}

	repo.On("GetProviderByID", mock.Anything, uint(1)).Return(testProvider(), nil)
	repo.On("GetAppointmentForProvider", mock.Anything, uint(10), uint(1)).Return(ap, nil)
	repo.On("GetPersistedWeek", mock.Anything, uint(1)).Return(mondayWeek(), nil)
	repo.On("IsDateBlocked", mock.Anything, uint(1), futureMonday).Return(true, nil)
	repo.On("ListOverridesForDate", mock.Anything, uint(1), futureMonday).
		Return([]models.DateOverride{}, nil)
	repo.On("ListAppointmentsForDate", mock.Anything, uint(1), futureMonday).
		Return([]models.Appointment{}, nil)

	uc := NewRescheduleAppointment(repo, testDispatcher(), notifier)

	_, err := uc.Execute(context.Background(), RescheduleInput{
		ProviderID:    1,
		AppointmentID: 10,
		Date:          futureMonday,
		Time:          "09:00 - 09:30",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}

func TestRescheduleAppointment_ConflictPropagates(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)

	ap := &models.Appointment{
		ID:         10,
		ProviderID: 1,
		Date:       futureMonday,
		SlotTime:   "09:00 - 09:30",
		Status:     string(domain.StatusPending),
	}

	repo.On("GetProviderByID", mock.Anything, uint(1)).Return(testProvider(), nil)
	repo.On("GetAppointmentForProvider", mock.Anything, uint(10), uint(1)).Return(ap, nil)
	repo.On("GetPersistedWeek", mock.Anything, uint(1)).Return(mondayWeek(), nil)
	repo.On("IsDateBlocked", mock.Anything, uint(1), futureMonday).Return(false, nil)
	repo.On("ListOverridesForDate", mock.Anything, uint(1), futureMonday).
		Return([]models.DateOverride{}, nil)
	repo.On("ListAppointmentsForDate", mock.Anything, uint(1), futureMonday).
		Return([]models.Appointment{}, nil)
	repo.On("AssertNoTimeConflict", mock.Anything, uint(1), mock.Anything, mock.Anything, uint(10)).
		Return(httperr.ErrBusiness("time_conflict"))

	uc := NewRescheduleAppointment(repo, testDispatcher(), notifier)

	_, err := uc.Execute(context.Background(), RescheduleInput{
		ProviderID:    1,
		AppointmentID: 10,
		Date:          futureMonday,
		Time:          "09:30 - 10:00",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "time_conflict"))

	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
}
