package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/provider-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/provider-scheduler/internal/httperr"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
)

func TestCreatePublicAppointment_BookingStartsPending(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)

	client := &models.Client{ID: 5, ProviderID: 1, Name: "João", Phone: "11999990000"}

	repo.On("GetProviderByID", mock.Anything, uint(1)).Return(testProvider(), nil)
	repo.On("GetPersistedWeek", mock.Anything, uint(1)).Return(mondayWeek(), nil)
	repo.On("IsDateBlocked", mock.Anything, uint(1), futureMonday).Return(false, nil)
	repo.On("ListOverridesForDate", mock.Anything, uint(1), futureMonday).
		Return([]models.DateOverride{}, nil)
	repo.On("ListAppointmentsForDate", mock.Anything, uint(1), futureMonday).
		Return([]models.Appointment{}, nil)
	repo.On("GetOrCreateClient", mock.Anything, uint(1), "João", "11999990000", "").
		Return(client, nil)
	repo.On("AssertNoTimeConflict", mock.Anything, uint(1), mock.Anything, mock.Anything, uint(0)).
		Return(nil)
	repo.On("CreateAppointment", mock.Anything, mock.AnythingOfType("*models.Appointment")).
		Return(nil)
	notifier.On("NotifyProvider", mock.Anything, uint(1), mock.Anything).Return()

	uc := NewCreatePublicAppointment(repo, testDispatcher(), notifier)

	ap, err := uc.Execute(context.Background(), CreatePublicAppointmentInput{
		ProviderID:  1,
		ClientName:  "João",
		ClientPhone: "11999990000",
		Date:        futureMonday,
		Time:        "09:00 - 09:30",
	})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, uint(5), ap.ClientID)
	assert.Equal(t, "09:00 - 09:30", ap.SlotTime)
	assert.False(t, ap.StartTime.IsZero())
	assert.True(t, ap.EndTime.After(ap.StartTime))

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestCreatePublicAppointment_BookedSlotIsRejected(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)

	repo.On("GetProviderByID", mock.Anything, uint(1)).Return(testProvider(), nil)
	repo.On("GetPersistedWeek", mock.Anything, uint(1)).Return(mondayWeek(), nil)
	repo.On("IsDateBlocked", mock.Anything, uint(1), futureMonday).Return(false, nil)
	repo.On("ListOverridesForDate", mock.Anything, uint(1), futureMonday).
		Return([]models.DateOverride{}, nil)
	repo.On("ListAppointmentsForDate", mock.Anything, uint(1), futureMonday).
		Return([]models.Appointment{
			{ID: 7, Date: futureMonday, SlotTime: "09:00 - 09:30", Status: string(domain.StatusConfirmed)},
		}, nil)

	uc := NewCreatePublicAppointment(repo, testDispatcher(), notifier)

	_, err := uc.Execute(context.Background(), CreatePublicAppointmentInput{
		ProviderID:  1,
		ClientName:  "João",
		ClientPhone: "11999990000",
		Date:        futureMonday,
		Time:        "09:00 - 09:30",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))

	repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
}

func TestCreatePublicAppointment_SlotOutsideTemplateIsRejected(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)

	repo.On("GetProviderByID", mock.Anything, uint(1)).Return(testProvider(), nil)
	repo.On("GetPersistedWeek", mock.Anything, uint(1)).Return(mondayWeek(), nil)
	repo.On("IsDateBlocked", mock.Anything, uint(1), futureMonday).Return(false, nil)
	repo.On("ListOverridesForDate", mock.Anything, uint(1), futureMonday).
		Return([]models.DateOverride{}, nil)
	repo.On("ListAppointmentsForDate", mock.Anything, uint(1), futureMonday).
		Return([]models.Appointment{}, nil)

	uc := NewCreatePublicAppointment(repo, testDispatcher(), notifier)

	_, err := uc.Execute(context.Background(), CreatePublicAppointmentInput{
		ProviderID:  1,
		ClientName:  "João",
		ClientPhone: "11999990000",
		Date:        futureMonday,
		Time:        "22:00 - 22:30",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "slot_unavailable"))
}
