package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/provider-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/provider-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/provider-scheduler/internal/httperr"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
)

func testDispatcher() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}

func testProvider() *models.Provider {
	return &models.Provider{
		ID:       1,
		Name:     "Ana Souza",
		Timezone: "America/Sao_Paulo",
	}
}

func TestApproveAppointment_PendingIsConfirmed(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)

	ap := &models.Appointment{
		ID:         10,
		ProviderID: 1,
		Date:       "2030-01-07",
		SlotTime:   "09:00 - 09:30",
		Status:     string(domain.StatusPending),
		Client:     models.Client{ID: 5, Name: "João", Email: "joao@example.com"},
	}

	repo.On("GetProviderByID", mock.Anything, uint(1)).Return(testProvider(), nil)
	repo.On("GetAppointmentForProvider", mock.Anything, uint(10), uint(1)).Return(ap, nil)
	repo.On("UpdateAppointment", mock.Anything, ap).Return(nil)
	notifier.On("EmailClient", &ap.Client, mock.Anything, mock.Anything).Return()

	uc := NewApproveAppointment(repo, testDispatcher(), notifier)

	got, err := uc.Execute(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), got.Status)
	require.NotNil(t, got.ConfirmedAt)

	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestApproveAppointment_OnlyPendingCanBeApproved(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)

	ap := &models.Appointment{
		ID:         10,
		ProviderID: 1,
		Status:     string(domain.StatusConfirmed),
	}

	repo.On("GetProviderByID", mock.Anything, uint(1)).Return(testProvider(), nil)
	repo.On("GetAppointmentForProvider", mock.Anything, uint(10), uint(1)).Return(ap, nil)

	uc := NewApproveAppointment(repo, testDispatcher(), notifier)

	_, err := uc.Execute(context.Background(), 1, 10)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	repo.AssertNotCalled(t, "UpdateAppointment", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "EmailClient", mock.Anything, mock.Anything, mock.Anything)
}

func TestApproveAppointment_NotFound(t *testing.T) {
	repo := new(mockRepository)
	notifier := new(mockNotifier)

	repo.On("GetProviderByID", mock.Anything, uint(1)).Return(testProvider(), nil)
	repo.On("GetAppointmentForProvider", mock.Anything, uint(99), uint(1)).
		Return(nil, assert.AnError)

	uc := NewApproveAppointment(repo, testDispatcher(), notifier)

	_, err := uc.Execute(context.Background(), 1, 99)
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}
