package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/provider-scheduler/internal/httperr"
	"github.com/BruksfildServices01/provider-scheduler/internal/models"
)

func TestApprove(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusPending)}
	require.NoError(t, Approve(ap, now))
	assert.Equal(t, string(StatusConfirmed), ap.Status)
	require.NotNil(t, ap.ConfirmedAt)
	assert.Equal(t, now, *ap.ConfirmedAt)

	// aprovar duas vezes não é permitido
	err := Approve(ap, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestReject(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusPending)}
	require.NoError(t, Reject(ap, now))
	assert.Equal(t, string(StatusRejected), ap.Status)
	require.NotNil(t, ap.RejectedAt)

	confirmed := &models.Appointment{Status: string(StatusConfirmed)}
	err := Reject(confirmed, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestCancelTransitions(t *testing.T) {
	now := time.Now()

	tests := []struct {
		from Status
		ok   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusRejected, false},
		{StatusCancelled, false},
		{StatusCompleted, false},
	}

	for _, tt := range tests {
		ap := &models.Appointment{Status: string(tt.from)}
		err := Cancel(ap, now)
		if tt.ok {
			assert.NoError(t, err, tt.from)
			assert.Equal(t, string(StatusCancelled), ap.Status)
		} else {
			assert.True(t, httperr.IsBusiness(err, "invalid_state"), tt.from)
		}
	}
}

func TestCompleteOnlyFromConfirmed(t *testing.T) {
	now := time.Now()

	ap := &models.Appointment{Status: string(StatusConfirmed)}
	require.NoError(t, Complete(ap, now))
	assert.Equal(t, string(StatusCompleted), ap.Status)

	pending := &models.Appointment{Status: string(StatusPending)}
	err := Complete(pending, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestReschedulePreservesStatus(t *testing.T) {
	now := time.Now()
	start := now.Add(48 * time.Hour)
	end := start.Add(30 * time.Minute)

	ap := &models.Appointment{
		Status:   string(StatusPending),
		Date:     "2026-04-01",
		SlotTime: "09:00 - 09:30",
	}

	require.NoError(t, Reschedule(ap, "2026-04-02", "10:00 - 10:30", start, end, now))
	assert.Equal(t, string(StatusPending), ap.Status)
	assert.Equal(t, "2026-04-02", ap.Date)
	assert.Equal(t, "10:00 - 10:30", ap.SlotTime)
	assert.Equal(t, start, ap.StartTime)
	assert.Equal(t, end, ap.EndTime)
	require.NotNil(t, ap.RescheduledAt)

	done := &models.Appointment{Status: string(StatusCompleted)}
	err := Reschedule(done, "2026-04-02", "10:00 - 10:30", start, end, now)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
