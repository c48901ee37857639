package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileDaySlotsBackendWins(t *testing.T) {
	backend := []BackendSlot{
		{Time: "09:00 - 09:30", IsAvailable: true, IsBooked: false},
		{Time: "09:30 - 10:00", IsAvailable: true, IsBooked: true},
		{Time: "10:00 - 10:30", IsAvailable: false, IsBooked: false},
	}

	// modelo e bloqueio são ignorados quando o banco tem slots
	tpl := DayTemplate{Day: "Monday", StartTime: "14:00", EndTime: "18:00", SlotMinutes: 60, Enabled: true}

	got := ReconcileDaySlots(backend, tpl, true)
	require.Len(t, got, 3)

	assert.Equal(t, Slot{Time: "09:00 - 09:30", Available: true, IsBooked: false}, got[0])
	assert.Equal(t, Slot{Time: "09:30 - 10:00", Available: false, IsBooked: true}, got[1])
	assert.Equal(t, Slot{Time: "10:00 - 10:30", Available: false, IsBooked: false}, got[2])
}

func TestReconcileDaySlotsFallsBackToTemplate(t *testing.T) {
	tpl := DayTemplate{Day: "Monday", StartTime: "09:00", EndTime: "10:00", SlotMinutes: 30, Enabled: true}

	got := ReconcileDaySlots(nil, tpl, false)
	assert.Equal(t, DeriveSlots(tpl), got)
}

func TestReconcileDaySlotsEmptyCases(t *testing.T) {
	enabled := DayTemplate{Day: "Monday", StartTime: "09:00", EndTime: "17:00", SlotMinutes: 30, Enabled: true}
	disabled := enabled
	disabled.Enabled = false

	tests := []struct {
		name    string
		backend []BackendSlot
		tpl     DayTemplate
		blocked bool
	}{
		{"blocked date suppresses template", nil, enabled, true},
		{"disabled day suppresses template", nil, disabled, false},
		{"blocked and disabled", []BackendSlot{}, disabled, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReconcileDaySlots(tt.backend, tt.tpl, tt.blocked)
			require.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestReconcileDaySlotsBookedNeverAvailable(t *testing.T) {
	backend := []BackendSlot{
		// isAvailable não tem significado próprio quando isBooked
		{Time: "09:00 - 09:30", IsAvailable: true, IsBooked: true},
	}

	got := ReconcileDaySlots(backend, DayTemplate{}, false)
	require.Len(t, got, 1)
	assert.False(t, got[0].Available)
	assert.True(t, got[0].IsBooked)
}
