package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportTemplateReconstructsDay(t *testing.T) {
	persisted := []PersistedDay{
		{Day: "Monday", Slots: []string{"09:00 - 09:30", "09:30 - 10:00", "10:00 - 10:30"}},
	}

	week := ImportTemplate(persisted)
	require.Len(t, week, 7)

	monday := week[0]
	assert.Equal(t, "Monday", monday.Day)
	assert.Equal(t, "09:00", monday.StartTime)
	assert.Equal(t, "10:30", monday.EndTime)
	assert.Equal(t, 30, monday.SlotMinutes)
	assert.True(t, monday.Enabled)
}

func TestImportTemplateAcceptsCompactRanges(t *testing.T) {
	persisted := []PersistedDay{
		{Day: "Monday", Slots: []string{"09:00-09:30", "09:30-10:00", "10:00-10:30"}},
	}

	week := ImportTemplate(persisted)
	monday := week[0]
	assert.Equal(t, "09:00", monday.StartTime)
	assert.Equal(t, "10:30", monday.EndTime)
	assert.Equal(t, 30, monday.SlotMinutes)
	assert.True(t, monday.Enabled)
}

func TestImportTemplateDefaultsForMissingDays(t *testing.T) {
	week := ImportTemplate(nil)
	require.Len(t, week, 7)

	for i, day := range DayOrder {
		tpl := week[i]
		assert.Equal(t, day, tpl.Day)
		assert.False(t, tpl.Enabled, day)
		assert.Equal(t, "09:00", tpl.StartTime, day)
		assert.Equal(t, 30, tpl.SlotMinutes, day)

		if day == "Saturday" || day == "Sunday" {
			assert.Equal(t, "12:00", tpl.EndTime, day)
		} else {
			assert.Equal(t, "16:00", tpl.EndTime, day)
		}
	}
}

func TestImportTemplateEmptySlotListIsDisabled(t *testing.T) {
	persisted := []PersistedDay{
		{Day: "Wednesday", Slots: []string{}},
	}

	week := ImportTemplate(persisted)
	assert.False(t, week[2].Enabled)
}

func TestImportTemplateClampsGranularity(t *testing.T) {
	persisted := []PersistedDay{
		{Day: "Tuesday", Slots: []string{"09:00 - 09:02", "09:02 - 09:04"}},
	}

	week := ImportTemplate(persisted)
	assert.Equal(t, MinSlotMinutes, week[1].SlotMinutes)
	assert.True(t, week[1].Enabled)
}

func TestImportTemplateIrregularSlotsApproximate(t *testing.T) {
	// conjunto irregular: vale a duração do primeiro slot e as bordas
	persisted := []PersistedDay{
		{Day: "Friday", Slots: []string{"09:00 - 09:45", "10:00 - 10:20", "15:00 - 16:00"}},
	}

	week := ImportTemplate(persisted)
	friday := week[4]
	assert.Equal(t, "09:00", friday.StartTime)
	assert.Equal(t, "16:00", friday.EndTime)
	assert.Equal(t, 45, friday.SlotMinutes)
}

func TestImportTemplateMalformedFirstSlotFallsBack(t *testing.T) {
	persisted := []PersistedDay{
		{Day: "Monday", Slots: []string{"bogus", "09:30 - 10:00"}},
	}

	week := ImportTemplate(persisted)
	monday := week[0]
	assert.True(t, monday.Enabled)
	assert.Equal(t, 30, monday.SlotMinutes)
	assert.Equal(t, "10:00", monday.EndTime)
}

func TestImportTemplateRoundTripsDerivedWeek(t *testing.T) {
	tpl := DayTemplate{Day: "Thursday", StartTime: "08:00", EndTime: "12:00", SlotMinutes: 20, Enabled: true}

	slots := DeriveSlots(tpl)
	times := make([]string, len(slots))
	for i, s := range slots {
		times[i] = s.Time
	}

	week := ImportTemplate([]PersistedDay{{Day: "Thursday", Slots: times}})
	assert.Equal(t, tpl, week[3])
}
