package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsPastSlot(t *testing.T) {
	// terça, 10:30 da manhã
	now := time.Date(2026, 3, 10, 10, 30, 0, 0, time.Local)

	tests := []struct {
		name      string
		date      string
		timeRange string
		want      bool
	}{
		{"far future date", "2099-01-01", "09:00 - 09:30", false},
		{"far past date", "2000-01-01", "09:00 - 09:30", true},
		{"yesterday any time", "2026-03-09", "23:30 - 23:59", true},
		{"tomorrow any time", "2026-03-11", "00:00 - 00:30", false},
		{"today earlier slot", "2026-03-10", "09:00 - 09:30", true},
		{"today later slot", "2026-03-10", "11:00 - 11:30", false},
		{"today slot starting exactly now counts as past", "2026-03-10", "10:30 - 11:00", true},
		{"today slot one minute ahead", "2026-03-10", "10:31 - 11:01", false},
		{"malformed date is never past", "not-a-date", "09:00 - 09:30", false},
		{"malformed time on today is never past", "2026-03-10", "garbage", false},
		{"bare start time without separator", "2026-03-10", "09:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPastSlot(tt.date, tt.timeRange, now))
		})
	}
}

func TestIsPastSlotReevaluatesWithClock(t *testing.T) {
	date := "2026-03-10"
	slot := "10:00 - 10:30"

	before := time.Date(2026, 3, 10, 9, 59, 0, 0, time.Local)
	after := before.Add(2 * time.Minute)

	assert.False(t, IsPastSlot(date, slot, before))
	assert.True(t, IsPastSlot(date, slot, after))
}
