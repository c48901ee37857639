package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/provider-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/provider-scheduler/internal/httperr"
	"github.com/BruksfildServices01/provider-scheduler/internal/timezone"
)

// slotBounds converte (data, "HH:MM - HH:MM") nos instantes concretos do
// timezone do prestador.
func slotBounds(tz string, dateStr string, slotTime string) (time.Time, time.Time, error) {
	day, err := timezone.ParseDay(tz, dateStr)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_date")
	}

	parts := strings.SplitN(slotTime, " - ", 2)
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_slot_time")
	}

	startMins, okStart := availability.ToMinutes(strings.TrimSpace(parts[0]))
	endMins, okEnd := availability.ToMinutes(strings.TrimSpace(parts[1]))
	if !okStart || !okEnd || startMins >= endMins {
		return time.Time{}, time.Time{}, httperr.ErrBusiness("invalid_slot_time")
	}

	start := day.Add(time.Duration(startMins) * time.Minute)
	end := day.Add(time.Duration(endMins) * time.Minute)
	return start, end, nil
}

// openSlot verifica se o slot pedido está aberto na agenda reconciliada do
// dia: existe, está disponível e não está reservado.
func openSlot(slots []availability.Slot, slotTime string) bool {
	for _, s := range slots {
		if s.Time == slotTime {
			return s.Available && !s.IsBooked
		}
	}
	return false
}
