package availability

import (
	"strings"
	"time"
)

// IsPastSlot verifica se um slot de uma data já passou em relação a now.
// Data anterior a hoje: passado, qualquer horário. Data futura: nunca.
// Hoje: o slot é passado sse o início <= now (início exatamente agora não é
// mais reservável). Entrada malformada nunca é tratada como passado.
//
// Função pura do relógio local do prestador: o chamador passa now no
// timezone correto e reavalia a cada renderização.
func IsPastSlot(date string, timeRange string, now time.Time) bool {
	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return false
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if day.Before(today) {
		return true
	}
	if day.After(today) {
		return false
	}

	startPart := timeRange
	if i := strings.Index(timeRange, " - "); i >= 0 {
		startPart = timeRange[:i]
	}

	startMins, ok := ToMinutes(strings.TrimSpace(startPart))
	if !ok {
		return false
	}

	slotStart := today.Add(time.Duration(startMins) * time.Minute)
	return !slotStart.After(now)
}
