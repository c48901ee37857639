package availability

import "strings"

// PersistedDay é o formato em que o modelo semanal fica persistido: arrays de
// slots por dia, não start/end/granularidade.
type PersistedDay struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

const (
	defaultSlotMinutes = 30

	defaultWeekdayStart = "09:00"
	defaultWeekdayEnd   = "16:00"
	defaultWeekendEnd   = "12:00"
)

// defaultTemplate é o ponto de partida de edição para um dia sem slots
// persistidos. Nunca é tratado como agenda ativa: o dia volta desativado.
func defaultTemplate(day string) DayTemplate {
	end := defaultWeekdayEnd
	if day == "Saturday" || day == "Sunday" {
		end = defaultWeekendEnd
	}
	return DayTemplate{
		Day:         day,
		StartTime:   defaultWeekdayStart,
		EndTime:     end,
		SlotMinutes: defaultSlotMinutes,
		Enabled:     false,
	}
}

// ImportTemplate reconstrói o modelo semanal editável a partir dos slots
// persistidos: início do primeiro slot, fim do último, granularidade pela
// duração do primeiro (mínimo 5). Assume slots contíguos e uniformes; um
// conjunto irregular é aproximado silenciosamente, igual ao comportamento
// do painel.
func ImportTemplate(persisted []PersistedDay) []DayTemplate {
	byDay := make(map[string][]string, len(persisted))
	for _, d := range persisted {
		if d.Day != "" {
			byDay[d.Day] = d.Slots
		}
	}

	week := make([]DayTemplate, 0, len(DayOrder))
	for _, day := range DayOrder {
		slots := byDay[day]
		if len(slots) == 0 {
			week = append(week, defaultTemplate(day))
			continue
		}

		firstStart, firstEnd := splitRange(slots[0], defaultWeekdayStart, "09:30")
		_, lastEnd := splitRange(slots[len(slots)-1], defaultWeekdayStart, defaultWeekdayEnd)

		slotMinutes := defaultSlotMinutes
		if s, okS := ToMinutes(firstStart); okS {
			if e, okE := ToMinutes(firstEnd); okE && e-s > 0 {
				slotMinutes = e - s
			}
		}
		if slotMinutes < MinSlotMinutes {
			slotMinutes = MinSlotMinutes
		}

		week = append(week, DayTemplate{
			Day:         day,
			StartTime:   firstStart,
			EndTime:     lastEnd,
			SlotMinutes: slotMinutes,
			Enabled:     true,
		})
	}

	return week
}

// splitRange aceita "HH:MM - HH:MM" e também a forma compacta "HH:MM-HH:MM".
func splitRange(r string, defStart, defEnd string) (string, string) {
	parts := strings.SplitN(r, " - ", 2)
	if len(parts) != 2 {
		parts = strings.SplitN(r, "-", 2)
	}
	start, end := defStart, defEnd
	if len(parts) > 0 && strings.TrimSpace(parts[0]) != "" {
		start = strings.TrimSpace(parts[0])
	}
	if len(parts) == 2 && strings.TrimSpace(parts[1]) != "" {
		end = strings.TrimSpace(parts[1])
	}
	return start, end
}
