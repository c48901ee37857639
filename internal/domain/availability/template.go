package availability

import (
	"fmt"
	"time"
)

// Granularidade mínima de um slot, em minutos.
const MinSlotMinutes = 5

// DayOrder é a ordem fixa dos dias usada em todo o sistema.
var DayOrder = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// DayTemplate é a configuração recorrente de um dia da semana.
type DayTemplate struct {
	Day         string `json:"day"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	SlotMinutes int    `json:"slotMinutes"`
	Enabled     bool   `json:"enabled"`
}

// Slot é um horário derivado para uma data concreta. Nunca é persistido:
// é recalculado a cada visualização.
type Slot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	IsBooked  bool   `json:"isBooked"`
}

// ToMinutes converte "HH:MM" em minutos desde a meia-noite.
func ToMinutes(hm string) (int, bool) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}

// FromMinutes converte minutos desde a meia-noite em "HH:MM".
func FromMinutes(mins int) string {
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}

// FormatRange monta o rótulo "HH:MM - HH:MM" de um intervalo.
func FormatRange(startMins, endMins int) string {
	return FromMinutes(startMins) + " - " + FromMinutes(endMins)
}

// DeriveSlots gera a lista ordenada de slots de um dia totalmente aberto a
// partir do modelo semanal. Modelo desativado, invertido ou malformado produz
// lista vazia: sem disponibilidade, nunca erro (fail-closed).
func DeriveSlots(tpl DayTemplate) []Slot {
	if !tpl.Enabled || tpl.SlotMinutes < MinSlotMinutes {
		return []Slot{}
	}

	start, okStart := ToMinutes(tpl.StartTime)
	end, okEnd := ToMinutes(tpl.EndTime)
	if !okStart || !okEnd || start >= end {
		return []Slot{}
	}

	slots := []Slot{}
	// slot parcial no fim do expediente é descartado, nunca truncado
	for cur := start; cur+tpl.SlotMinutes <= end; cur += tpl.SlotMinutes {
		slots = append(slots, Slot{
			Time:      FormatRange(cur, cur+tpl.SlotMinutes),
			Available: true,
			IsBooked:  false,
		})
	}

	return slots
}
