package availability

// BackendSlot é um slot já materializado no banco para uma data específica
// (salvo por override do dia ou tocado por um agendamento).
type BackendSlot struct {
	Time        string `json:"time"`
	IsAvailable bool   `json:"isAvailable"`
	IsBooked    bool   `json:"isBooked"`
}

// ReconcileDaySlots decide a lista final de slots de uma data, mesclando as
// três fontes em ordem estrita de precedência:
//
//  1. slots materializados no banco, usados verbatim quando existem;
//  2. slots derivados do modelo semanal, só quando a data nunca foi salva,
//     o dia está ativo e a data não está bloqueada;
//  3. vazio.
//
// A materialização é preguiçosa: o banco vira fonte de verdade a partir do
// primeiro save/booking da data; antes disso a visualização deriva do modelo.
func ReconcileDaySlots(backend []BackendSlot, tpl DayTemplate, blocked bool) []Slot {
	if len(backend) > 0 {
		slots := make([]Slot, 0, len(backend))
		for _, s := range backend {
			slots = append(slots, Slot{
				Time:      s.Time,
				Available: s.IsAvailable && !s.IsBooked,
				IsBooked:  s.IsBooked,
			})
		}
		return slots
	}

	if blocked || !tpl.Enabled {
		return []Slot{}
	}

	return DeriveSlots(tpl)
}
