package timezone

import "time"

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func Now() time.Time {
	return time.Now().In(Location(DefaultTimezone))
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// DateLayout é o dia-calendário usado em toda a API (datas de slots,
// overrides e bloqueios são sempre o dia local do prestador, sem offset).
const DateLayout = "2006-01-02"

func FormatDay(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDay(tz string, dateStr string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, dateStr, Location(tz))
}

// StartOfDay trunca um instante para a meia-noite local.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
