package schedule

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// Interval is a half-open time range [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether two half-open intervals intersect.
// Touching intervals (one ends exactly when the other starts) do not overlap.
//
// Примеры:
// - [10:00, 10:30) и [10:15, 10:45) → пересекаются
// - [10:00, 10:30) и [10:30, 11:00) → НЕ пересекаются (граничат)
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// DurationResolver returns how long an appointment for the given service occupies the agenda
type DurationResolver func(serviceID string) time.Duration

// FixedDuration resolves every service to the same duration
func FixedDuration(d time.Duration) DurationResolver {
	return func(string) time.Duration { return d }
}

// GenerateSlots возвращает все кандидаты на начало записи в рабочий день date.
// Слоты идут с шагом domain.SlotStep от открытия и строго раньше закрытия.
// В выходной день возвращается пустой список.
func GenerateSlots(hours domain.BusinessHours, date time.Time) []time.Time {
	window, ok := hours.OpeningWindowFor(date)
	if !ok || !window.IsValid() {
		return []time.Time{}
	}

	start := window.StartOn(date)
	end := window.EndOn(date)

	slots := make([]time.Time, 0, int(end.Sub(start)/domain.SlotStep))
	for current := start; current.Before(end); current = current.Add(domain.SlotStep) {
		slots = append(slots, current)
	}

	return slots
}

// BusyIntervals converts appointments into occupied intervals using durationOf for their length
func BusyIntervals(appointments []*domain.Appointment, durationOf DurationResolver) []Interval {
	busy := make([]Interval, 0, len(appointments))
	for _, appt := range appointments {
		if appt == nil {
			continue
		}
		busy = append(busy, Interval{
			Start: appt.StartsAt,
			End:   appt.EndsAt(durationOf(appt.ServiceID)),
		})
	}
	return busy
}

// FilterSlots оставляет кандидатов, которые не в прошлом и на которые помещается запись
// длительностью duration без пересечения с busy. Порядок входа сохраняется.
// Слот, равный now, остаётся доступным.
func FilterSlots(candidates []time.Time, duration time.Duration, busy []Interval, now time.Time) []time.Time {
	available := make([]time.Time, 0, len(candidates))

	for _, slot := range candidates {
		if slot.Before(now) {
			continue
		}

		candidate := Interval{Start: slot, End: slot.Add(duration)}
		if overlapsAny(candidate, busy) {
			continue
		}

		available = append(available, slot)
	}

	return available
}

// AvailableSlots filters candidates for a booking of service against the day's appointments.
// Appointment durations are looked up in catalog; unknown services count as 30 minutes.
func AvailableSlots(
	candidates []time.Time,
	service domain.Service,
	appointments []*domain.Appointment,
	catalog *domain.Catalog,
	now time.Time,
) []time.Time {
	busy := BusyIntervals(appointments, catalog.DurationOf)
	return FilterSlots(candidates, service.Duration(), busy, now)
}

func overlapsAny(candidate Interval, busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(candidate, b) {
			return true
		}
	}
	return false
}
