package domain

import (
	"sort"
	"time"
)

// OpeningWindow is the half-open hour range [StartHour, EndHour) during which bookings may start
type OpeningWindow struct {
	StartHour int
	EndHour   int
}

// IsValid returns true if both hours are in [0,24) and the window is not empty
func (w OpeningWindow) IsValid() bool {
	return w.StartHour >= 0 && w.StartHour < 24 &&
		w.EndHour >= 0 && w.EndHour < 24 &&
		w.StartHour < w.EndHour
}

// StartOn returns the instant the window opens on the calendar day of date
func (w OpeningWindow) StartOn(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), w.StartHour, 0, 0, 0, date.Location())
}

// EndOn returns the instant the window closes on the calendar day of date
func (w OpeningWindow) EndOn(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), w.EndHour, 0, 0, 0, date.Location())
}

// BusinessHours maps a weekday to its opening window. Weekdays without an entry are closed.
type BusinessHours map[time.Weekday]OpeningWindow

// DefaultBusinessHours returns the shop schedule: Saturday 08-18, Sunday 09-16
func DefaultBusinessHours() BusinessHours {
	return BusinessHours{
		time.Saturday: {StartHour: 8, EndHour: 18},
		time.Sunday:   {StartHour: 9, EndHour: 16},
	}
}

// OpeningWindowFor returns the opening window for the calendar day of date.
// Only the weekday is considered; the time of day is ignored.
func (h BusinessHours) OpeningWindowFor(date time.Time) (OpeningWindow, bool) {
	w, ok := h[date.Weekday()]
	return w, ok
}

// IsOpenDay returns true if the shop has an opening window on the weekday of date
func (h BusinessHours) IsOpenDay(date time.Time) bool {
	_, ok := h.OpeningWindowFor(date)
	return ok
}

// Weekdays returns the open weekdays ordered Sunday..Saturday
func (h BusinessHours) Weekdays() []time.Weekday {
	days := make([]time.Weekday, 0, len(h))
	for d := range h {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// StartOfDay returns midnight of the calendar day of t in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the calendar day of t in t's location
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// IsSameDay returns true if both instants fall on the same calendar day
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// IsDateInPast returns true if the calendar day of date is before the calendar day of now
func IsDateInPast(date, now time.Time) bool {
	return StartOfDay(date).Before(StartOfDay(now))
}
