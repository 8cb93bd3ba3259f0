package domain

import "time"

// Scheduling constants
const (
	// SlotStep is the granularity of candidate start times, independent of service durations
	SlotStep = 30 * time.Minute

	// DefaultServiceDurationMinutes is used for appointments whose service is not in the catalog
	DefaultServiceDurationMinutes = 30

	// AssistantSlotDurationMinutes is the fixed duration the assistant assumes for "openings today"
	AssistantSlotDurationMinutes = 30
)

// Business validation constants
const (
	MaxNameLength       = 100
	MinPhoneDigits      = 8
	MaxPhoneDigits      = 15
	AdminListLimit      = 50
	UnknownServiceName  = "Desconhecido"
	DefaultCurrencyCode = "BRL"
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
