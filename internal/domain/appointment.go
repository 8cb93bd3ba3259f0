package domain

import "time"

// Appointment represents a customer booking in the agenda
type Appointment struct {
	ID        int64 // assigned by storage, zero before persistence
	Name      string
	Phone     string
	ServiceID string
	StartsAt  time.Time
	CreatedAt time.Time
}

// IsPersisted returns true if storage has assigned an ID
func (a *Appointment) IsPersisted() bool {
	return a.ID != 0
}

// EndsAt returns the end of the appointment for the given duration
func (a *Appointment) EndsAt(duration time.Duration) time.Time {
	return a.StartsAt.Add(duration)
}

// IsUpcoming returns true if the appointment starts at or after now
func (a *Appointment) IsUpcoming(now time.Time) bool {
	return !a.StartsAt.Before(now)
}

// BelongsTo returns true if the appointment was booked with the given phone (digits compared)
func (a *Appointment) BelongsTo(phone string) bool {
	return NormalizePhone(a.Phone) == NormalizePhone(phone)
}

// NormalizePhone strips everything except digits
func NormalizePhone(phone string) string {
	digits := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}
	return string(digits)
}

// AppointmentsFilter filter for listing appointments
type AppointmentsFilter struct {
	From  *time.Time // inclusive, nil = no lower bound
	To    *time.Time // inclusive, nil = no upper bound
	Phone *string    // exact match on stored phone
	Limit uint64     // 0 = unlimited
}
