package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// Type тип события о записи
type Type string

const (
	TypeAppointmentCreated   Type = "appointment.created"
	TypeAppointmentCancelled Type = "appointment.cancelled"
)

// Actor кто инициировал отмену
type Actor string

const (
	ActorCustomer Actor = "customer"
	ActorAdmin    Actor = "admin"
)

// AppointmentEvent полезная нагрузка события, сериализуется в JSON
type AppointmentEvent struct {
	EventID       string    `json:"eventId"`
	Type          Type      `json:"type"`
	AppointmentID int64     `json:"appointmentId"`
	ServiceID     string    `json:"serviceId"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	StartsAt      time.Time `json:"startsAt"`
	Actor         Actor     `json:"actor,omitempty"`
	OccurredAt    time.Time `json:"occurredAt"`
}

// NewAppointmentCreated событие о новой записи
func NewAppointmentCreated(appt *domain.Appointment, occurredAt time.Time) AppointmentEvent {
	return newAppointmentEvent(TypeAppointmentCreated, appt, "", occurredAt)
}

// NewAppointmentCancelled событие об отмене записи
func NewAppointmentCancelled(appt *domain.Appointment, actor Actor, occurredAt time.Time) AppointmentEvent {
	return newAppointmentEvent(TypeAppointmentCancelled, appt, actor, occurredAt)
}

func newAppointmentEvent(eventType Type, appt *domain.Appointment, actor Actor, occurredAt time.Time) AppointmentEvent {
	return AppointmentEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		AppointmentID: appt.ID,
		ServiceID:     appt.ServiceID,
		Name:          appt.Name,
		Phone:         appt.Phone,
		StartsAt:      appt.StartsAt,
		Actor:         actor,
		OccurredAt:    occurredAt,
	}
}
