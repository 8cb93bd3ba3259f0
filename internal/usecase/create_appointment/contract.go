package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/integrations/events"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// EventPublisher публикует события о записях (Kafka или noop)
type EventPublisher interface {
	Publish(ctx context.Context, event events.AppointmentEvent) error
}

// LinkBuilder строит ссылку на WhatsApp барбера с текстом о записи
type LinkBuilder interface {
	BookingConfirmation(serviceName string, startsAt time.Time, customerName string) string
}

// Metrics счетчики предметной области
type Metrics interface {
	IncAppointmentCreated(serviceID string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct {
	Location *time.Location
}

// Now возвращает текущее время в часовом поясе барбершопа
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
