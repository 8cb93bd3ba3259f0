package appointments

import (
	"context"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/integrations/events"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
	GetUpcomingByPhone(ctx context.Context, phone string, now time.Time) ([]*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

// EventPublisher публикует события о записях
type EventPublisher interface {
	Publish(ctx context.Context, event events.AppointmentEvent) error
}

// LinkBuilder строит ссылку на чат с клиентом
type LinkBuilder interface {
	Customer(phone string) string
}

// Metrics счетчики предметной области
type Metrics interface {
	IncAppointmentCancelled(actor string)
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
