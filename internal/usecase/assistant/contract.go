package assistant

import (
	"context"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
}

// LinkBuilder строит ссылку на чат с барбером
type LinkBuilder interface {
	ShopContact(text string) string
}

// Metrics счетчики предметной области
type Metrics interface {
	IncAssistantReply(intent string)
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
