package appointment

import (
	"context"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
)

// DBExecutor интерфейс выполнения запросов
// Поддерживает *sql.DB и *dbmetrics.DB
type DBExecutor = dbmetrics.DBExecutor

// Store общий интерфейс Repository и UnconfiguredRepository
type Store interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.Appointment, error)
	GetUpcomingByPhone(ctx context.Context, phone string, now time.Time) ([]*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
	Delete(ctx context.Context, id int64) error
}

var (
	_ Store = (*Repository)(nil)
	_ Store = (*UnconfiguredRepository)(nil)
)
