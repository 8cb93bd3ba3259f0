package appointment

import (
	"context"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// UnconfiguredRepository используется, когда база данных отключена в конфигурации.
// Чтение возвращает пустой результат, запись возвращает ErrNotPersisted.
type UnconfiguredRepository struct{}

// NewUnconfiguredRepository создает репозиторий-заглушку
func NewUnconfiguredRepository() *UnconfiguredRepository {
	return &UnconfiguredRepository{}
}

func (r *UnconfiguredRepository) Create(_ context.Context, _ *domain.Appointment) (*domain.Appointment, error) {
	return nil, ErrNotPersisted
}

func (r *UnconfiguredRepository) GetByID(_ context.Context, _ int64) (*domain.Appointment, error) {
	return nil, ErrAppointmentNotFound
}

func (r *UnconfiguredRepository) GetByDateRange(_ context.Context, _, _ time.Time) ([]*domain.Appointment, error) {
	return []*domain.Appointment{}, nil
}

func (r *UnconfiguredRepository) GetUpcomingByPhone(_ context.Context, _ string, _ time.Time) ([]*domain.Appointment, error) {
	return []*domain.Appointment{}, nil
}

func (r *UnconfiguredRepository) List(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	return []*domain.Appointment{}, nil
}

// Delete ничего не удаляет: в отсутствующем хранилище нечего отменять
func (r *UnconfiguredRepository) Delete(_ context.Context, _ int64) error {
	return nil
}
