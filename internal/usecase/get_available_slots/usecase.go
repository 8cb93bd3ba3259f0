package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/schedule"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         *domain.Catalog
	hours           domain.BusinessHours
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog *domain.Catalog,
	hours domain.BusinessHours,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		hours:           hours,
		timeProvider:    &RealTimeProvider{Location: location},
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Ошибка чтения записей не прерывает запрос: клиент получает пустой список
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, date=%s", req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из прайса
	service, ok := uc.catalog.Get(req.ServiceID)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Проверяем дату
	now := uc.timeProvider.Now()
	date := domain.StartOfDay(req.Date)

	if err := validateDate(date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	response := &Response{
		Date:    date,
		Service: service,
		Slots:   []time.Time{},
	}

	// 4. Рабочие часы на дату
	window, open := uc.hours.OpeningWindowFor(date)
	if !open {
		uc.logger.Info("GetAvailableSlots: closed on %s", date.Format(domain.DateFormat))
		response.Closed = true
		return response, nil
	}
	response.Window = &window

	// 5. Генерируем кандидатов
	candidates := schedule.GenerateSlots(uc.hours, date)

	// 6. Получаем записи на этот день
	appointments, err := uc.appointmentRepo.GetByDateRange(ctx, date, domain.EndOfDay(date))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments for %s: %v", date.Format(domain.DateFormat), err)
		return response, nil
	}

	// 7. Фильтруем слоты
	response.Slots = schedule.AvailableSlots(candidates, service, appointments, uc.catalog, now)

	uc.logger.Info("GetAvailableSlots: %d of %d slots available for service=%s, date=%s",
		len(response.Slots), len(candidates), req.ServiceID, date.Format(domain.DateFormat))

	return response, nil
}
