package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	appointmentRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/appointment"
	"github.com/m04kA/barbershop-booking/internal/integrations/events"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	catalog         *domain.Catalog
	hours           domain.BusinessHours
	publisher       EventPublisher
	links           LinkBuilder
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	catalog *domain.Catalog,
	hours domain.BusinessHours,
	publisher EventPublisher,
	links LinkBuilder,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		hours:           hours,
		publisher:       publisher,
		links:           links,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{Location: location},
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
// Доступность слота повторно не проверяется: две одновременные записи на один слот обе сохраняются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: service=%s, startsAt=%s", req.ServiceID, req.StartsAt.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем услугу из прайса
	service, ok := uc.catalog.Get(req.ServiceID)
	if !ok {
		uc.logger.Warn("CreateAppointment: service id=%s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	// 3. Проверяем время
	now := uc.timeProvider.Now()
	if err := validateStartTime(req.StartsAt, now); err != nil {
		uc.logger.Warn("CreateAppointment: start time validation failed: %v", err)
		return nil, err
	}

	// 4. Время должно совпадать с одним из слотов рабочего дня; пересечения не проверяются
	startsAt := req.StartsAt.In(now.Location())
	if err := validateSlot(uc.hours, startsAt); err != nil {
		uc.logger.Warn("CreateAppointment: slot validation failed: %v", err)
		return nil, err
	}

	// 5. Сохраняем запись
	appt := &domain.Appointment{
		Name:      strings.TrimSpace(req.Name),
		Phone:     domain.NormalizePhone(req.Phone),
		ServiceID: service.ID,
		StartsAt:  startsAt,
	}

	created, err := uc.appointmentRepo.Create(ctx, appt)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrNotPersisted) {
			uc.logger.Warn("CreateAppointment: storage is not configured, appointment not persisted")
			return nil, ErrNotPersisted
		}
		uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
		return nil, fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
	}

	uc.metrics.IncAppointmentCreated(service.ID)
	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", created.ID)

	// 6. Публикуем событие; ошибка не влияет на результат
	if err := uc.publisher.Publish(ctx, events.NewAppointmentCreated(created, now)); err != nil {
		uc.logger.Error("CreateAppointment: failed to publish event for appointment id=%d: %v", created.ID, err)
	}

	return &Response{
		Appointment: created,
		Service:     service,
		EndsAt:      created.EndsAt(service.Duration()),
		WhatsAppURL: uc.links.BookingConfirmation(service.Name, created.StartsAt, created.Name),
	}, nil
}
