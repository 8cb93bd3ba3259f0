package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	appointmentRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/appointment"
	"github.com/m04kA/barbershop-booking/internal/integrations/events"
	"github.com/m04kA/barbershop-booking/internal/service/appointments/models"
)

// Service сервис для работы с записями: просмотр по телефону, админка, отмена
type Service struct {
	appointmentRepo AppointmentRepository
	catalog         *domain.Catalog
	publisher       EventPublisher
	links           LinkBuilder
	metrics         Metrics
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	catalog *domain.Catalog,
	publisher EventPublisher,
	links LinkBuilder,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		catalog:         catalog,
		publisher:       publisher,
		links:           links,
		metrics:         metrics,
		location:        location,
		timeProvider:    &RealTimeProvider{Location: location},
		logger:          logger,
	}
}

// GetByPhone получает будущие записи клиента по возрастанию времени
// При ошибке хранилища возвращается пустой список
func (s *Service) GetByPhone(ctx context.Context, phone string) (*models.AppointmentListResponse, error) {
	digits, err := normalizePhone(phone)
	if err != nil {
		s.logger.Warn("GetByPhone: %v", err)
		return nil, err
	}

	s.logger.Info("GetByPhone: fetching upcoming appointments for phone=%s", maskPhone(digits))

	appts, err := s.appointmentRepo.GetUpcomingByPhone(ctx, digits, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("GetByPhone: repository error for phone=%s: %v", maskPhone(digits), err)
		return models.FromDomainAppointmentList(nil, s.catalog, s.location), nil
	}

	s.logger.Info("GetByPhone: successfully fetched %d appointments", len(appts))
	return models.FromDomainAppointmentList(appts, s.catalog, s.location), nil
}

// ListForAdmin получает записи для админки
// С датой - все записи этого дня; без даты - ближайшие domain.AdminListLimit записей начиная с текущего момента
func (s *Service) ListForAdmin(ctx context.Context, req *models.ListForAdminRequest) (*models.AppointmentListResponse, error) {
	var (
		appts []*domain.Appointment
		err   error
	)

	if req.Date != nil {
		day := domain.StartOfDay(*req.Date)
		s.logger.Info("ListForAdmin: fetching appointments for date=%s", day.Format(domain.DateFormat))
		appts, err = s.appointmentRepo.GetByDateRange(ctx, day, domain.EndOfDay(day))
	} else {
		now := s.timeProvider.Now()
		s.logger.Info("ListForAdmin: fetching next %d appointments", domain.AdminListLimit)
		appts, err = s.appointmentRepo.List(ctx, domain.AppointmentsFilter{
			From:  &now,
			Limit: domain.AdminListLimit,
		})
	}

	if err != nil {
		s.logger.Error("ListForAdmin: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListForAdmin - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainAppointmentList(appts, s.catalog, s.location)
	for i := range resp.Appointments {
		resp.Appointments[i].WhatsAppURL = s.links.Customer(resp.Appointments[i].Phone)
	}

	s.logger.Info("ListForAdmin: successfully fetched %d appointments", len(resp.Appointments))
	return resp, nil
}

// CancelByCustomer отменяет запись клиентом; телефон должен совпадать с телефоном записи
func (s *Service) CancelByCustomer(ctx context.Context, appointmentID int64, phone string) error {
	digits, err := normalizePhone(phone)
	if err != nil {
		s.logger.Warn("CancelByCustomer: %v", err)
		return err
	}

	s.logger.Info("CancelByCustomer: cancelling appointment id=%d", appointmentID)

	appt, err := s.getByID(ctx, "CancelByCustomer", appointmentID)
	if err != nil {
		return err
	}

	if !appt.BelongsTo(digits) {
		s.logger.Warn("CancelByCustomer: access denied to appointment id=%d", appointmentID)
		return ErrAccessDenied
	}

	return s.cancel(ctx, "CancelByCustomer", appt, events.ActorCustomer)
}

// CancelByAdmin отменяет любую запись
func (s *Service) CancelByAdmin(ctx context.Context, appointmentID int64) error {
	s.logger.Info("CancelByAdmin: cancelling appointment id=%d", appointmentID)

	appt, err := s.getByID(ctx, "CancelByAdmin", appointmentID)
	if err != nil {
		return err
	}

	return s.cancel(ctx, "CancelByAdmin", appt, events.ActorAdmin)
}

func (s *Service) getByID(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: appointmentID must be positive", ErrInvalidInput)
	}

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return appt, nil
}

// cancel физически удаляет запись и публикует событие; слот сразу освобождается
func (s *Service) cancel(ctx context.Context, op string, appt *domain.Appointment, actor events.Actor) error {
	if err := s.appointmentRepo.Delete(ctx, appt.ID); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found during deletion", op, appt.ID)
			return ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, appt.ID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	s.metrics.IncAppointmentCancelled(string(actor))

	event := events.NewAppointmentCancelled(appt, actor, s.timeProvider.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("%s: failed to publish event for appointment id=%d: %v", op, appt.ID, err)
	}

	s.logger.Info("%s: successfully cancelled appointment id=%d", op, appt.ID)
	return nil
}

func normalizePhone(phone string) (string, error) {
	digits := domain.NormalizePhone(phone)
	if len(digits) < domain.MinPhoneDigits || len(digits) > domain.MaxPhoneDigits {
		return "", fmt.Errorf("%w: phone must contain %d-%d digits", ErrInvalidInput, domain.MinPhoneDigits, domain.MaxPhoneDigits)
	}
	return digits, nil
}

// maskPhone оставляет последние 4 цифры для логов
func maskPhone(digits string) string {
	if len(digits) <= 4 {
		return digits
	}
	return "***" + digits[len(digits)-4:]
}
