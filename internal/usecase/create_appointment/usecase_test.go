package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	appointmentRepo "github.com/m04kA/barbershop-booking/internal/infra/storage/appointment"
	"github.com/m04kA/barbershop-booking/internal/integrations/events"
	"github.com/m04kA/barbershop-booking/internal/integrations/whatsapp"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type mockAppointmentRepository struct {
	mock.Mock
}

func (m *mockAppointmentRepository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	args := m.Called(ctx, appt)
	created, _ := args.Get(0).(*domain.Appointment)
	return created, args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event events.AppointmentEvent) error {
	return m.Called(ctx, event).Error(0)
}

type countingMetrics struct {
	created map[string]int
}

func (m *countingMetrics) IncAppointmentCreated(serviceID string) {
	if m.created == nil {
		m.created = make(map[string]int)
	}
	m.created[serviceID]++
}

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

var (
	now      = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	startsAt = time.Date(2026, 10, 24, 9, 30, 0, 0, time.UTC)
)

func newTestUseCase(repo AppointmentRepository, publisher EventPublisher, metrics Metrics) *UseCase {
	uc := NewUseCase(
		repo,
		domain.NewCatalog(domain.DefaultServices()),
		domain.DefaultBusinessHours(),
		publisher,
		whatsapp.NewLinks("558799846754", "Cassio"),
		metrics,
		time.UTC,
		logger.NewNop(),
	)
	uc.timeProvider = fixedTimeProvider{now: now}
	return uc
}

func persisted(id int64) func(args mock.Arguments) {
	return func(args mock.Arguments) {
		args.Get(1).(*domain.Appointment).ID = id
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &mockAppointmentRepository{}
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Appointment) bool {
		return a.Name == "João" && a.Phone == "5587999990000" && a.ServiceID == "4" && a.StartsAt.Equal(startsAt)
	})).Run(persisted(7)).Return(&domain.Appointment{
		ID: 7, Name: "João", Phone: "5587999990000", ServiceID: "4", StartsAt: startsAt,
	}, nil)

	publisher := &mockPublisher{}
	publisher.On("Publish", mock.Anything, mock.MatchedBy(func(e events.AppointmentEvent) bool {
		return e.Type == events.TypeAppointmentCreated && e.AppointmentID == 7
	})).Return(nil)

	metrics := &countingMetrics{}

	resp, err := newTestUseCase(repo, publisher, metrics).Execute(context.Background(), &Request{
		Name:      "  João ",
		Phone:     "+55 (87) 99999-0000",
		ServiceID: "4",
		StartsAt:  startsAt,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Appointment.ID)
	assert.Equal(t, "Barba", resp.Service.Name)
	assert.Equal(t, startsAt.Add(30*time.Minute), resp.EndsAt)
	assert.Equal(t,
		whatsapp.ContactURL("558799846754", "Olá Cassio, agendei um Barba para 24 de outubro às 09:30 - Nome: João"),
		resp.WhatsAppURL)
	assert.Equal(t, 1, metrics.created["4"])
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestExecute_PublishFailureIsIgnored(t *testing.T) {
	repo := &mockAppointmentRepository{}
	repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Appointment{
		ID: 8, Name: "Ana", Phone: "5587999990001", ServiceID: "1", StartsAt: startsAt,
	}, nil)

	publisher := &mockPublisher{}
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker unavailable"))

	resp, err := newTestUseCase(repo, publisher, &countingMetrics{}).Execute(context.Background(), &Request{
		Name: "Ana", Phone: "87999990001", ServiceID: "1", StartsAt: startsAt,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(8), resp.Appointment.ID)
}

func TestExecute_NotPersisted(t *testing.T) {
	repo := &mockAppointmentRepository{}
	repo.On("Create", mock.Anything, mock.Anything).Return(nil, appointmentRepo.ErrNotPersisted)
	publisher := &mockPublisher{}
	metrics := &countingMetrics{}

	resp, err := newTestUseCase(repo, publisher, metrics).Execute(context.Background(), &Request{
		Name: "Ana", Phone: "87999990001", ServiceID: "1", StartsAt: startsAt,
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNotPersisted)
	assert.Empty(t, metrics.created)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
}

func TestExecute_StoreFailure(t *testing.T) {
	repo := &mockAppointmentRepository{}
	repo.On("Create", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("%w: connection reset", appointmentRepo.ErrExecQuery))

	_, err := newTestUseCase(repo, &mockPublisher{}, &countingMetrics{}).Execute(context.Background(), &Request{
		Name: "Ana", Phone: "87999990001", ServiceID: "1", StartsAt: startsAt,
	})

	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrNotPersisted)
}

func TestExecute_ValidationErrors(t *testing.T) {
	valid := Request{Name: "Ana", Phone: "87999990001", ServiceID: "1", StartsAt: startsAt}

	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{name: "empty name", mutate: func(r *Request) { r.Name = "   " }, wantErr: ErrInvalidInput},
		{name: "short phone", mutate: func(r *Request) { r.Phone = "12-34" }, wantErr: ErrInvalidInput},
		{name: "long phone", mutate: func(r *Request) { r.Phone = "1234567890123456" }, wantErr: ErrInvalidInput},
		{name: "no service", mutate: func(r *Request) { r.ServiceID = "" }, wantErr: ErrInvalidInput},
		{name: "zero start", mutate: func(r *Request) { r.StartsAt = time.Time{} }, wantErr: ErrInvalidInput},
		{name: "unknown service", mutate: func(r *Request) { r.ServiceID = "42" }, wantErr: ErrServiceNotFound},
		{name: "past start", mutate: func(r *Request) { r.StartsAt = now.Add(-time.Minute) }, wantErr: ErrSlotInPast},
		{name: "closed day", mutate: func(r *Request) { r.StartsAt = time.Date(2026, 10, 21, 3, 17, 0, 0, time.UTC) }, wantErr: ErrInvalidSlot},
		{name: "off grid", mutate: func(r *Request) { r.StartsAt = time.Date(2026, 10, 24, 9, 10, 0, 0, time.UTC) }, wantErr: ErrInvalidSlot},
		{name: "seconds off grid", mutate: func(r *Request) { r.StartsAt = time.Date(2026, 10, 24, 9, 30, 5, 0, time.UTC) }, wantErr: ErrInvalidSlot},
		{name: "before opening", mutate: func(r *Request) { r.StartsAt = time.Date(2026, 10, 24, 7, 30, 0, 0, time.UTC) }, wantErr: ErrInvalidSlot},
		{name: "at closing", mutate: func(r *Request) { r.StartsAt = time.Date(2026, 10, 24, 18, 0, 0, 0, time.UTC) }, wantErr: ErrInvalidSlot},
		{name: "after closing", mutate: func(r *Request) { r.StartsAt = time.Date(2026, 10, 24, 23, 0, 0, 0, time.UTC) }, wantErr: ErrInvalidSlot},
		{name: "sunday after closing", mutate: func(r *Request) { r.StartsAt = time.Date(2026, 10, 25, 16, 0, 0, 0, time.UTC) }, wantErr: ErrInvalidSlot},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockAppointmentRepository{}
			req := valid
			tt.mutate(&req)

			resp, err := newTestUseCase(repo, &mockPublisher{}, &countingMetrics{}).Execute(context.Background(), &req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_AcceptsOfferedSlots(t *testing.T) {
	recife := time.FixedZone("America/Recife", -3*60*60)

	tests := []struct {
		name     string
		startsAt time.Time
		want     time.Time
	}{
		{name: "saturday opening", startsAt: time.Date(2026, 10, 24, 8, 0, 0, 0, time.UTC), want: time.Date(2026, 10, 24, 8, 0, 0, 0, time.UTC)},
		{name: "saturday last slot", startsAt: time.Date(2026, 10, 24, 17, 30, 0, 0, time.UTC), want: time.Date(2026, 10, 24, 17, 30, 0, 0, time.UTC)},
		{name: "sunday last slot", startsAt: time.Date(2026, 10, 25, 15, 30, 0, 0, time.UTC), want: time.Date(2026, 10, 25, 15, 30, 0, 0, time.UTC)},
		{name: "other zone normalized", startsAt: time.Date(2026, 10, 24, 6, 30, 0, 0, recife), want: time.Date(2026, 10, 24, 9, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockAppointmentRepository{}
			repo.On("Create", mock.Anything, mock.MatchedBy(func(a *domain.Appointment) bool {
				return a.StartsAt.Equal(tt.want) && a.StartsAt.Location() == time.UTC
			})).Return(&domain.Appointment{ID: 1, Name: "Ana", Phone: "87999990001", ServiceID: "1", StartsAt: tt.want}, nil)
			publisher := &mockPublisher{}
			publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

			_, err := newTestUseCase(repo, publisher, &countingMetrics{}).Execute(context.Background(), &Request{
				Name: "Ana", Phone: "87999990001", ServiceID: "1", StartsAt: tt.startsAt,
			})

			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}
