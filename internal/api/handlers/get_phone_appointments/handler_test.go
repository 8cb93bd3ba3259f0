package get_phone_appointments

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/barbershop-booking/internal/service/appointments"
	"github.com/m04kA/barbershop-booking/internal/service/appointments/models"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByPhone(ctx context.Context, phone string) (*models.AppointmentListResponse, error) {
	args := m.Called(ctx, phone)
	resp, _ := args.Get(0).(*models.AppointmentListResponse)
	return resp, args.Error(1)
}

func get(svc AppointmentService, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("GetByPhone", mock.Anything, "5587999990000").
		Return(&models.AppointmentListResponse{Appointments: []models.AppointmentResponse{{ID: 5, Time: "09:00"}}}, nil)
	svc.On("GetByPhone", mock.Anything, "12").Return(nil, appointments.ErrInvalidInput)

	ok := get(svc, "/api/v1/appointments?phone=5587999990000")
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Contains(t, ok.Body.String(), `"id":5`)

	assert.Equal(t, http.StatusBadRequest, get(svc, "/api/v1/appointments?phone=12").Code)
	assert.Equal(t, http.StatusBadRequest, get(svc, "/api/v1/appointments").Code)
}
