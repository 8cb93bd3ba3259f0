package get_admin_appointments

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/barbershop-booking/internal/service/appointments/models"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListForAdmin(ctx context.Context, req *models.ListForAdminRequest) (*models.AppointmentListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.AppointmentListResponse)
	return resp, args.Error(1)
}

func get(svc AppointmentService, url string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(svc, time.UTC, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_WithDate(t *testing.T) {
	date := time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC)
	svc := &mockService{}
	svc.On("ListForAdmin", mock.Anything, &models.ListForAdminRequest{Date: &date}).
		Return(&models.AppointmentListResponse{Appointments: []models.AppointmentResponse{{ID: 1, ServiceName: "Barba"}}}, nil)

	rec := get(svc, "/api/v1/admin/appointments?date=2026-10-24")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"serviceName":"Barba"`)
	svc.AssertExpectations(t)
}

func TestHandle_WithoutDate(t *testing.T) {
	svc := &mockService{}
	svc.On("ListForAdmin", mock.Anything, &models.ListForAdminRequest{}).
		Return(&models.AppointmentListResponse{Appointments: []models.AppointmentResponse{}}, nil)

	rec := get(svc, "/api/v1/admin/appointments")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"appointments":[]}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	svc := &mockService{}
	svc.On("ListForAdmin", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

	assert.Equal(t, http.StatusBadRequest, get(svc, "/api/v1/admin/appointments?date=ontem").Code)
	assert.Equal(t, http.StatusInternalServerError, get(svc, "/api/v1/admin/appointments").Code)
}
