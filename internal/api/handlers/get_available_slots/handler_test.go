package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/barbershop-booking/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*getAvailableSlots.Response)
	return resp, args.Error(1)
}

func serve(uc GetAvailableSlotsUseCase, url string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/services/{serviceId}/available-slots",
		NewHandler(uc, time.UTC, logger.NewNop()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func TestHandle_Success(t *testing.T) {
	date := time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{ServiceID: "4", Date: date}).
		Return(&getAvailableSlots.Response{
			Date:    date,
			Service: domain.Service{ID: "4", Name: "Barba", Price: 15, DurationMinutes: 30},
			Window:  &domain.OpeningWindow{StartHour: 8, EndHour: 18},
			Slots:   []time.Time{date.Add(8 * time.Hour), date.Add(9*time.Hour + 30*time.Minute)},
		}, nil)

	rec := serve(uc, "/api/v1/services/4/available-slots?date=2026-10-24")

	require.Equal(t, http.StatusOK, rec.Code)
	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-24", body.Date)
	assert.Equal(t, "Barba", body.ServiceName)
	assert.False(t, body.Closed)
	require.NotNil(t, body.OpeningHours)
	assert.Equal(t, OpeningHours{Start: "08:00", End: "18:00"}, *body.OpeningHours)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, "08:00", body.Slots[0].Time)
	assert.Equal(t, "09:30", body.Slots[1].Time)
	uc.AssertExpectations(t)
}

func TestHandle_Closed(t *testing.T) {
	date := time.Date(2026, 10, 21, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&getAvailableSlots.Response{
		Date:    date,
		Service: domain.Service{ID: "1", Name: "Corte", DurationMinutes: 30},
		Closed:  true,
		Slots:   []time.Time{},
	}, nil)

	rec := serve(uc, "/api/v1/services/1/available-slots?date=2026-10-21")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2026-10-21","serviceId":"1","serviceName":"Corte","durationMinutes":30,"closed":true,"slots":[]}`,
		rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		url        string
		ucErr      error
		wantStatus int
	}{
		{name: "missing date", url: "/api/v1/services/1/available-slots", wantStatus: http.StatusBadRequest},
		{name: "bad date", url: "/api/v1/services/1/available-slots?date=24/10/2026", wantStatus: http.StatusBadRequest},
		{name: "unknown service", url: "/api/v1/services/9/available-slots?date=2026-10-24", ucErr: getAvailableSlots.ErrServiceNotFound, wantStatus: http.StatusNotFound},
		{name: "past date", url: "/api/v1/services/1/available-slots?date=2026-10-01", ucErr: getAvailableSlots.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "internal", url: "/api/v1/services/1/available-slots?date=2026-10-24", ucErr: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)

			rec := serve(uc, tt.url)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
