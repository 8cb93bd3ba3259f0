package get_admin_appointments

import (
	"net/http"
	"time"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/service/appointments/models"
)

const (
	msgInvalidDate = "formato de data inválido, esperado AAAA-MM-DD"
)

type Handler struct {
	service  AppointmentService
	location *time.Location
	logger   Logger
}

func NewHandler(service AppointmentService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/admin/appointments
// Query params: date (опционально, YYYY-MM-DD); без даты - ближайшие записи
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq := &models.ListForAdminRequest{}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.ParseInLocation(domain.DateFormat, dateStr, h.location)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		serviceReq.Date = &date
	}

	response, err := h.service.ListForAdmin(r.Context(), serviceReq)
	if err != nil {
		h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/appointments - Appointments retrieved successfully: count=%d", len(response.Appointments))
	handlers.RespondJSON(w, http.StatusOK, response)
}
