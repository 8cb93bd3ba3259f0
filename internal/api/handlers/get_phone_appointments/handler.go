package get_phone_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/service/appointments"
)

const (
	msgMissingPhone = "o telefone é obrigatório"
	msgInvalidPhone = "telefone inválido"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?phone=
// Возвращает только будущие записи клиента
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if phone == "" {
		h.logger.Warn("GET /appointments - Missing phone")
		handlers.RespondBadRequest(w, msgMissingPhone)
		return
	}

	response, err := h.service.GetByPhone(r.Context(), phone)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /appointments - Invalid phone: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPhone)
			return
		}
		h.logger.Error("GET /appointments - Failed to get appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: count=%d", len(response.Appointments))
	handlers.RespondJSON(w, http.StatusOK, response)
}
