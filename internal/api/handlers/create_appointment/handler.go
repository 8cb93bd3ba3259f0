package create_appointment

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	createAppointment "github.com/m04kA/barbershop-booking/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidStartsAt    = "formato de horário inválido, esperado RFC 3339"
	msgInvalidInput       = "dados inválidos: informe nome, telefone com DDD e serviço"
	msgServiceNotFound    = "serviço não encontrado"
	msgSlotInPast         = "este horário já passou"
	msgInvalidSlot        = "horário fora do expediente ou fora da grade de 30 minutos"
	msgNotPersisted       = "agendamento indisponível no momento, fale conosco pelo WhatsApp"
)

type Handler struct {
	useCase  CreateAppointmentUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateAppointmentUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.location)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid startsAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartsAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("POST /appointments - Service not found: service_id=%s", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrSlotInPast):
			h.logger.Warn("POST /appointments - Slot in past: starts_at=%s", req.StartsAt)
			handlers.RespondBadRequest(w, msgSlotInPast)

		case errors.Is(err, createAppointment.ErrInvalidSlot):
			h.logger.Warn("POST /appointments - Invalid slot: starts_at=%s", req.StartsAt)
			handlers.RespondBadRequest(w, msgInvalidSlot)

		case errors.Is(err, createAppointment.ErrNotPersisted):
			h.logger.Warn("POST /appointments - Storage not configured, appointment not persisted")
			handlers.RespondServiceUnavailable(w, msgNotPersisted)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: service_id=%s, error=%v", req.ServiceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, service_id=%s",
		response.ID, response.ServiceID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
