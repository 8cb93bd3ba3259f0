package get_business_info

import (
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
)

type Handler struct {
	service BusinessService
	logger  Logger
}

func NewHandler(service BusinessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/business
// Публичный endpoint: прайс, рабочие часы и контакты
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	info := h.service.GetInfo()

	h.logger.Info("GET /business - Business info retrieved: services_count=%d", len(info.Services))
	handlers.RespondJSON(w, http.StatusOK, info)
}
