package assistant_reply

import (
	"errors"
	"net/http"

	"github.com/m04kA/barbershop-booking/internal/api/handlers"
	"github.com/m04kA/barbershop-booking/internal/usecase/assistant"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidMessage     = "mensagem vazia ou muito longa"
)

type Handler struct {
	useCase AssistantUseCase
	logger  Logger
}

func NewHandler(useCase AssistantUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/assistant/messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req MessageRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assistant/messages - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assistant.Request{Message: req.Message})
	if err != nil {
		if errors.Is(err, assistant.ErrInvalidInput) {
			h.logger.Warn("POST /assistant/messages - Invalid message: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMessage)
			return
		}
		h.logger.Error("POST /assistant/messages - Failed to reply: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /assistant/messages - Reply sent: intent=%s", result.Intent)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
