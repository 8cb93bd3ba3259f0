package assistant_reply

import "github.com/m04kA/barbershop-booking/internal/usecase/assistant"

// MessageRequest HTTP request model
type MessageRequest struct {
	Message string `json:"message"`
}

// ReplyResponse HTTP response model
type ReplyResponse struct {
	Intent      string `json:"intent"`
	Text        string `json:"text"`
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
}

func FromUseCaseResponse(resp *assistant.Response) *ReplyResponse {
	return &ReplyResponse{
		Intent:      string(resp.Intent),
		Text:        resp.Text,
		WhatsAppURL: resp.WhatsAppURL,
	}
}
