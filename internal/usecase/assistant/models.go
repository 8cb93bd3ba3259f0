package assistant

// Intent тема сообщения клиента
type Intent string

const (
	IntentOpeningStatus Intent = "opening_status"
	IntentPrices        Intent = "prices"
	IntentAvailability  Intent = "availability"
	IntentStyle         Intent = "style"
	IntentHuman         Intent = "human"
)

// Request сообщение клиента
type Request struct {
	Message string
}

// Response ответ ассистента
type Response struct {
	Intent Intent
	Text   string
	// WhatsAppURL заполняется, когда ассистент предлагает написать барберу
	WhatsAppURL string
}
