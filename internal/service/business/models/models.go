package models

// BusinessInfoResponse публичная информация о барбершопе
type BusinessInfoResponse struct {
	Name         string                 `json:"name"`
	OwnerName    string                 `json:"ownerName"`
	Phone        string                 `json:"phone"`
	WhatsAppURL  string                 `json:"whatsappUrl"`
	Timezone     string                 `json:"timezone"`
	Currency     string                 `json:"currency"`
	Services     []ServiceResponse      `json:"services"`
	OpeningHours []OpeningHoursResponse `json:"openingHours"`
	Greeting     string                 `json:"assistantGreeting"`
}

// ServiceResponse позиция прайса
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
}

// OpeningHoursResponse рабочие часы дня недели
type OpeningHoursResponse struct {
	Weekday string `json:"weekday"` // "saturday"
	Start   string `json:"start"`   // "08:00"
	End     string `json:"end"`     // "18:00"
}
