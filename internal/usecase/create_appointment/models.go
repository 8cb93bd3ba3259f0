package create_appointment

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// Request модель запроса на создание записи
type Request struct {
	Name      string    // Имя клиента
	Phone     string    // Телефон клиента в любом формате
	ServiceID string    // ID услуги из прайса
	StartsAt  time.Time // Начало записи (один из слотов get_available_slots)
}

// Response модель ответа с созданной записью
type Response struct {
	Appointment *domain.Appointment
	Service     domain.Service
	EndsAt      time.Time
	// WhatsAppURL ссылка на чат с барбером с готовым подтверждением
	WhatsAppURL string
}
