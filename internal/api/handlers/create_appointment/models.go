package create_appointment

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	createAppointment "github.com/m04kA/barbershop-booking/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	ServiceID string `json:"serviceId"`
	StartsAt  string `json:"startsAt"` // RFC 3339, значение startsAt из available-slots
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	ServiceID   string    `json:"serviceId"`
	ServiceName string    `json:"serviceName"`
	Price       float64   `json:"price"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	StartsAt    time.Time `json:"startsAt"`
	EndsAt      time.Time `json:"endsAt"`
	CreatedAt   time.Time `json:"createdAt"`
	WhatsAppURL string    `json:"whatsappUrl"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(location *time.Location) (*createAppointment.Request, error) {
	startsAt, err := time.Parse(time.RFC3339, r.StartsAt)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		Name:      r.Name,
		Phone:     r.Phone,
		ServiceID: r.ServiceID,
		StartsAt:  startsAt.In(location),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	appt := resp.Appointment

	return &AppointmentResponse{
		ID:          appt.ID,
		Name:        appt.Name,
		Phone:       appt.Phone,
		ServiceID:   appt.ServiceID,
		ServiceName: resp.Service.Name,
		Price:       resp.Service.Price,
		Date:        appt.StartsAt.Format(domain.DateFormat),
		Time:        appt.StartsAt.Format(domain.TimeFormat),
		StartsAt:    appt.StartsAt,
		EndsAt:      resp.EndsAt,
		CreatedAt:   appt.CreatedAt,
		WhatsAppURL: resp.WhatsAppURL,
	}
}
