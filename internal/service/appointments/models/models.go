package models

import (
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// Request модели

// ListForAdminRequest запрос списка записей для админки
type ListForAdminRequest struct {
	Date *time.Time // Конкретный день (опционально); без даты - ближайшие domain.AdminListLimit записей
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	ServiceID       string    `json:"serviceId"`
	ServiceName     string    `json:"serviceName"`
	DurationMinutes int       `json:"durationMinutes"`
	Date            string    `json:"date"` // "2026-10-24"
	Time            string    `json:"time"` // "09:30"
	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
	CreatedAt       time.Time `json:"createdAt"`

	// WhatsAppURL ссылка на чат с клиентом, только в админке
	WhatsAppURL string `json:"whatsappUrl,omitempty"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO; имя и длительность услуги берутся из прайса
// Время переводится в location: драйвер БД возвращает его в часовом поясе сессии
func FromDomainAppointment(a *domain.Appointment, catalog *domain.Catalog, location *time.Location) AppointmentResponse {
	duration := catalog.DurationOf(a.ServiceID)
	startsAt := a.StartsAt
	createdAt := a.CreatedAt
	if location != nil {
		startsAt = startsAt.In(location)
		createdAt = createdAt.In(location)
	}

	return AppointmentResponse{
		ID:              a.ID,
		Name:            a.Name,
		Phone:           a.Phone,
		ServiceID:       a.ServiceID,
		ServiceName:     catalog.NameOf(a.ServiceID),
		DurationMinutes: int(duration / time.Minute),
		Date:            startsAt.Format(domain.DateFormat),
		Time:            startsAt.Format(domain.TimeFormat),
		StartsAt:        startsAt,
		EndsAt:          startsAt.Add(duration),
		CreatedAt:       createdAt,
	}
}

// FromDomainAppointmentList конвертирует список; nil-элементы пропускаются
func FromDomainAppointmentList(appts []*domain.Appointment, catalog *domain.Catalog, location *time.Location) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appts)),
	}
	for _, a := range appts {
		if a == nil {
			continue
		}
		resp.Appointments = append(resp.Appointments, FromDomainAppointment(a, catalog, location))
	}
	return resp
}
