package business

import (
	"fmt"
	"strings"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/internal/service/business/models"
)

// LinkBuilder строит ссылку на чат с барбером
type LinkBuilder interface {
	ShopContact(text string) string
}

// Info контактные данные барбершопа
type Info struct {
	Name      string
	OwnerName string
	Phone     string
	Timezone  string
	Greeting  string
}

// Service отдает прайс и расписание; данные неизменны после старта
type Service struct {
	info     Info
	catalog  *domain.Catalog
	hours    domain.BusinessHours
	links    LinkBuilder
	response *models.BusinessInfoResponse
}

// NewService создает сервис и заранее собирает ответ
func NewService(info Info, catalog *domain.Catalog, hours domain.BusinessHours, links LinkBuilder) *Service {
	s := &Service{
		info:    info,
		catalog: catalog,
		hours:   hours,
		links:   links,
	}
	s.response = s.build()
	return s
}

// GetInfo возвращает информацию о барбершопе
func (s *Service) GetInfo() *models.BusinessInfoResponse {
	return s.response
}

func (s *Service) build() *models.BusinessInfoResponse {
	services := s.catalog.Services()
	serviceResponses := make([]models.ServiceResponse, 0, len(services))
	for _, svc := range services {
		serviceResponses = append(serviceResponses, models.ServiceResponse{
			ID:              svc.ID,
			Name:            svc.Name,
			Price:           svc.Price,
			DurationMinutes: svc.DurationMinutes,
		})
	}

	days := s.hours.Weekdays()
	hours := make([]models.OpeningHoursResponse, 0, len(days))
	for _, day := range days {
		window := s.hours[day]
		hours = append(hours, models.OpeningHoursResponse{
			Weekday: strings.ToLower(day.String()),
			Start:   fmt.Sprintf("%02d:00", window.StartHour),
			End:     fmt.Sprintf("%02d:00", window.EndHour),
		})
	}

	return &models.BusinessInfoResponse{
		Name:         s.info.Name,
		OwnerName:    s.info.OwnerName,
		Phone:        domain.NormalizePhone(s.info.Phone),
		WhatsAppURL:  s.links.ShopContact(""),
		Timezone:     s.info.Timezone,
		Currency:     domain.DefaultCurrencyCode,
		Services:     serviceResponses,
		OpeningHours: hours,
		Greeting:     s.info.Greeting,
	}
}
