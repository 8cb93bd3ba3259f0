package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

const (
	DefaultBusinessName  = "Cassio Barbearia"
	DefaultOwnerName     = "Cassio"
	DefaultBusinessPhone = "558799846754"
	DefaultTimezone      = "America/Recife"
)

// BusinessConfig данные барбершопа: контакты, расписание и прайс
type BusinessConfig struct {
	Name      string          `toml:"name"`
	OwnerName string          `toml:"owner_name"`
	Phone     string          `toml:"phone"`
	Timezone  string          `toml:"timezone"`
	Hours     []HoursConfig   `toml:"hours"`
	Services  []ServiceConfig `toml:"services"`
}

// HoursConfig рабочие часы для дня недели ("saturday", "sunday", ...)
type HoursConfig struct {
	Weekday   string `toml:"weekday"`
	StartHour int    `toml:"start_hour"`
	EndHour   int    `toml:"end_hour"`
}

type ServiceConfig struct {
	ID              string  `toml:"id"`
	Name            string  `toml:"name"`
	Price           float64 `toml:"price"`
	DurationMinutes int     `toml:"duration_minutes"`
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// BusinessHours строит расписание из конфигурации
func (b BusinessConfig) BusinessHours() domain.BusinessHours {
	hours := make(domain.BusinessHours, len(b.Hours))
	for _, h := range b.Hours {
		day, ok := parseWeekday(h.Weekday)
		if !ok {
			continue
		}
		hours[day] = domain.OpeningWindow{StartHour: h.StartHour, EndHour: h.EndHour}
	}
	return hours
}

// Catalog строит прайс-лист из конфигурации
func (b BusinessConfig) Catalog() *domain.Catalog {
	services := make([]domain.Service, 0, len(b.Services))
	for _, s := range b.Services {
		services = append(services, domain.Service{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return domain.NewCatalog(services)
}

// Location часовой пояс барбершопа; "даты" и "сейчас" считаются в нем
func (b BusinessConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: business.timezone %q: %v", ErrInvalidConfig, b.Timezone, err)
	}
	return loc, nil
}

func (b BusinessConfig) validate() []string {
	var problems []string

	if len(domain.NormalizePhone(b.Phone)) < domain.MinPhoneDigits {
		problems = append(problems, fmt.Sprintf("business.phone is too short: %q", b.Phone))
	}
	if _, err := time.LoadLocation(b.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("business.timezone is unknown: %q", b.Timezone))
	}

	seenDays := make(map[time.Weekday]bool, len(b.Hours))
	for _, h := range b.Hours {
		day, ok := parseWeekday(h.Weekday)
		if !ok {
			problems = append(problems, fmt.Sprintf("business.hours: unknown weekday %q", h.Weekday))
			continue
		}
		if seenDays[day] {
			problems = append(problems, fmt.Sprintf("business.hours: duplicate weekday %q", h.Weekday))
		}
		seenDays[day] = true

		window := domain.OpeningWindow{StartHour: h.StartHour, EndHour: h.EndHour}
		if !window.IsValid() {
			problems = append(problems, fmt.Sprintf("business.hours: invalid window %d-%d for %q", h.StartHour, h.EndHour, h.Weekday))
		}
	}

	seenServices := make(map[string]bool, len(b.Services))
	for _, s := range b.Services {
		if seenServices[s.ID] {
			problems = append(problems, fmt.Sprintf("business.services: duplicate id %q", s.ID))
		}
		seenServices[s.ID] = true

		service := domain.Service{ID: s.ID, Name: s.Name, Price: s.Price, DurationMinutes: s.DurationMinutes}
		if !service.IsValid() {
			problems = append(problems, fmt.Sprintf("business.services: invalid service %q", s.ID))
		}
	}

	return problems
}

func parseWeekday(s string) (time.Weekday, bool) {
	day, ok := weekdays[strings.ToLower(strings.TrimSpace(s))]
	return day, ok
}

func defaultHours() []HoursConfig {
	defaults := domain.DefaultBusinessHours()
	hours := make([]HoursConfig, 0, len(defaults))
	for _, day := range defaults.Weekdays() {
		window := defaults[day]
		hours = append(hours, HoursConfig{
			Weekday:   strings.ToLower(day.String()),
			StartHour: window.StartHour,
			EndHour:   window.EndHour,
		})
	}
	return hours
}

func defaultServices() []ServiceConfig {
	defaults := domain.DefaultServices()
	services := make([]ServiceConfig, 0, len(defaults))
	for _, s := range defaults {
		services = append(services, ServiceConfig{
			ID:              s.ID,
			Name:            s.Name,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	return services
}
