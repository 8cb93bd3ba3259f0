package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
	getAvailableSlots "github.com/m04kA/barbershop-booking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date            string        `json:"date"`
	ServiceID       string        `json:"serviceId"`
	ServiceName     string        `json:"serviceName"`
	DurationMinutes int           `json:"durationMinutes"`
	Closed          bool          `json:"closed"`
	OpeningHours    *OpeningHours `json:"openingHours,omitempty"`
	Slots           []Slot        `json:"slots"`
}

// OpeningHours рабочие часы дня
type OpeningHours struct {
	Start string `json:"start"` // "08:00"
	End   string `json:"end"`   // "18:00"
}

// Slot свободное начало записи
type Slot struct {
	Time     string    `json:"time"`     // "09:30"
	StartsAt time.Time `json:"startsAt"` // передается в POST /appointments
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = Slot{
			Time:     slot.Format(domain.TimeFormat),
			StartsAt: slot,
		}
	}

	result := &AvailableSlotsResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		ServiceID:       resp.Service.ID,
		ServiceName:     resp.Service.Name,
		DurationMinutes: resp.Service.DurationMinutes,
		Closed:          resp.Closed,
		Slots:           slots,
	}

	if resp.Window != nil {
		result.OpeningHours = &OpeningHours{
			Start: fmt.Sprintf("%02d:00", resp.Window.StartHour),
			End:   fmt.Sprintf("%02d:00", resp.Window.EndHour),
		}
	}

	return result
}

// ToUseCaseRequest создает запрос use case; дата трактуется в часовом поясе барбершопа
func ToUseCaseRequest(serviceID, dateStr string, location *time.Location) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, location)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		ServiceID: serviceID,
		Date:      date,
	}, nil
}
