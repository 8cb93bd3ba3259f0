package create_appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	digits := domain.NormalizePhone(req.Phone)
	if len(digits) < domain.MinPhoneDigits || len(digits) > domain.MaxPhoneDigits {
		return fmt.Errorf("%w: phone must contain %d-%d digits", ErrInvalidInput, domain.MinPhoneDigits, domain.MaxPhoneDigits)
	}

	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.StartsAt.IsZero() {
		return fmt.Errorf("%w: startsAt is required", ErrInvalidInput)
	}

	return nil
}

// validateStartTime проверяет, что запись не в прошлом
func validateStartTime(startsAt, now time.Time) error {
	if startsAt.Before(now) {
		return fmt.Errorf("%w: %s", ErrSlotInPast, startsAt.Format(time.RFC3339))
	}
	return nil
}

// validateSlot проверяет, что startsAt попадает в рабочее окно дня и лежит на сетке domain.SlotStep от открытия
// startsAt должен быть в часовом поясе барбершопа
func validateSlot(hours domain.BusinessHours, startsAt time.Time) error {
	window, ok := hours.OpeningWindowFor(startsAt)
	if !ok || !window.IsValid() {
		return fmt.Errorf("%w: %s is a closed day", ErrInvalidSlot, startsAt.Weekday())
	}

	opening := window.StartOn(startsAt)
	if startsAt.Before(opening) || !startsAt.Before(window.EndOn(startsAt)) {
		return fmt.Errorf("%w: %s is outside opening hours %02d:00-%02d:00",
			ErrInvalidSlot, startsAt.Format(domain.TimeFormat), window.StartHour, window.EndHour)
	}

	if startsAt.Sub(opening)%domain.SlotStep != 0 {
		return fmt.Errorf("%w: %s is not on a %s boundary", ErrInvalidSlot, startsAt.Format(time.RFC3339), domain.SlotStep)
	}

	return nil
}
