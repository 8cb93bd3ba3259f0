package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/barbershop-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.ServiceID) == "" {
		return fmt.Errorf("%w: serviceID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет, что дата не раньше сегодняшнего дня
func validateDate(requestDate time.Time, now time.Time) error {
	if domain.IsDateInPast(requestDate, now) {
		return fmt.Errorf("%w: %s is in the past", ErrInvalidDate, requestDate.Format(domain.DateFormat))
	}
	return nil
}
