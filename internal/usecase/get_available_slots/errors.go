package get_available_slots

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги нет в прайсе
	ErrServiceNotFound = errors.New("service not found")

	// ErrInvalidDate возвращается, когда дата раньше сегодняшней
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
