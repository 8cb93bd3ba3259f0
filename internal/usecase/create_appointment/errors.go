package create_appointment

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуги нет в прайсе
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrSlotInPast возвращается, когда время записи уже прошло
	ErrSlotInPast = errors.New("create_appointment: slot is in the past")

	// ErrInvalidSlot возвращается, когда время не совпадает ни с одним слотом рабочего дня
	ErrInvalidSlot = errors.New("create_appointment: start time is not an offered slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrNotPersisted возвращается, когда хранилище не настроено и запись не сохранена
	ErrNotPersisted = errors.New("create_appointment: appointment was not persisted")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
