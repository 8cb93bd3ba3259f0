package assistant

import "errors"

var (
	// ErrInvalidInput возвращается при пустом или слишком длинном сообщении
	ErrInvalidInput = errors.New("assistant: invalid input data")
)
