package events

import "errors"

var (
	ErrMarshalEvent = errors.New("failed to marshal event")
	ErrWriteMessage = errors.New("failed to write message to kafka")
)
