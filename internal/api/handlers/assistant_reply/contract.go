package assistant_reply

import (
	"context"

	"github.com/m04kA/barbershop-booking/internal/usecase/assistant"
)

type AssistantUseCase interface {
	Execute(ctx context.Context, req *assistant.Request) (*assistant.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
