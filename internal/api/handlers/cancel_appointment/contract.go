package cancel_appointment

import "context"

type AppointmentService interface {
	CancelByCustomer(ctx context.Context, appointmentID int64, phone string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
