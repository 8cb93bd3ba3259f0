package get_business_info

import "github.com/m04kA/barbershop-booking/internal/service/business/models"

type BusinessService interface {
	GetInfo() *models.BusinessInfoResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
