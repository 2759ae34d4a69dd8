package confirm_booking

import (
	"context"

	confirmBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/confirm_booking"
)

// ConfirmBookingUseCase интерфейс use case подтверждения брони
type ConfirmBookingUseCase interface {
	Execute(ctx context.Context, req *confirmBooking.Request) (*confirmBooking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
