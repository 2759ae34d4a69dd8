package get_slot_options

import (
	"context"

	getSlotOptions "github.com/m04kA/SMC-ReservationService/internal/usecase/get_slot_options"
)

// GetSlotOptionsUseCase интерфейс use case получения опций слотов
type GetSlotOptionsUseCase interface {
	Execute(ctx context.Context, req *getSlotOptions.Request) (*getSlotOptions.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
