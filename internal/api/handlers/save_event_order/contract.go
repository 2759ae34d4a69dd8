package save_event_order

import (
	"context"

	saveEventOrder "github.com/m04kA/SMC-ReservationService/internal/usecase/save_event_order"
)

// SaveEventOrderUseCase интерфейс use case сохранения заказа мероприятия
type SaveEventOrderUseCase interface {
	Execute(ctx context.Context, req *saveEventOrder.Request) (*saveEventOrder.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
