package save_event_order

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// EventOrderRepository интерфейс репозитория заказов мероприятий
type EventOrderRepository interface {
	// Save сохраняет заказ, идемпотентно по order_ref
	Save(ctx context.Context, order *domain.EventOrder) (created bool, err error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
