package get_quote

import (
	"context"

	getQuote "github.com/m04kA/SMC-ReservationService/internal/usecase/get_quote"
)

// GetQuoteUseCase интерфейс use case расчета стоимости
type GetQuoteUseCase interface {
	Execute(ctx context.Context, req *getQuote.Request) (*getQuote.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
