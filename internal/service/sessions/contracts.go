package sessions

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// DraftStore общее внешнее хранилище черновиков
// Инжектируется явно, а не через глобальное состояние - в тестах
// подменяется in-memory реализацией
type DraftStore interface {
	Get(ctx context.Context, orderID string) (*domain.DraftRecord, error)
	Set(ctx context.Context, record *domain.DraftRecord) error
	Clear(ctx context.Context, orderID string) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
