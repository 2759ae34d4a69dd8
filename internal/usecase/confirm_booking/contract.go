package confirm_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// WizardSessions интерфейс сервиса сессий мастера
type WizardSessions interface {
	// ConfirmableDraft возвращает черновик сессии на шаге подтверждения
	ConfirmableDraft(id string) (*domain.BookingDraft, error)
	// Complete переводит сессию в терминальное состояние
	Complete(id, refNumber string) error
}

// BookingRepository интерфейс репозитория записей бронирований
type BookingRepository interface {
	// Create сохраняет запись, идемпотентно по ref_number
	Create(ctx context.Context, record *domain.BookingRecord) (created bool, err error)
}

// DraftStore общее внешнее хранилище черновиков для handoff
type DraftStore interface {
	Set(ctx context.Context, record *domain.DraftRecord) error
}

// PaymentServiceClient интерфейс клиента платежного сервиса
type PaymentServiceClient interface {
	RegisterDraft(ctx context.Context, record *domain.HandoffRecord) error
}

// TransactionManager интерфейс для выполнения операций в транзакции
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
