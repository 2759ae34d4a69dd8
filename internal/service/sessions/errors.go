package sessions

import (
	"errors"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("sessions: session not found")

	// ErrInvalidPeople возвращается при недопустимом количестве гостей
	ErrInvalidPeople = errors.New("sessions: invalid people count")

	// ErrValidation возвращается, когда шаг заблокирован валидатором
	// Конкретный код ошибки несет ValidationError
	ErrValidation = errors.New("sessions: validation failed")

	// ErrNotConfirmable возвращается, когда сессия не находится на шаге подтверждения
	ErrNotConfirmable = errors.New("sessions: session is not at the confirm step")

	// ErrDraftNotFound возвращается, когда черновик для восстановления отсутствует
	ErrDraftNotFound = errors.New("sessions: draft not found")

	// ErrDraftExpired возвращается, когда восстановленный черновик старше TTL
	// Запись при этом очищается, мастер начинается заново
	ErrDraftExpired = errors.New("sessions: draft expired")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("sessions: internal error")
)

// ValidationError ошибка валидации шага с кодом для UI
// UI локализует сообщение по коду, сервис свободный текст не формирует
type ValidationError struct {
	Code domain.ErrorCode
}

// Error реализует интерфейс error
func (e *ValidationError) Error() string {
	return "sessions: validation failed: " + string(e.Code)
}

// Unwrap позволяет errors.Is(err, ErrValidation)
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError создает ошибку валидации с кодом
func NewValidationError(code domain.ErrorCode) *ValidationError {
	return &ValidationError{Code: code}
}
