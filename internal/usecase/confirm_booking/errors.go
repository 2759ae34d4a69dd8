package confirm_booking

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия мастера не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotConfirmable возвращается, когда сессия не находится на шаге подтверждения
	ErrNotConfirmable = errors.New("session is not confirmable")

	// ErrPersistenceFailure возвращается, когда запись бронирования на платном
	// пути не удалось сохранить. Handoff при этом не эмитится
	ErrPersistenceFailure = errors.New("failed to persist booking record")

	// ErrInternal внутренняя ошибка use case
	ErrInternal = errors.New("internal error")
)
