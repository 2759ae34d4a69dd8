package domain

// ErrorCode закрытый набор кодов ошибок валидации и сабмита
// UI локализует сообщения по коду, сервис не формирует свободный текст
type ErrorCode string

const (
	// CodeInvalidDateTime диапазон времени отсутствует или конец не позже начала
	CodeInvalidDateTime ErrorCode = "INVALID_DATE_TIME"

	// CodeStartBeforeOpening начало слота раньше открытия площадки
	CodeStartBeforeOpening ErrorCode = "START_BEFORE_OPENING"

	// CodeEndAfterClosing конец слота позже закрытия площадки
	CodeEndAfterClosing ErrorCode = "END_AFTER_CLOSING"

	// CodeInvalidContact имя или телефон не прошли валидацию
	CodeInvalidContact ErrorCode = "INVALID_CONTACT"

	// CodePersistenceFailure внешнее сохранение завершилось ошибкой
	CodePersistenceFailure ErrorCode = "PERSISTENCE_FAILURE"

	// CodeExpiredDraft восстановленный черновик старше допустимого TTL
	CodeExpiredDraft ErrorCode = "EXPIRED_DRAFT"
)
