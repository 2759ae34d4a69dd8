package save_event_order

import "errors"

var (
	// ErrInvalidOrderRef возвращается при пустом reference number заказа
	ErrInvalidOrderRef = errors.New("invalid order ref")

	// ErrInvalidTickets возвращается при неположительном количестве билетов
	ErrInvalidTickets = errors.New("invalid tickets count")

	// ErrInvalidContact возвращается при некорректных контактных данных
	ErrInvalidContact = errors.New("invalid contact")

	// ErrInternal внутренняя ошибка use case
	ErrInternal = errors.New("internal error")
)
