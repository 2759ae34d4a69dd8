package payments

import "errors"

var (
	// ErrDraftRejected возвращается, когда платежный сервис отклонил черновик
	ErrDraftRejected = errors.New("payments client: draft rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("payments client: invalid response")
)
