package get_slot_options

import "errors"

var (
	// ErrInvalidDate возвращается при отсутствующей или некорректной дате
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidStartHour возвращается при часе начала вне суток
	ErrInvalidStartHour = errors.New("invalid start hour")

	// ErrInvalidStartMinute возвращается при минуте начала вне шага сетки
	ErrInvalidStartMinute = errors.New("invalid start minute")

	// ErrInvalidEndHour возвращается при часе конца не позже часа начала
	ErrInvalidEndHour = errors.New("invalid end hour")
)
