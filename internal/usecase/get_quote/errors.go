package get_quote

import "errors"

var (
	// ErrInvalidHours возвращается при неположительной длительности
	ErrInvalidHours = errors.New("invalid hours")

	// ErrInvalidPeople возвращается при недопустимом количестве гостей
	ErrInvalidPeople = errors.New("invalid people count")
)
