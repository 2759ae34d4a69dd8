package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString время в формате "HH:MM" (24-часовой формат)
// Используется для передачи времени слотов между слоями без привязки к дате
type TimeString string

var (
	// ErrInvalidTimeFormat возвращается при некорректном формате времени
	ErrInvalidTimeFormat = errors.New("invalid time string format, expected HH:MM")
)

// NewTimeString создает TimeString из time.Time (часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку "HH:MM" и валидирует её
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromParts создает TimeString из часов и минут
func NewTimeStringFromParts(hour, minute int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute))
}

// Validate проверяет формат времени
func (t TimeString) Validate() error {
	if _, _, err := t.parts(); err != nil {
		return err
	}
	return nil
}

// IsZero возвращает true, если значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Hour возвращает часы (0-23); для невалидного значения возвращает 0
func (t TimeString) Hour() int {
	h, _, err := t.parts()
	if err != nil {
		return 0
	}
	return h
}

// Minute возвращает минуты (0-59); для невалидного значения возвращает 0
func (t TimeString) Minute() int {
	_, m, err := t.parts()
	if err != nil {
		return 0
	}
	return m
}

// Minutes возвращает количество минут с начала дня
func (t TimeString) Minutes() int {
	h, m, err := t.parts()
	if err != nil {
		return 0
	}
	return h*60 + m
}

// IsBefore возвращает true, если t строго раньше other
// Сравнение лексикографическое - корректно для формата "HH:MM" с ведущими нулями
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// AddMinutes возвращает новое время, сдвинутое на minutes минут вперед
// Возвращает ошибку, если исходное значение невалидно
// Переход через полночь не поддерживается - время ограничивается 23:59
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	h, m, err := t.parts()
	if err != nil {
		return "", err
	}

	total := h*60 + m + minutes
	if total > 23*60+59 {
		total = 23*60 + 59
	}
	if total < 0 {
		total = 0
	}

	return NewTimeStringFromParts(total/60, total%60), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД
// Поддерживает строки вида "HH:MM" и "HH:MM:SS" (тип TIME в Postgres)
func (t *TimeString) Scan(src interface{}) error {
	if src == nil {
		*t = ""
		return nil
	}

	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeFormat, src)
	}

	// Postgres TIME возвращает "HH:MM:SS" - отбрасываем секунды
	if len(s) > 5 {
		s = s[:5]
	}

	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

func (t TimeString) parts() (hour, minute int, err error) {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, ErrInvalidTimeFormat
	}

	var h, m int
	if _, err := fmt.Sscanf(s, "%02d:%02d", &h, &m); err != nil {
		return 0, 0, ErrInvalidTimeFormat
	}

	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, 0, ErrInvalidTimeFormat
	}

	return h, m, nil
}
