package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

var testHours = domain.OpeningHoursEntry{Open: 10, Close: 22}

func rng(start, end string) domain.TimeRange {
	return domain.TimeRange{
		Start: types.TimeString(start),
		End:   types.TimeString(end),
	}
}

func TestIsDateTimeValid(t *testing.T) {
	date := time.Date(2026, time.September, 10, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsDateTimeValid(date, rng("12:00", "14:00")))
	assert.True(t, IsDateTimeValid(date, rng("21:45", "22:00")))

	assert.False(t, IsDateTimeValid(time.Time{}, rng("12:00", "14:00")), "missing date")
	assert.False(t, IsDateTimeValid(date, domain.TimeRange{}), "missing range")
	assert.False(t, IsDateTimeValid(date, rng("14:00", "12:00")), "end before start")
	assert.False(t, IsDateTimeValid(date, rng("12:00", "12:00")), "zero-length range")
}

func TestOpeningHoursViolation(t *testing.T) {
	tests := []struct {
		name     string
		rng      domain.TimeRange
		expected domain.ErrorCode
	}{
		{"legal range", rng("12:00", "14:00"), ""},
		{"exactly the opening window", rng("10:00", "22:00"), ""},
		{"quarter-hour slot before closing", rng("21:45", "22:00"), ""},
		{"start before opening", rng("09:30", "12:00"), domain.CodeStartBeforeOpening},
		{"end after closing", rng("20:00", "22:30"), domain.CodeEndAfterClosing},
		{"unordered range", rng("14:00", "12:00"), domain.CodeInvalidDateTime},
		{"empty range", domain.TimeRange{}, domain.CodeInvalidDateTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, OpeningHoursViolation(testHours, tt.rng))
		})
	}
}

func TestIsWithinOpeningHours(t *testing.T) {
	assert.True(t, IsWithinOpeningHours(testHours, rng("10:00", "22:00")))
	assert.False(t, IsWithinOpeningHours(testHours, rng("09:00", "11:00")))
	assert.False(t, IsWithinOpeningHours(testHours, rng("21:00", "23:00")))
}

func TestIsNameValid(t *testing.T) {
	assert.True(t, IsNameValid("Ivan", "Petrov"))

	assert.False(t, IsNameValid("", "Petrov"))
	assert.False(t, IsNameValid("Ivan", ""))
	assert.False(t, IsNameValid("   ", "Petrov"))
	assert.False(t, IsNameValid("Ivan", "\t "))
}

func TestIsPhoneValid(t *testing.T) {
	tests := []struct {
		phone string
		valid bool
	}{
		{"79161234567", true},
		{"+79161234567", true},
		{"+7 916 123 45 67", true}, // внутренние пробелы удаляются
		{"1234567890", true},       // ровно 10 цифр
		{"123456789012", true},     // ровно 12 цифр
		{"123456789", false},       // 9 цифр - мало
		{"1234567890123", false},   // 13 цифр - много
		{"++79161234567", false},
		{"7916123456a", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsPhoneValid(tt.phone))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+79161234567", NormalizePhone("+7 916 123 45 67"))
	assert.Equal(t, "79161234567", NormalizePhone("79161234567"))
}
