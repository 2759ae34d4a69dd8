package validation

import (
	"regexp"
	"strings"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// phonePattern опциональный ведущий "+" и 10-12 цифр
var phonePattern = regexp.MustCompile(`^\+?\d{10,12}$`)

// IsDateTimeValid requires a date, both ends of the range and End > Start
func IsDateTimeValid(date time.Time, rng domain.TimeRange) bool {
	return !date.IsZero() && !rng.IsZero() && rng.IsOrdered()
}

// IsWithinOpeningHours returns true if the range lies entirely within the
// opening window and is properly ordered
func IsWithinOpeningHours(hours domain.OpeningHoursEntry, rng domain.TimeRange) bool {
	return OpeningHoursViolation(hours, rng) == ""
}

// OpeningHoursViolation maps an illegal range to its precise error code,
// or "" when the range is legal. Ordering problems report as
// CodeInvalidDateTime so the UI highlights the range, not the window.
func OpeningHoursViolation(hours domain.OpeningHoursEntry, rng domain.TimeRange) domain.ErrorCode {
	if rng.IsZero() || !rng.IsOrdered() {
		return domain.CodeInvalidDateTime
	}
	if rng.Start.Minutes() < hours.Open*60 {
		return domain.CodeStartBeforeOpening
	}
	if rng.End.Minutes() > hours.Close*60 {
		return domain.CodeEndAfterClosing
	}
	return ""
}

// IsNameValid requires both name and surname non-empty after trimming
func IsNameValid(name, surname string) bool {
	return strings.TrimSpace(name) != "" && strings.TrimSpace(surname) != ""
}

// IsPhoneValid strips interior whitespace and matches an optional leading
// "+" followed by 10-12 digits
func IsPhoneValid(phone string) bool {
	stripped := strings.Join(strings.Fields(phone), "")
	return phonePattern.MatchString(stripped)
}

// NormalizePhone возвращает телефон без пробельных символов
func NormalizePhone(phone string) string {
	return strings.Join(strings.Fields(phone), "")
}
