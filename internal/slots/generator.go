package slots

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Option sets are regenerated on every call rather than cached: the input
// space is at most 24 hours x 4 minute steps, and purity keeps the
// generator trivially correct under any mutation order.

// StartHourOptions returns the hours a reservation may legally start at on
// the given date. The lower bound is the opening hour; for today it is
// raised to now+lead time. The upper bound is close-1, since a start at
// closing time leaves no room for a positive-duration slot. Returns an
// empty slice when no bookable hour remains.
func StartHourOptions(hours domain.OpeningHoursEntry, date, now time.Time) []int {
	if isDateInPast(date, now) {
		return []int{}
	}

	lower := hours.Open
	if isSameDay(date, now) {
		earliest := now.Hour() + domain.LeadTimeMinutes/60
		if earliest > lower {
			lower = earliest
		}
	}

	upper := hours.Close - 1

	// Поздно вечером нижняя граница уходит за close-1: слотов не осталось
	if lower > upper {
		return []int{}
	}

	options := make([]int, 0, upper-lower+1)
	for h := lower; h <= upper; h++ {
		options = append(options, h)
	}
	return options
}

// EndHourOptions returns the hours a reservation starting at startHour may
// end at: strictly greater than startHour and at most the closing hour.
// An empty result means no valid booking exists at this start time; the
// caller must not fabricate a range from it.
func EndHourOptions(hours domain.OpeningHoursEntry, startHour int) []int {
	options := make([]int, 0)
	for h := startHour + 1; h <= hours.Close; h++ {
		options = append(options, h)
	}
	return options
}

// MinuteOptions returns the subset of {0,15,30,45} offerable for the given
// hour. For a start time the closing hour itself is never offerable. For an
// end time the closing hour admits only :00, and when the end hour equals
// the start hour only minutes strictly after the start minute are offered.
func MinuteOptions(hours domain.OpeningHoursEntry, hour int, isStart bool, startHour, startMinute int) []int {
	if isStart {
		if hour >= hours.Close {
			return []int{}
		}
		return allMinuteSteps()
	}

	if hour == hours.Close {
		return []int{0}
	}

	if hour == startHour {
		options := make([]int, 0, len(domain.MinuteSteps))
		for _, m := range domain.MinuteSteps {
			if m > startMinute {
				options = append(options, m)
			}
		}
		return options
	}

	return allMinuteSteps()
}

func allMinuteSteps() []int {
	options := make([]int, len(domain.MinuteSteps))
	copy(options, domain.MinuteSteps)
	return options
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
