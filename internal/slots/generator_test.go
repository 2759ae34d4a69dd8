package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

var testHours = domain.OpeningHoursEntry{Open: 10, Close: 22}

func date(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.UTC)
}

func TestStartHourOptions_FutureDate(t *testing.T) {
	now := date(2026, time.September, 1, 12, 0)
	futureDate := date(2026, time.September, 10, 0, 0)

	options := StartHourOptions(testHours, futureDate, now)

	require.NotEmpty(t, options)
	assert.Equal(t, 10, options[0])
	assert.Equal(t, 21, options[len(options)-1]) // close-1: старт в 22:00 невозможен

	// Инвариант: open <= h < close
	for _, h := range options {
		assert.GreaterOrEqual(t, h, testHours.Open)
		assert.Less(t, h, testHours.Close)
	}
}

func TestStartHourOptions_TodayRaisesLowerBound(t *testing.T) {
	// Сценарий: сейчас 19:xx, открыто 10-22 -> нижняя граница 20, опции {20, 21}
	now := date(2026, time.September, 1, 19, 30)
	today := date(2026, time.September, 1, 0, 0)

	options := StartHourOptions(testHours, today, now)

	assert.Equal(t, []int{20, 21}, options)
}

func TestStartHourOptions_TodayBeforeOpening(t *testing.T) {
	// Рано утром нижняя граница остается равной часу открытия
	now := date(2026, time.September, 1, 7, 15)
	today := date(2026, time.September, 1, 0, 0)

	options := StartHourOptions(testHours, today, now)

	require.NotEmpty(t, options)
	assert.Equal(t, 10, options[0])
}

func TestStartHourOptions_NoSlotLeftToday(t *testing.T) {
	// В 21:05 минимальный старт 22 > close-1 -> слотов не осталось
	now := date(2026, time.September, 1, 21, 5)
	today := date(2026, time.September, 1, 0, 0)

	options := StartHourOptions(testHours, today, now)

	assert.Empty(t, options)
}

func TestStartHourOptions_TodayAfterClosing(t *testing.T) {
	// После закрытия нижняя граница уходит далеко за close-1 (в 22:30
	// минимальный старт 23 при close-1 = 21) -> пустой список, не паника
	now := date(2026, time.September, 1, 22, 30)
	today := date(2026, time.September, 1, 0, 0)

	options := StartHourOptions(testHours, today, now)

	assert.Empty(t, options)
}

func TestStartHourOptions_TodayAtMidnightWindow(t *testing.T) {
	// Запрос в 23:59 того же дня: максимальный разрыв границ
	now := date(2026, time.September, 1, 23, 59)
	today := date(2026, time.September, 1, 0, 0)

	options := StartHourOptions(testHours, today, now)

	assert.Empty(t, options)
}

func TestStartHourOptions_PastDate(t *testing.T) {
	now := date(2026, time.September, 10, 12, 0)
	pastDate := date(2026, time.September, 1, 0, 0)

	options := StartHourOptions(testHours, pastDate, now)

	assert.Empty(t, options)
}

func TestEndHourOptions_AfterStart(t *testing.T) {
	options := EndHourOptions(testHours, 20)

	assert.Equal(t, []int{21, 22}, options)

	// Инвариант: h > start, h <= close
	for _, h := range options {
		assert.Greater(t, h, 20)
		assert.LessOrEqual(t, h, testHours.Close)
	}
}

func TestEndHourOptions_StartAtLastHour(t *testing.T) {
	options := EndHourOptions(testHours, 21)

	assert.Equal(t, []int{22}, options)
}

func TestEndHourOptions_NoRoom(t *testing.T) {
	options := EndHourOptions(testHours, 22)

	assert.Empty(t, options)
}

func TestMinuteOptions_StartRegularHour(t *testing.T) {
	options := MinuteOptions(testHours, 15, true, 0, 0)

	assert.Equal(t, []int{0, 15, 30, 45}, options)
}

func TestMinuteOptions_StartAtClosingHour(t *testing.T) {
	// Начать ровно в час закрытия нельзя
	options := MinuteOptions(testHours, 22, true, 0, 0)

	assert.Empty(t, options)
}

func TestMinuteOptions_EndAtClosingHour(t *testing.T) {
	// В час закрытия допустим только конец ровно в :00
	options := MinuteOptions(testHours, 22, false, 21, 0)

	assert.Equal(t, []int{0}, options)
}

func TestMinuteOptions_EndHourEqualsStartHour(t *testing.T) {
	// Конец в тот же час, что и начало: только минуты строго больше стартовых
	options := MinuteOptions(testHours, 14, false, 14, 15)

	assert.Equal(t, []int{30, 45}, options)
}

func TestMinuteOptions_EndHourEqualsStartHour_NoRoom(t *testing.T) {
	options := MinuteOptions(testHours, 14, false, 14, 45)

	assert.Empty(t, options)
}

func TestQuarterHourSlotBeforeClosing(t *testing.T) {
	// Граничный случай: старт 21:45 при закрытии в 22:00.
	// Единственный допустимый конец - 22:00, то есть слот на 15 минут.
	// Минимального порога длительности нет - поведение сохранено намеренно.
	endHours := EndHourOptions(testHours, 21)
	require.Equal(t, []int{22}, endHours)

	minutes := MinuteOptions(testHours, 22, false, 21, 45)
	assert.Equal(t, []int{0}, minutes)
}

func TestStartHourOptions_LeadTimeIsOneHour(t *testing.T) {
	require.Equal(t, 60, domain.LeadTimeMinutes)

	now := date(2026, time.September, 1, 10, 59)
	today := date(2026, time.September, 1, 0, 0)

	options := StartHourOptions(testHours, today, now)

	require.NotEmpty(t, options)
	// 10:59 -> минимальный старт 11:00, текущий час недоступен
	assert.Equal(t, 11, options[0])
}
