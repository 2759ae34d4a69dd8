package get_slot_options

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request запрос на получение опций слотов
// StartHour/StartMinute/EndHour опциональны: без них возвращаются только
// часы начала, с ними - зависимые наборы для конца интервала
type Request struct {
	Venue       domain.VenueID
	Date        time.Time
	StartHour   *int
	StartMinute *int
	EndHour     *int
}

// Response наборы опций для пошагового выбора интервала
// Пустой StartHours означает, что на эту дату забронировать нельзя
type Response struct {
	Venue     domain.VenueID
	Date      time.Time
	OpenHour  int
	CloseHour int

	StartHours []int

	// Заполняются только при переданном startHour
	StartMinutes []int
	EndHours     []int

	// Заполняется только при переданных startHour и endHour
	EndMinutes []int
}
