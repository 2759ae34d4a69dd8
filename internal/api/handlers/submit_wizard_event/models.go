package submit_wizard_event

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Имена событий мастера в API
const (
	EventSelectVenue = "selectVenue"
	EventSetPeople   = "setPeople"
	EventSetDateTime = "setDateTime"
	EventSetName     = "setName"
	EventSetPhone    = "setPhone"
)

// EventRequest HTTP request model
// Event определяет, какие из опциональных полей обязательны
type EventRequest struct {
	Event string `json:"event"`

	// selectVenue
	Venue *string `json:"venue,omitempty"`

	// setPeople
	People *int `json:"people,omitempty"`

	// setDateTime
	Date      *string `json:"date,omitempty"`      // YYYY-MM-DD
	StartTime *string `json:"startTime,omitempty"` // HH:MM
	EndTime   *string `json:"endTime,omitempty"`   // HH:MM

	// setName
	Name    *string `json:"name,omitempty"`
	Surname *string `json:"surname,omitempty"`

	// setPhone
	Phone *string `json:"phone,omitempty"`
}

// ValidationErrorResponse ошибка валидации шага с машинным кодом
// UI локализует сообщение по коду самостоятельно
type ValidationErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var errMissingField = errors.New("missing required field")

// ToDateTime парсит поля события setDateTime
func (r *EventRequest) ToDateTime() (time.Time, domain.TimeRange, error) {
	if r.Date == nil || r.StartTime == nil || r.EndTime == nil {
		return time.Time{}, domain.TimeRange{}, errMissingField
	}

	date, err := time.Parse(domain.DateFormat, *r.Date)
	if err != nil {
		return time.Time{}, domain.TimeRange{}, err
	}

	start, err := types.NewTimeStringFromString(*r.StartTime)
	if err != nil {
		return time.Time{}, domain.TimeRange{}, err
	}

	end, err := types.NewTimeStringFromString(*r.EndTime)
	if err != nil {
		return time.Time{}, domain.TimeRange{}, err
	}

	return date, domain.TimeRange{Start: start, End: end}, nil
}
