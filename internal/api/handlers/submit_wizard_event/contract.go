package submit_wizard_event

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/sessions"
)

// WizardService интерфейс сервиса сессий мастера
type WizardService interface {
	SelectVenue(id string, venueID domain.VenueID) (*sessions.Session, error)
	SetPeople(id string, people int) (*sessions.Session, error)
	SetDateTime(id string, date time.Time, rng domain.TimeRange) (*sessions.Session, error)
	SetName(id, name, surname string) (*sessions.Session, error)
	SetPhone(id, phone string) (*sessions.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
