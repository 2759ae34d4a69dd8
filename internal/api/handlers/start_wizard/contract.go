package start_wizard

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/sessions"
)

// WizardService интерфейс сервиса сессий мастера
type WizardService interface {
	Start(preselected *domain.VenueID) *sessions.Session
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
