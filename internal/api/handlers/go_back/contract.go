package go_back

import (
	"github.com/m04kA/SMC-ReservationService/internal/service/sessions"
	"github.com/m04kA/SMC-ReservationService/internal/wizard"
)

// WizardService интерфейс сервиса сессий мастера
type WizardService interface {
	GoBack(id string, target wizard.Step) (*sessions.Session, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
