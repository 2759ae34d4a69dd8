package go_back

import (
	"errors"

	"github.com/m04kA/SMC-ReservationService/internal/wizard"
)

// GoBackRequest HTTP request model
type GoBackRequest struct {
	Step string `json:"step"`
}

var errUnknownStep = errors.New("unknown step")

// parseStep конвертирует имя шага из API в модель мастера
// Терминальные шаги намеренно не парсятся: навигация в них запрещена
func parseStep(name string) (wizard.Step, error) {
	switch name {
	case "venue_select":
		return wizard.StepVenueSelect, nil
	case "headcount":
		return wizard.StepHeadcount, nil
	case "date_time":
		return wizard.StepDateTime, nil
	case "contact":
		return wizard.StepContact, nil
	case "confirm":
		return wizard.StepConfirm, nil
	default:
		return 0, errUnknownStep
	}
}
