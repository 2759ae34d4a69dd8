package get_slot_options

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest проверяет структурную корректность запроса
// Попадание в часы работы проверяет сам генератор: он просто возвращает
// пустые наборы для невозможных комбинаций
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return ErrInvalidDate
	}

	if req.StartHour != nil {
		if *req.StartHour < 0 || *req.StartHour > 23 {
			return fmt.Errorf("%w: %d", ErrInvalidStartHour, *req.StartHour)
		}
	}

	if req.StartMinute != nil {
		if req.StartHour == nil {
			return fmt.Errorf("%w: start minute without start hour", ErrInvalidStartMinute)
		}
		if !isMinuteStep(*req.StartMinute) {
			return fmt.Errorf("%w: %d", ErrInvalidStartMinute, *req.StartMinute)
		}
	}

	if req.EndHour != nil {
		if req.StartHour == nil {
			return fmt.Errorf("%w: end hour without start hour", ErrInvalidEndHour)
		}
		if *req.EndHour <= *req.StartHour || *req.EndHour > 24 {
			return fmt.Errorf("%w: %d", ErrInvalidEndHour, *req.EndHour)
		}
	}

	return nil
}

func isMinuteStep(minute int) bool {
	for _, m := range domain.MinuteSteps {
		if m == minute {
			return true
		}
	}
	return false
}
