package resume_wizard

import (
	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

// ResumeWizardRequest HTTP request model
type ResumeWizardRequest struct {
	OrderRef string `json:"orderRef"`
}

// ExpiredDraftResponse ответ на попытку восстановления просроченного черновика
// Вместе с кодом ошибки возвращается свежая сессия: мастер начинается заново
type ExpiredDraftResponse struct {
	Code    string                    `json:"code"`
	Message string                    `json:"message"`
	Session *handlers.SessionResponse `json:"session"`
}
