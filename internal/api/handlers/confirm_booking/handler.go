package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	confirmBooking "github.com/m04kA/SMC-ReservationService/internal/usecase/confirm_booking"
)

const (
	msgSessionNotFound    = "сессия мастера не найдена"
	msgNotConfirmable     = "сессия не находится на шаге подтверждения"
	msgPersistenceFailure = "не удалось сохранить бронирование, попробуйте позже"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/confirm - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, confirmBooking.ErrNotConfirmable):
			h.logger.Warn("POST /wizard/{id}/confirm - Not confirmable: session_id=%s", sessionID)
			handlers.RespondConflict(w, msgNotConfirmable)

		case errors.Is(err, confirmBooking.ErrPersistenceFailure):
			h.logger.Error("POST /wizard/{id}/confirm - Persistence failure: session_id=%s, error=%v", sessionID, err)
			handlers.RespondJSON(w, http.StatusInternalServerError, SubmitErrorResponse{
				Code:    string(domain.CodePersistenceFailure),
				Message: msgPersistenceFailure,
			})

		default:
			h.logger.Error("POST /wizard/{id}/confirm - Failed to confirm: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/confirm - Confirmed: session_id=%s, ref=%s, free=%t",
		sessionID, result.RefNumber, result.Free)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
