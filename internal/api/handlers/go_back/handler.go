package go_back

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/sessions"
	"github.com/m04kA/SMC-ReservationService/internal/wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownStep        = "неизвестный шаг мастера"
	msgSessionNotFound    = "сессия мастера не найдена"
	msgForbiddenStep      = "переход на этот шаг недоступен"
)

type Handler struct {
	service WizardService
	logger  Logger
}

func NewHandler(service WizardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/wizard/{sessionId}/back
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req GoBackRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/back - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	target, err := parseStep(req.Step)
	if err != nil {
		h.logger.Warn("POST /wizard/{id}/back - Unknown step: session_id=%s, step=%s", sessionID, req.Step)
		handlers.RespondBadRequest(w, msgUnknownStep)
		return
	}

	session, err := h.service.GoBack(sessionID, target)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /wizard/{id}/back - Session not found: session_id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, wizard.ErrNotBackward), errors.Is(err, wizard.ErrTerminalState):
			h.logger.Warn("POST /wizard/{id}/back - Forbidden navigation: session_id=%s, step=%s", sessionID, req.Step)
			handlers.RespondConflict(w, msgForbiddenStep)

		default:
			h.logger.Error("POST /wizard/{id}/back - Failed to navigate: session_id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/{id}/back - Navigated: session_id=%s, step=%s", sessionID, session.State.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session))
}
