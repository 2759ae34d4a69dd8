package resume_wizard

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingOrderRef    = "не указан reference number заказа"
	msgDraftNotFound      = "черновик бронирования не найден"
	msgDraftExpired       = "черновик бронирования устарел, начните заново"
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

// Handle POST /api/v1/wizard/resume
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ResumeWizardRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/resume - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.OrderRef == "" {
		h.logger.Warn("POST /wizard/resume - Missing order ref")
		handlers.RespondBadRequest(w, msgMissingOrderRef)
		return
	}

	session, err := h.service.Resume(r.Context(), req.OrderRef)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrDraftNotFound):
			h.logger.Warn("POST /wizard/resume - Draft not found: order_ref=%s", req.OrderRef)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, sessions.ErrDraftExpired):
			// Просроченный черновик уже очищен, мастер начинается заново
			fresh := h.service.Start(nil)
			h.logger.Warn("POST /wizard/resume - Draft expired: order_ref=%s, new session_id=%s",
				req.OrderRef, fresh.ID)
			handlers.RespondJSON(w, http.StatusGone, ExpiredDraftResponse{
				Code:    string(domain.CodeExpiredDraft),
				Message: msgDraftExpired,
				Session: handlers.FromSession(fresh),
			})

		default:
			h.logger.Error("POST /wizard/resume - Failed to resume: order_ref=%s, error=%v", req.OrderRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /wizard/resume - Resumed: order_ref=%s, session_id=%s", req.OrderRef, session.ID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session))
}
