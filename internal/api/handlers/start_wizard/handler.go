package start_wizard

import (
	"io"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

const msgInvalidRequestBody = "некорректное тело запроса"

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

// Handle POST /api/v1/wizard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartWizardRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && err != io.EOF {
		h.logger.Warn("POST /wizard - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var preselected *domain.VenueID
	if req.Venue != nil && *req.Venue != "" {
		venueID := domain.VenueID(*req.Venue)
		preselected = &venueID
	}

	session := h.service.Start(preselected)

	h.logger.Info("POST /wizard - Session started: session_id=%s, step=%s", session.ID, session.State.Step)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSession(session))
}
