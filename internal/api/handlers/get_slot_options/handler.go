package get_slot_options

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getSlotOptions "github.com/m04kA/SMC-ReservationService/internal/usecase/get_slot_options"
)

const (
	msgInvalidQuery     = "некорректные параметры запроса, ожидается date=YYYY-MM-DD и целые startHour/startMinute/endHour"
	msgInvalidSelection = "некорректная комбинация выбранных часов и минут"
)

type Handler struct {
	useCase GetSlotOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/slot-options
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]

	req, err := parseQuery(venueID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /venues/{id}/slot-options - Invalid query: venue=%s, error=%v", venueID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSlotOptions.ErrInvalidDate),
			errors.Is(err, getSlotOptions.ErrInvalidStartHour),
			errors.Is(err, getSlotOptions.ErrInvalidStartMinute),
			errors.Is(err, getSlotOptions.ErrInvalidEndHour):
			h.logger.Warn("GET /venues/{id}/slot-options - Invalid selection: venue=%s, error=%v", venueID, err)
			handlers.RespondBadRequest(w, msgInvalidSelection)

		default:
			h.logger.Error("GET /venues/{id}/slot-options - Failed: venue=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
