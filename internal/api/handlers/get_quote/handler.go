package get_quote

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getQuote "github.com/m04kA/SMC-ReservationService/internal/usecase/get_quote"
)

const (
	msgInvalidQuery  = "некорректные параметры запроса, ожидаются числовые hours и people"
	msgInvalidHours  = "некорректная длительность"
	msgInvalidPeople = "некорректное количество гостей"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/venues/{venueId}/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)["venueId"]

	req, err := parseQuery(venueID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /venues/{id}/quote - Invalid query: venue=%s, error=%v", venueID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrInvalidHours):
			h.logger.Warn("GET /venues/{id}/quote - Invalid hours: venue=%s", venueID)
			handlers.RespondBadRequest(w, msgInvalidHours)

		case errors.Is(err, getQuote.ErrInvalidPeople):
			h.logger.Warn("GET /venues/{id}/quote - Invalid people: venue=%s", venueID)
			handlers.RespondBadRequest(w, msgInvalidPeople)

		default:
			h.logger.Error("GET /venues/{id}/quote - Failed: venue=%s, error=%v", venueID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
