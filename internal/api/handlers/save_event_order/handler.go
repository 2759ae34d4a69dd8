package save_event_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	saveEventOrder "github.com/m04kA/SMC-ReservationService/internal/usecase/save_event_order"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOrderRef    = "не указан reference number заказа"
	msgInvalidTickets     = "некорректное количество билетов"
	msgInvalidContact     = "некорректные контактные данные"
)

type Handler struct {
	useCase SaveEventOrderUseCase
	logger  Logger
}

func NewHandler(useCase SaveEventOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/event-orders
// Повторный сабмит с тем же orderRef отвечает 200 вместо 201: заказ уже
// сохранен, дубликат не создается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SaveEventOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /event-orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, saveEventOrder.ErrInvalidOrderRef):
			h.logger.Warn("POST /event-orders - Invalid order ref")
			handlers.RespondBadRequest(w, msgInvalidOrderRef)

		case errors.Is(err, saveEventOrder.ErrInvalidTickets):
			h.logger.Warn("POST /event-orders - Invalid tickets: ref=%s", req.OrderRef)
			handlers.RespondBadRequest(w, msgInvalidTickets)

		case errors.Is(err, saveEventOrder.ErrInvalidContact):
			h.logger.Warn("POST /event-orders - Invalid contact: ref=%s", req.OrderRef)
			handlers.RespondBadRequest(w, msgInvalidContact)

		default:
			h.logger.Error("POST /event-orders - Failed to save: ref=%s, error=%v", req.OrderRef, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	status := http.StatusCreated
	if !result.Created {
		status = http.StatusOK
	}

	h.logger.Info("POST /event-orders - Saved: ref=%s, created=%t", result.OrderRef, result.Created)
	handlers.RespondJSON(w, status, result)
}
