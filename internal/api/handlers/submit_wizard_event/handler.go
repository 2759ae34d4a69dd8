package submit_wizard_event

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/sessions"
	"github.com/m04kA/SMC-ReservationService/internal/wizard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownEvent       = "неизвестное событие мастера"
	msgMissingEventFields = "отсутствуют обязательные поля события"
	msgInvalidDateFormat  = "некорректный формат даты или времени"
	msgInvalidPeople      = "некорректное количество гостей"
	msgSessionNotFound    = "сессия мастера не найдена"
	msgIllegalTransition  = "событие недопустимо на текущем шаге мастера"
)

// validationMessages локализованные сообщения по кодам валидации
var validationMessages = map[domain.ErrorCode]string{
	domain.CodeInvalidDateTime:    "некорректные дата или время",
	domain.CodeStartBeforeOpening: "время начала раньше времени открытия",
	domain.CodeEndAfterClosing:    "время окончания позже времени закрытия",
	domain.CodeInvalidContact:     "некорректные контактные данные",
}

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

// Handle POST /api/v1/wizard/{sessionId}/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req EventRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/{id}/events - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.dispatch(sessionID, &req)
	if err != nil {
		h.respondError(w, sessionID, req.Event, err)
		return
	}

	h.logger.Info("POST /wizard/{id}/events - Event applied: session_id=%s, event=%s, step=%s",
		sessionID, req.Event, session.State.Step)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromSession(session))
}

// dispatch направляет событие в соответствующий метод сервиса
func (h *Handler) dispatch(sessionID string, req *EventRequest) (*sessions.Session, error) {
	switch req.Event {
	case EventSelectVenue:
		if req.Venue == nil {
			return nil, errMissingField
		}
		return h.service.SelectVenue(sessionID, domain.VenueID(*req.Venue))

	case EventSetPeople:
		if req.People == nil {
			return nil, errMissingField
		}
		return h.service.SetPeople(sessionID, *req.People)

	case EventSetDateTime:
		date, rng, err := req.ToDateTime()
		if err != nil {
			return nil, err
		}
		return h.service.SetDateTime(sessionID, date, rng)

	case EventSetName:
		if req.Name == nil {
			return nil, errMissingField
		}
		surname := ""
		if req.Surname != nil {
			surname = *req.Surname
		}
		return h.service.SetName(sessionID, *req.Name, surname)

	case EventSetPhone:
		if req.Phone == nil {
			return nil, errMissingField
		}
		return h.service.SetPhone(sessionID, *req.Phone)

	default:
		return nil, errUnknownEvent
	}
}

var errUnknownEvent = errors.New("unknown wizard event")

func (h *Handler) respondError(w http.ResponseWriter, sessionID, event string, err error) {
	var vErr *sessions.ValidationError

	switch {
	case errors.Is(err, errUnknownEvent):
		h.logger.Warn("POST /wizard/{id}/events - Unknown event: session_id=%s, event=%s", sessionID, event)
		handlers.RespondBadRequest(w, msgUnknownEvent)

	case errors.Is(err, errMissingField):
		h.logger.Warn("POST /wizard/{id}/events - Missing fields: session_id=%s, event=%s", sessionID, event)
		handlers.RespondBadRequest(w, msgMissingEventFields)

	case errors.As(err, &vErr):
		h.logger.Warn("POST /wizard/{id}/events - Validation failed: session_id=%s, event=%s, code=%s",
			sessionID, event, vErr.Code)
		handlers.RespondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Code:    string(vErr.Code),
			Message: validationMessages[vErr.Code],
		})

	case errors.Is(err, sessions.ErrInvalidPeople):
		h.logger.Warn("POST /wizard/{id}/events - Invalid people: session_id=%s", sessionID)
		handlers.RespondBadRequest(w, msgInvalidPeople)

	case errors.Is(err, sessions.ErrSessionNotFound):
		h.logger.Warn("POST /wizard/{id}/events - Session not found: session_id=%s", sessionID)
		handlers.RespondNotFound(w, msgSessionNotFound)

	case errors.Is(err, wizard.ErrIllegalTransition), errors.Is(err, wizard.ErrTerminalState):
		h.logger.Warn("POST /wizard/{id}/events - Illegal transition: session_id=%s, event=%s", sessionID, event)
		handlers.RespondConflict(w, msgIllegalTransition)

	default:
		// Ошибки парсинга даты и времени тоже приходят сюда
		if event == EventSetDateTime {
			h.logger.Warn("POST /wizard/{id}/events - Failed to parse date/time: session_id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidDateFormat)
			return
		}
		h.logger.Error("POST /wizard/{id}/events - Failed to apply event: session_id=%s, event=%s, error=%v",
			sessionID, event, err)
		handlers.RespondInternalError(w)
	}
}
