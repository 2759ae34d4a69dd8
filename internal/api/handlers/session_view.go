package handlers

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/service/sessions"
	"github.com/m04kA/SMC-ReservationService/internal/wizard"
)

// SessionResponse общее HTTP представление сессии мастера
// Используется всеми операциями мастера, чтобы UI всегда видел
// одинаковую форму состояния
type SessionResponse struct {
	SessionID      string    `json:"sessionId"`
	Step           string    `json:"step"`
	ContactSubStep string    `json:"contactSubStep,omitempty"`
	Terminal       bool      `json:"terminal"`
	Draft          DraftView `json:"draft"`
	CreatedAt      string    `json:"createdAt"`
	UpdatedAt      string    `json:"updatedAt"`
}

// DraftView HTTP представление черновика брони
// Производные поля (durationHours, price) уже пересчитаны сервисом
type DraftView struct {
	Venue         string `json:"venue,omitempty"`
	VenueName     string `json:"venueName,omitempty"`
	Free          bool   `json:"free"`
	People        int    `json:"people,omitempty"`
	Date          string `json:"date,omitempty"`
	StartTime     string `json:"startTime,omitempty"`
	EndTime       string `json:"endTime,omitempty"`
	DurationHours int    `json:"durationHours,omitempty"`
	Price         int64  `json:"price"`
	Name          string `json:"name,omitempty"`
	Surname       string `json:"surname,omitempty"`
	Phone         string `json:"phone,omitempty"`
	RefNumber     string `json:"refNumber,omitempty"`
}

// FromSession конвертирует сессию мастера в HTTP представление
func FromSession(session *sessions.Session) *SessionResponse {
	resp := &SessionResponse{
		SessionID: session.ID,
		Step:      session.State.Step.String(),
		Terminal:  session.State.IsTerminal(),
		Draft:     draftView(session.Draft),
		CreatedAt: session.CreatedAt.Format(time.RFC3339),
		UpdatedAt: session.UpdatedAt.Format(time.RFC3339),
	}
	if session.State.Step == wizard.StepContact {
		resp.ContactSubStep = session.State.ContactSub.String()
	}
	return resp
}

func draftView(draft domain.BookingDraft) DraftView {
	view := DraftView{
		People:        draft.People,
		DurationHours: draft.DurationHours,
		Price:         draft.Price,
		Name:          draft.Contact.Name,
		Surname:       draft.Contact.Surname,
		Phone:         draft.Contact.Phone,
		RefNumber:     draft.RefNumber,
	}

	if draft.HasVenue() {
		view.Venue = string(draft.Venue.ID)
		view.VenueName = draft.Venue.Name
		view.Free = draft.Venue.IsFree()
	}

	if !draft.Date.IsZero() {
		view.Date = draft.Date.Format(domain.DateFormat)
	}
	if !draft.Range.IsZero() {
		view.StartTime = draft.Range.Start.String()
		view.EndTime = draft.Range.End.String()
	}

	return view
}
