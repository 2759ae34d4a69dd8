package get_slot_options

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getSlotOptions "github.com/m04kA/SMC-ReservationService/internal/usecase/get_slot_options"
)

// SlotOptionsResponse HTTP response model
type SlotOptionsResponse struct {
	Venue        string `json:"venue"`
	Date         string `json:"date"`
	OpenHour     int    `json:"openHour"`
	CloseHour    int    `json:"closeHour"`
	StartHours   []int  `json:"startHours"`
	StartMinutes []int  `json:"startMinutes,omitempty"`
	EndHours     []int  `json:"endHours,omitempty"`
	EndMinutes   []int  `json:"endMinutes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlotOptions.Response) *SlotOptionsResponse {
	return &SlotOptionsResponse{
		Venue:        string(resp.Venue),
		Date:         resp.Date.Format(domain.DateFormat),
		OpenHour:     resp.OpenHour,
		CloseHour:    resp.CloseHour,
		StartHours:   resp.StartHours,
		StartMinutes: resp.StartMinutes,
		EndHours:     resp.EndHours,
		EndMinutes:   resp.EndMinutes,
	}
}

// parseQuery собирает запрос use case из query-параметров
// date обязателен, startHour/startMinute/endHour опциональны
func parseQuery(venueID string, query url.Values) (*getSlotOptions.Request, error) {
	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		return nil, err
	}

	req := &getSlotOptions.Request{
		Venue: domain.VenueID(venueID),
		Date:  date,
	}

	if req.StartHour, err = optionalInt(query, "startHour"); err != nil {
		return nil, err
	}
	if req.StartMinute, err = optionalInt(query, "startMinute"); err != nil {
		return nil, err
	}
	if req.EndHour, err = optionalInt(query, "endHour"); err != nil {
		return nil, err
	}

	return req, nil
}

func optionalInt(query url.Values, name string) (*int, error) {
	raw := query.Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &value, nil
}
