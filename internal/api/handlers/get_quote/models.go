package get_quote

import (
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getQuote "github.com/m04kA/SMC-ReservationService/internal/usecase/get_quote"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Venue       string  `json:"venue"`
	VenueName   string  `json:"venueName"`
	Pricing     string  `json:"pricing"`
	Hours       float64 `json:"hours"`
	BilledHours int     `json:"billedHours"`
	People      int     `json:"people"`
	Price       int64   `json:"price"`
	AmountMinor int64   `json:"amountMinor"`
	Free        bool    `json:"free"`
}

// parseQuery собирает запрос use case из query-параметров
func parseQuery(venueID string, query url.Values) (*getQuote.Request, error) {
	hours, err := strconv.ParseFloat(query.Get("hours"), 64)
	if err != nil {
		return nil, err
	}

	people, err := strconv.Atoi(query.Get("people"))
	if err != nil {
		return nil, err
	}

	return &getQuote.Request{
		Venue:  domain.VenueID(venueID),
		Hours:  hours,
		People: people,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		Venue:       string(resp.Venue),
		VenueName:   resp.VenueName,
		Pricing:     resp.Pricing.String(),
		Hours:       resp.Hours,
		BilledHours: resp.BilledHours,
		People:      resp.People,
		Price:       resp.Price,
		AmountMinor: resp.AmountMinor,
		Free:        resp.Free,
	}
}
