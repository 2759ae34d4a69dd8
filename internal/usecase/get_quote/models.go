package get_quote

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Request запрос расчета стоимости
type Request struct {
	Venue  domain.VenueID
	Hours  float64
	People int
}

// Response расчет стоимости без побочных эффектов
type Response struct {
	Venue       domain.VenueID
	VenueName   string
	Pricing     domain.PricingKind
	Hours       float64
	BilledHours int
	People      int
	Price       int64
	AmountMinor int64
	Free        bool
}
