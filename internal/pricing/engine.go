package pricing

import (
	"math"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Price computes the reservation price in whole currency units from the
// venue's pricing schedule, the exact duration in hours and the headcount.
// Deterministic and side-effect free; recomputed on every draft mutation
// that touches venue, time range or headcount.
//
// Tiered venues (f1) keep their flat cap beyond the last tier: 3 hours and
// 8 hours both cost the cap amount. This mirrors the production tier
// schedule and is covered by tests; it is not a per-hour rate.
func Price(venue domain.Venue, durationHours float64, people int) int64 {
	if people < domain.MinPeople {
		people = domain.MinPeople
	}
	return basePrice(venue, durationHours) * int64(people)
}

// MinorUnits converts a whole-unit amount to minor units for the payment
// collaborator
func MinorUnits(amount int64) int64 {
	return amount * 100
}

func basePrice(venue domain.Venue, hours float64) int64 {
	if hours <= 0 {
		return 0
	}

	switch venue.Pricing {
	case domain.PricingTiered:
		for _, tier := range venue.Tiers {
			if hours <= tier.MaxHours {
				return tier.Amount
			}
		}
		return venue.TierCap

	case domain.PricingHourly:
		return venue.RatePerHour * int64(math.Ceil(hours))

	default:
		return 0
	}
}
