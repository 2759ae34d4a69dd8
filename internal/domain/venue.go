package domain

// VenueID identifies a bookable venue category
type VenueID string

const (
	VenueF1         VenueID = "f1"
	VenueVR         VenueID = "vr"
	VenueComputers  VenueID = "computers"
	VenueBoardGames VenueID = "boardgames"
	VenueLounge     VenueID = "lounge"
)

// PricingKind defines how a venue is priced
type PricingKind int

const (
	// PricingFree venue costs nothing regardless of duration and headcount
	PricingFree PricingKind = iota
	// PricingTiered fixed tier schedule keyed by duration, flat beyond the last tier
	PricingTiered
	// PricingHourly linear rate per started hour
	PricingHourly
)

// String возвращает имя схемы ценообразования для логов и API
func (k PricingKind) String() string {
	switch k {
	case PricingTiered:
		return "tiered"
	case PricingHourly:
		return "hourly"
	default:
		return "free"
	}
}

// PriceTier one step of a tiered price schedule:
// durations up to MaxHours (inclusive) cost Amount
type PriceTier struct {
	MaxHours float64
	Amount   int64
}

// Venue describes a bookable venue with its pricing schedule and
// payment requirement. The catalog below is the closed set of paid
// venues; any other identifier is treated as a free venue.
type Venue struct {
	ID           VenueID
	Name         string
	NeedsPayment bool
	Pricing      PricingKind
	RatePerHour  int64       // for PricingHourly
	Tiers        []PriceTier // for PricingTiered, ordered by MaxHours
	TierCap      int64       // flat amount beyond the last tier
}

// IsFree returns true if the venue requires no payment
func (v Venue) IsFree() bool {
	return !v.NeedsPayment
}

// catalog закрытый каталог площадок
// Платные площадки перечислены явно; любой другой ID считается бесплатной площадкой
var catalog = map[VenueID]Venue{
	VenueF1: {
		ID:           VenueF1,
		Name:         "F1 Racing Simulator",
		NeedsPayment: true,
		Pricing:      PricingTiered,
		Tiers: []PriceTier{
			{MaxHours: 1, Amount: 100},
			{MaxHours: 2, Amount: 200},
		},
		TierCap: 300,
	},
	VenueVR: {
		ID:           VenueVR,
		Name:         "VR Arena",
		NeedsPayment: true,
		Pricing:      PricingHourly,
		RatePerHour:  50,
	},
	VenueComputers: {
		ID:           VenueComputers,
		Name:         "Gaming Computers",
		NeedsPayment: true,
		Pricing:      PricingHourly,
		RatePerHour:  30,
	},
	VenueBoardGames: {
		ID:      VenueBoardGames,
		Name:    "Board Games Room",
		Pricing: PricingFree,
	},
	VenueLounge: {
		ID:      VenueLounge,
		Name:    "Lounge Zone",
		Pricing: PricingFree,
	},
}

// VenueByID returns the venue for the given identifier.
// Unknown identifiers resolve to a free venue carrying that identifier,
// so new free venues do not require catalog changes.
func VenueByID(id VenueID) Venue {
	if v, ok := catalog[id]; ok {
		return v
	}
	return Venue{ID: id, Name: string(id), Pricing: PricingFree}
}

// IsKnownVenue returns true if the identifier is present in the catalog
func IsKnownVenue(id VenueID) bool {
	_, ok := catalog[id]
	return ok
}

// Venues returns all catalog venues (for listing in the wizard)
func Venues() []Venue {
	result := make([]Venue, 0, len(catalog))
	for _, id := range []VenueID{VenueF1, VenueVR, VenueComputers, VenueBoardGames, VenueLounge} {
		result = append(result, catalog[id])
	}
	return result
}
