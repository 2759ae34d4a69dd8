package domain

import (
	"math"
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// TimeRange a start/end pair within one day, "HH:MM" both ends.
// Invariant: Start < End, both within the selected date's opening window.
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// IsZero returns true if either end of the range is unset
func (r TimeRange) IsZero() bool {
	return r.Start.IsZero() || r.End.IsZero()
}

// IsOrdered returns true if the range ends strictly after it starts
func (r TimeRange) IsOrdered() bool {
	return r.Start.IsBefore(r.End)
}

// DurationHours returns the exact range length in hours (may be fractional)
func (r TimeRange) DurationHours() float64 {
	if r.IsZero() {
		return 0
	}
	return float64(r.End.Minutes()-r.Start.Minutes()) / 60
}

// CeilHours returns the range length rounded up to whole hours
func (r TimeRange) CeilHours() int {
	return int(math.Ceil(r.DurationHours()))
}

// Contact контактные данные гостя
type Contact struct {
	Name    string
	Surname string
	Phone   string
}

// BookingDraft is the in-progress, not-yet-submitted booking owned by the
// wizard. Price and DurationHours are always derived from the other fields
// and are never mutated independently.
type BookingDraft struct {
	Venue         Venue
	Date          time.Time
	Range         TimeRange
	People        int
	DurationHours int // derived: ceil of Range length
	Contact       Contact
	Price         int64 // derived: PricingEngine output, whole currency units
	RefNumber     string
	CreatedAt     time.Time
}

// HasVenue returns true if a venue has been selected
func (d *BookingDraft) HasVenue() bool {
	return d.Venue.ID != ""
}

// HasDateTime returns true if both date and time range are set
func (d *BookingDraft) HasDateTime() bool {
	return !d.Date.IsZero() && !d.Range.IsZero()
}
