package domain

import "time"

// HandoffRecord is the finalized, submission-ready projection of a completed
// draft, shaped for the external payment and confirmation collaborators.
type HandoffRecord struct {
	RefNumber    string
	VenueID      VenueID
	VenueName    string
	ContactName  string
	Phone        string
	Date         time.Time
	Range        TimeRange
	People       int
	Price        int64 // whole currency units
	AmountMinor  int64 // minor units; 0 for free venues
	NeedsPayment bool
	CreatedAt    time.Time
}

// DraftRecord is the JSON blob stored in the shared draft store.
// Consumers must tolerate absent optional fields.
type DraftRecord struct {
	OrderID     string    `json:"orderId"`
	Venue       string    `json:"venue"`
	Date        string    `json:"date,omitempty"`      // YYYY-MM-DD
	StartTime   string    `json:"startTime,omitempty"` // HH:MM
	EndTime     string    `json:"endTime,omitempty"`   // HH:MM
	People      int       `json:"people,omitempty"`
	Price       int64     `json:"price,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	ContactName string    `json:"contactName,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// IsExpired returns true if the record is older than the draft TTL
// relative to now
func (r *DraftRecord) IsExpired(now time.Time) bool {
	return now.Sub(r.Timestamp) > DraftTTL
}

// BookingRecord persisted booking keyed by a unique reference number.
// Submission is idempotent on RefNumber.
type BookingRecord struct {
	ID          int64
	RefNumber   string
	Venue       VenueID
	BookingDate time.Time
	Range       TimeRange
	People      int
	Price       int64
	ContactName string
	Phone       string
	CreatedAt   time.Time
}

// EventOrder persisted order for a ticketed event, idempotent on OrderRef
type EventOrder struct {
	ID           int64
	OrderRef     string
	EventID      int64
	Tickets      int
	AmountMinor  int64
	CustomerName string
	Phone        string
	CreatedAt    time.Time
}
