package domain

import "time"

// OpeningHoursEntry per-weekday opening window, whole hours in a 24h clock.
// Invariant: Open < Close.
type OpeningHoursEntry struct {
	Open  int
	Close int
}

// DefaultOpeningHours defensive fallback for an unmapped weekday.
// Should not be hit in practice since all seven weekdays are configured.
var DefaultOpeningHours = OpeningHoursEntry{Open: 10, Close: 22}

// OpeningHoursTable maps weekdays to opening windows
type OpeningHoursTable map[time.Weekday]OpeningHoursEntry

// StandardWeek returns the configured opening hours for all seven weekdays
func StandardWeek() OpeningHoursTable {
	return OpeningHoursTable{
		time.Monday:    {Open: 10, Close: 22},
		time.Tuesday:   {Open: 10, Close: 22},
		time.Wednesday: {Open: 10, Close: 22},
		time.Thursday:  {Open: 10, Close: 22},
		time.Friday:    {Open: 10, Close: 23},
		time.Saturday:  {Open: 10, Close: 23},
		time.Sunday:    {Open: 11, Close: 21},
	}
}

// HoursFor returns the opening window for the date's weekday,
// falling back to DefaultOpeningHours if the weekday is unmapped
func (t OpeningHoursTable) HoursFor(date time.Time) OpeningHoursEntry {
	if entry, ok := t[date.Weekday()]; ok {
		return entry
	}
	return DefaultOpeningHours
}
