package models

import "time"

// Slot is a bookable time interval [Start, End) for a doctor on a given day,
// exactly as returned by the upstream availability endpoint. Slots carry no
// identity beyond their time range; equality is by value.
type Slot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Valid reports whether the slot satisfies the start < end invariant.
func (s Slot) Valid() bool {
	return s.Start.Before(s.End)
}

// Equal compares two slots by value (start and end instants).
func (s Slot) Equal(other Slot) bool {
	return s.Start.Equal(other.Start) && s.End.Equal(other.End)
}

// Label derives the display label for the slot, e.g. "09:00 AM - 09:30 AM".
// The label is always derived, never stored, and rendered in UTC.
func (s Slot) Label() string {
	const layout = "03:04 PM"
	return s.Start.UTC().Format(layout) + " - " + s.End.UTC().Format(layout)
}
