package venue

import (
	"strings"
	"time"
)

// ClosedMarker is the opening-hours value for a day the venue does not open.
const ClosedMarker = "Closed"

// OpeningHours maps a lower-case English weekday ("monday") to either
// ClosedMarker or an "HH:MM - HH:MM" interval.
type OpeningHours map[string]string

// ForDay returns the raw entry for the weekday and whether one exists.
func (h OpeningHours) ForDay(day time.Weekday) (string, bool) {
	entry, ok := h[strings.ToLower(day.String())]
	return entry, ok
}

// IsClosedEntry reports whether an entry is the closed marker.
func IsClosedEntry(entry string) bool {
	return strings.EqualFold(strings.TrimSpace(entry), ClosedMarker)
}
