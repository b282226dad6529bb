package discovery

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"venue-discovery/models/venue"
)

// IsVenueOpen reports whether a venue is open at now, evaluated in now's
// location. isOpen24Hours short-circuits the lookup. Intervals are
// inclusive on both ends and do not wrap past midnight: "22:00 - 02:00"
// never matches.
func IsVenueOpen(hours venue.OpeningHours, isOpen24Hours bool, now time.Time) bool {
	if isOpen24Hours {
		return true
	}

	entry, ok := hours.ForDay(now.Weekday())
	if !ok || venue.IsClosedEntry(entry) {
		return false
	}

	open, closeAt, err := parseInterval(entry)
	if err != nil {
		return false
	}

	current := now.Hour()*60 + now.Minute()
	return current >= open && current <= closeAt
}

// parseInterval converts "HH:MM - HH:MM" into minutes since midnight.
func parseInterval(entry string) (int, int, error) {
	parts := strings.Split(entry, "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed interval %q", entry)
	}
	open, err := parseClock(parts[0])
	if err != nil {
		return 0, 0, err
	}
	closeAt, err := parseClock(parts[1])
	if err != nil {
		return 0, 0, err
	}
	return open, closeAt, nil
}

func parseClock(s string) (int, error) {
	hh, mm, found := strings.Cut(strings.TrimSpace(s), ":")
	if !found {
		return 0, fmt.Errorf("malformed time %q", s)
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, fmt.Errorf("malformed hour %q: %w", s, err)
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, fmt.Errorf("malformed minute %q: %w", s, err)
	}
	if h < 0 || h > 24 || m < 0 || m > 59 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("time out of range %q", s)
	}
	return h*60 + m, nil
}
