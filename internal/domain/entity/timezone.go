package entity

import (
	"time"
	_ "time/tzdata" // zone ids must resolve on hosts without a zoneinfo database
)

// DefaultTimezone is used whenever a stored zone id cannot be resolved.
const DefaultTimezone = "UTC"

// DateLayout is the wire and query format of calendar dates.
const DateLayout = "2006-01-02"

// ResolveZone maps a stored zone id to a location. Empty, "Local" and
// unknown ids fall back to UTC.
func ResolveZone(tz string) *time.Location {
	if tz == "" || tz == "Local" {
		return time.UTC
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}

	return loc
}

// IsValidTimezone reports whether tz names a loadable IANA zone.
func IsValidTimezone(tz string) bool {
	if tz == "" || tz == "Local" {
		return false
	}

	_, err := time.LoadLocation(tz)

	return err == nil
}

// NormalizeTimezone returns tz if it is valid and DefaultTimezone otherwise.
func NormalizeTimezone(tz string) string {
	if !IsValidTimezone(tz) {
		return DefaultTimezone
	}

	return tz
}

// CalendarDate drops the clock part of t, keeping the year/month/day as observed in t's location.
// The result is midnight UTC so that dates compare and persist independently of any zone.
func CalendarDate(t time.Time) time.Time {
	y, m, d := t.Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// LocalDate returns the calendar date of instant as seen in the zone tz.
func LocalDate(instant time.Time, tz string) time.Time {
	return CalendarDate(instant.In(ResolveZone(tz)))
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
