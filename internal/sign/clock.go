package sign

import (
	"fmt"
	"regexp"
	"time"
)

// DefaultTimezone is the civil timezone every wall-clock string refers to.
const DefaultTimezone = "America/Chicago"

var clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ParseClock parses a strict "HH:MM" wall-clock string. Anything else is
// inert: displayed as-is elsewhere, never used for arithmetic.
func ParseClock(s string) (hour, minute int, ok bool) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	// pattern guarantees two-digit numerics
	hour = int(m[1][0]-'0')*10 + int(m[1][1]-'0')
	minute = int(m[2][0]-'0')*10 + int(m[2][1]-'0')
	return hour, minute, true
}

// ClockOn maps a "HH:MM" string onto day's date in day's location.
func ClockOn(s string, day time.Time) (time.Time, bool) {
	h, m, ok := ParseClock(s)
	if !ok {
		return time.Time{}, false
	}
	y, mo, d := day.Date()
	return time.Date(y, mo, d, h, m, 0, 0, day.Location()), true
}

// FormatCountdown renders a duration as "HHh MMm SSs", zero padded.
// Lookahead never exceeds two days so no day component is needed.
func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)
	return fmt.Sprintf("%02dh %02dm %02ds", h, m, s)
}
