package fixture

import (
	"regexp"
	"strconv"
	"time"
)

// Timezone is the civil timezone of Teddy Stadium. The tracked venue never
// changes, so the whole system runs in this single zone.
const Timezone = "Asia/Jerusalem"

// kickoffPattern matches schedule date text like "08/02/26 -> 01:59".
var kickoffPattern = regexp.MustCompile(`(\d{2})/(\d{2})/(\d{2})\s*->\s*(\d{2}):(\d{2})`)

// ParseKickoff parses schedule date text of the form "DD/MM/YY -> HH:MM" into
// a wall-clock instant in loc. Returns time.Time{} (zero value) if the text
// does not match the pattern or encodes an impossible date; it never panics.
//
// The two-digit year maps to 2000+YY. That assumption holds for the 2000-2099
// window only; the site gives no century, so behavior beyond it is undefined.
func ParseKickoff(dateText string, loc *time.Location) time.Time {
	if dateText == "" {
		return time.Time{}
	}

	m := kickoffPattern.FindStringSubmatch(dateText)
	if m == nil {
		return time.Time{}
	}

	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	year, _ := strconv.Atoi(m[3])
	hour, _ := strconv.Atoi(m[4])
	minute, _ := strconv.Atoi(m[5])

	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 {
		return time.Time{}
	}

	t := time.Date(2000+year, time.Month(month), day, hour, minute, 0, 0, loc)

	// time.Date normalizes overflow (e.g. 31/02 becomes March); treat any
	// normalization as a failed parse.
	if t.Day() != day || t.Month() != time.Month(month) {
		return time.Time{}
	}

	return t
}

// Location loads the stadium timezone.
func Location() (*time.Location, error) {
	return time.LoadLocation(Timezone)
}
