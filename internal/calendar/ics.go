package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/baobabprince/no-parking-teddy/internal/fixture"
)

// GenerateICS generates an iCalendar (.ics) file for a batch of matches.
// It is the auth-free alternative to the Google Calendar sync: the output can
// be imported into any calendar application.
func GenerateICS(matches []*fixture.Match, calendarName string) string {
	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//No Parking Teddy//no-parking-teddy//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	if calendarName != "" {
		ics.WriteString(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeICS(calendarName)))
	}

	now := time.Now().UTC()
	for _, m := range matches {
		writeVEvent(&ics, m, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")

	return ics.String()
}

// writeVEvent appends a single VEVENT. Matches without a kickoff are skipped;
// a parking alert with no date helps nobody.
func writeVEvent(ics *strings.Builder, m *fixture.Match, stamp time.Time) {
	if !m.IsScheduled() {
		return
	}

	ics.WriteString("BEGIN:VEVENT\r\n")

	ics.WriteString(fmt.Sprintf("UID:%s@beitarfc.co.il\r\n", m.ID))
	ics.WriteString(fmt.Sprintf("DTSTAMP:%s\r\n", formatICSTime(stamp)))
	ics.WriteString(fmt.Sprintf("DTSTART:%s\r\n", formatICSTime(m.Kickoff)))
	ics.WriteString(fmt.Sprintf("DTEND:%s\r\n", formatICSTime(m.Kickoff.Add(GameDuration))))

	ics.WriteString(fmt.Sprintf("SUMMARY:%s\r\n", escapeICS(EventTitle(m))))
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(EventDescription)))
	ics.WriteString(fmt.Sprintf("LOCATION:%s\r\n", escapeICS(EventLocation)))

	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("SEQUENCE:0\r\n")
	ics.WriteString("TRANSP:OPAQUE\r\n")

	// Same alert as the Google sync: fire one day before kickoff.
	ics.WriteString("BEGIN:VALARM\r\n")
	ics.WriteString("ACTION:DISPLAY\r\n")
	ics.WriteString(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeICS(EventDescription)))
	ics.WriteString("TRIGGER:-P1D\r\n")
	ics.WriteString("END:VALARM\r\n")

	ics.WriteString("END:VEVENT\r\n")
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}
