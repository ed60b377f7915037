package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/baobabprince/no-parking-teddy/internal/fixture"
)

func scheduledMatch(t *testing.T, away string, day int) *fixture.Match {
	t.Helper()
	kickoff := time.Date(2026, time.February, day, 20, 0, 0, 0, time.UTC)
	m := fixture.NewMatch(fixture.TrackedTeam, away, "אצטדיון טדי",
		"08/02/26 -> 20:00", "", kickoff)
	if m == nil {
		t.Fatal("unexpected nil match")
	}
	return m
}

func TestGenerateICS(t *testing.T) {
	m := scheduledMatch(t, "מכבי תל אביב", 8)

	ics := GenerateICS([]*fixture.Match{m}, "Teddy Games")

	// Check required ICS fields
	requiredFields := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//No Parking Teddy//no-parking-teddy//EN",
		"X-WR-CALNAME:Teddy Games",
		"BEGIN:VEVENT",
		"UID:" + m.ID + "@beitarfc.co.il",
		"DTSTAMP:",
		"DTSTART:20260208T200000Z",
		"DTEND:20260208T223000Z",
		"SUMMARY:",
		"LOCATION:",
		"BEGIN:VALARM",
		"TRIGGER:-P1D",
		"END:VALARM",
		"END:VEVENT",
		"END:VCALENDAR",
	}

	for _, field := range requiredFields {
		if !strings.Contains(ics, field) {
			t.Errorf("ICS missing required field: %s", field)
		}
	}

	// Check that lines end with \r\n
	if !strings.Contains(ics, "\r\n") {
		t.Error("ICS should use \\r\\n line endings")
	}

	// Location contains the stadium, with the comma escaped
	if !strings.Contains(ics, "LOCATION:אצטדיון טדי\\, ירושלים") {
		t.Error("LOCATION should carry the escaped stadium address")
	}
}

func TestGenerateICSSkipsUnscheduled(t *testing.T) {
	scheduled := scheduledMatch(t, "מכבי תל אביב", 8)
	unscheduled := fixture.NewMatch(fixture.TrackedTeam, "מכבי חיפה", "אצטדיון טדי", "", "", time.Time{})
	if unscheduled == nil {
		t.Fatal("unexpected nil match")
	}

	ics := GenerateICS([]*fixture.Match{scheduled, unscheduled}, "")

	if got := strings.Count(ics, "BEGIN:VEVENT"); got != 1 {
		t.Errorf("expected 1 VEVENT, got %d", got)
	}
	if strings.Contains(ics, unscheduled.ID) {
		t.Error("unscheduled match should not appear in the ICS output")
	}
}

func TestGenerateICSEmpty(t *testing.T) {
	ics := GenerateICS(nil, "Empty")

	if !strings.Contains(ics, "BEGIN:VCALENDAR") || !strings.Contains(ics, "END:VCALENDAR") {
		t.Error("empty calendar should still be a valid VCALENDAR")
	}
	if strings.Contains(ics, "BEGIN:VEVENT") {
		t.Error("empty calendar should contain no events")
	}
}

func TestEscapeICS(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a,b", `a\,b`},
		{"a;b", `a\;b`},
		{"a\nb", `a\nb`},
		{`a\b`, `a\\b`},
	}

	for _, tt := range tests {
		if got := escapeICS(tt.in); got != tt.want {
			t.Errorf("escapeICS(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEventTitle(t *testing.T) {
	m := scheduledMatch(t, "מכבי תל אביב", 8)

	title := EventTitle(m)

	// The tracked team must always be present so day-window searches find
	// the event again; the away team is the duplicate-detection key.
	if !strings.Contains(title, fixture.TrackedTeam) {
		t.Errorf("title %q should contain the tracked team", title)
	}
	if !strings.Contains(title, m.Away) {
		t.Errorf("title %q should contain the away team", title)
	}
}
