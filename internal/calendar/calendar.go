// Package calendar talks to the operator's calendar.
//
// The package defines the Event value handed back to reconciliation, the
// shared event-body constants (title, location, advisory text, duration), a
// Google Calendar implementation of the sync port, and an iCalendar exporter
// for use without Google credentials.
package calendar

import (
	"fmt"
	"time"

	"github.com/baobabprince/no-parking-teddy/internal/fixture"
)

const (
	// GameDuration is the fixed slot blocked per match. Games run about two
	// and a half hours including stoppage time.
	GameDuration = 2*time.Hour + 30*time.Minute

	// ReminderLead is how long before kickoff the event reminder fires.
	ReminderLead = 24 * time.Hour

	// EventLocation is the fixed venue line on every created event.
	EventLocation = "אצטדיון טדי, ירושלים"

	// EventDescription is the operator-facing advisory placed in the event body.
	EventDescription = "⚠️ אין חניה באזור טדי - הזז את הרכב!"
)

// Event is this system's view of a calendar event: an opaque ID plus the
// fields duplicate detection and reporting need. Existing events are never
// mutated, only read and created.
type Event struct {
	ID    string    `json:"id"`
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Link  string    `json:"link,omitempty"`
}

// EventTitle builds the title for a match event. The tracked team name is
// always present so day-window searches can find it again.
func EventTitle(m *fixture.Match) string {
	return fmt.Sprintf("⚽ %s vs %s", fixture.TrackedTeam, m.Away)
}
