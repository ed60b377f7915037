package fixture

import (
	"crypto/sha1"
	"fmt"
	"strings"
	"time"
)

// TrackedTeam is the canonical club name as it appears on beitarfc.co.il.
const TrackedTeam = `בית"ר ירושלים`

// TrackedVenue is the substring that identifies Teddy Stadium in venue text.
// Substring match, not equality: the site decorates the stadium name with
// sponsor suffixes that change between seasons.
const TrackedVenue = "טדי"

// Match represents one fixture scraped from the club schedule.
type Match struct {
	ID          string    `json:"id"`
	Home        string    `json:"home"`
	Away        string    `json:"away"`
	Venue       string    `json:"venue,omitempty"`
	RawDateText string    `json:"raw_date_text,omitempty"`
	Kickoff     time.Time `json:"kickoff,omitempty"`
	Round       string    `json:"round,omitempty"`
	FirstSeen   time.Time `json:"first_seen"`
}

// GenerateID creates a deterministic ID for a match based on stable fields
func GenerateID(home, away, rawDateText string) string {
	h := sha1.New()
	h.Write([]byte(home + "|" + away + "|" + rawDateText))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// NewMatch creates a Match with ID and FirstSeen populated. Returns nil when
// either team name is empty: a fixture without two identified teams cannot be
// reconciled or displayed meaningfully.
func NewMatch(home, away, venue, rawDateText, round string, kickoff time.Time) *Match {
	home = strings.TrimSpace(home)
	away = strings.TrimSpace(away)
	if home == "" || away == "" {
		return nil
	}

	return &Match{
		ID:          GenerateID(home, away, rawDateText),
		Home:        home,
		Away:        away,
		Venue:       strings.TrimSpace(venue),
		RawDateText: rawDateText,
		Kickoff:     kickoff,
		Round:       strings.TrimSpace(round),
		FirstSeen:   time.Now().UTC(),
	}
}

// IsHomeMatch reports whether the tracked team is the home side. Derived from
// Home on every call so it can never diverge from the team names.
func (m *Match) IsHomeMatch() bool {
	return strings.Contains(m.Home, TrackedTeam)
}

// IsScheduled reports whether the match has a parsed kickoff time. Matches
// without one can still be listed and classified by venue but cannot be
// placed on a calendar.
func (m *Match) IsScheduled() bool {
	return !m.Kickoff.IsZero()
}

// Summary returns the "home vs away" line used in event titles and reports.
func (m *Match) Summary() string {
	return fmt.Sprintf("%s vs %s", m.Home, m.Away)
}
