package scraper

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/baobabprince/no-parking-teddy/internal/fixture"
)

func testScraper(t *testing.T) *Scraper {
	t.Helper()
	loc, err := fixture.Location()
	if err != nil {
		t.Fatalf("loading timezone: %v", err)
	}
	return New("", loc)
}

func TestParseMatches(t *testing.T) {
	// Load test fixture
	data, err := os.ReadFile("../../testdata/fixtures/sample_schedule.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	s := testScraper(t)
	matches, err := s.parseMatches(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("parseMatches failed: %v", err)
	}

	// 6 game_list_item divs: one has no teams_names, one has an empty away
	// team; both are discarded.
	if len(matches) != 4 {
		t.Fatalf("expected 4 matches, got %d", len(matches))
	}

	first := matches[0]
	if first.Home != `בית"ר ירושלים` {
		t.Errorf("home = %q", first.Home)
	}
	if first.Away != "מכבי תל אביב" {
		t.Errorf("away = %q", first.Away)
	}
	if first.Venue != "אצטדיון טדי" {
		t.Errorf("venue = %q", first.Venue)
	}
	if first.Round != "מחזור 21" {
		t.Errorf("round = %q", first.Round)
	}
	if first.RawDateText != "08/02/26 -> 01:59" {
		t.Errorf("raw date text = %q", first.RawDateText)
	}
	if !first.IsHomeMatch() {
		t.Error("first match should be a home match")
	}
	if first.Kickoff.Year() != 2026 || first.Kickoff.Month() != time.February ||
		first.Kickoff.Day() != 8 || first.Kickoff.Hour() != 1 || first.Kickoff.Minute() != 59 {
		t.Errorf("kickoff = %v", first.Kickoff)
	}

	// Away game at Sami Ofer
	if matches[1].IsHomeMatch() {
		t.Error("second match should be an away match")
	}

	// Date not announced yet: match kept, kickoff zero
	tbd := matches[2]
	if tbd.IsScheduled() {
		t.Errorf("match with unannounced date should be unscheduled, kickoff = %v", tbd.Kickoff)
	}
	if !strings.Contains(tbd.Venue, "טדי") {
		t.Errorf("venue = %q should contain the stadium name", tbd.Venue)
	}

	// Entry without game_info: optional fields empty, match kept
	bare := matches[3]
	if bare.Venue != "" || bare.RawDateText != "" || bare.Round != "" {
		t.Errorf("bare entry should have empty optional fields: %+v", bare)
	}

	// Every parsed match has an ID
	for _, m := range matches {
		if m.ID == "" {
			t.Error("match ID should not be empty")
		}
	}
}

func TestParseMatchesEmptyDocument(t *testing.T) {
	s := testScraper(t)
	matches, err := s.parseMatches(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("parseMatches failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("expected 0 matches, got %d", len(matches))
	}
}

func TestParseMatchesFilterPipeline(t *testing.T) {
	data, err := os.ReadFile("../../testdata/fixtures/sample_schedule.html")
	if err != nil {
		t.Fatalf("failed to load test fixture: %v", err)
	}

	s := testScraper(t)
	matches, err := s.parseMatches(strings.NewReader(string(data)))
	if err != nil {
		t.Fatalf("parseMatches failed: %v", err)
	}

	teddy := fixture.HomeAtVenue(matches, fixture.TrackedVenue)
	if len(teddy) != 2 {
		t.Fatalf("expected 2 home matches at Teddy, got %d", len(teddy))
	}

	scheduled, unscheduled := fixture.SplitScheduled(teddy)
	if len(scheduled) != 1 {
		t.Errorf("expected 1 scheduled match, got %d", len(scheduled))
	}
	if len(unscheduled) != 1 {
		t.Errorf("expected 1 unscheduled match, got %d", len(unscheduled))
	}
}
