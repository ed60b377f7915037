package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/baobabprince/no-parking-teddy/internal/fixture"
	"github.com/baobabprince/no-parking-teddy/internal/sync"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// SyncReport is the JSON shape of a sync run
type SyncReport struct {
	CheckedAt   time.Time        `json:"checked_at"`
	Result      *sync.Result     `json:"result"`
	Unscheduled []*fixture.Match `json:"unscheduled,omitempty"`
}

// WriteResult writes a reconciliation result in the specified format
func WriteResult(w io.Writer, result *sync.Result, unscheduled []*fixture.Match, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, &SyncReport{
			CheckedAt:   time.Now().UTC(),
			Result:      result,
			Unscheduled: unscheduled,
		})
	}
	return writeResultText(w, result, unscheduled)
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func writeResultText(w io.Writer, result *sync.Result, unscheduled []*fixture.Match) error {
	if result.Simulated {
		fmt.Fprintln(w, "Sync results (dry run):")
	} else {
		fmt.Fprintln(w, "Sync results:")
	}
	fmt.Fprintf(w, "  Created: %d\n", len(result.Created))
	fmt.Fprintf(w, "  Already existed: %d\n", len(result.Existing))
	fmt.Fprintf(w, "  Failed: %d\n", len(result.Failed))

	if len(result.Created) > 0 {
		fmt.Fprintln(w, "\nCreated events:")
		for _, o := range result.Created {
			fmt.Fprintf(w, "  %s (%s)\n", o.Match.Summary(), o.Match.RawDateText)
			if o.Link != "" {
				fmt.Fprintf(w, "    %s\n", o.Link)
			}
		}
	}

	if len(result.Failed) > 0 {
		fmt.Fprintln(w, "\nFailed:")
		for _, o := range result.Failed {
			fmt.Fprintf(w, "  %s: %s\n", o.Match.Summary(), o.Error)
		}
	}

	if len(unscheduled) > 0 {
		fmt.Fprintln(w, "\nSkipped (no kickoff time yet):")
		for _, m := range unscheduled {
			fmt.Fprintf(w, "  %s (%q)\n", m.Summary(), m.RawDateText)
		}
	}

	return nil
}

// FixtureList is the JSON shape of a fixtures listing
type FixtureList struct {
	CheckedAt time.Time        `json:"checked_at"`
	Fixtures  []*fixture.Match `json:"fixtures"`
	Count     int              `json:"count"`
}

// WriteFixtures writes the full fixture list in the specified format
func WriteFixtures(w io.Writer, matches []*fixture.Match, format OutputFormat) error {
	if format == FormatJSON {
		return writeJSON(w, &FixtureList{
			CheckedAt: time.Now().UTC(),
			Fixtures:  matches,
			Count:     len(matches),
		})
	}

	if len(matches) == 0 {
		fmt.Fprintln(w, "No fixtures found.")
		return nil
	}

	for _, m := range matches {
		side := "AWAY"
		if m.IsHomeMatch() {
			side = "HOME"
		}
		fmt.Fprintf(w, "%s: %s", side, m.Summary())
		if m.Venue != "" {
			fmt.Fprintf(w, " - %s", m.Venue)
		}
		if m.RawDateText != "" {
			fmt.Fprintf(w, " (%s)", m.RawDateText)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "\nTotal: %d fixtures\n", len(matches))

	return nil
}
