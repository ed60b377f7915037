package fixture

import "strings"

// HomeAtVenue selects matches where the tracked team plays at home and the
// venue text contains venueSubstring. Input order is preserved and no
// deduplication is performed: a team hosts a given opponent at most once per
// listed fixture, so duplicates are not expected here.
func HomeAtVenue(matches []*Match, venueSubstring string) []*Match {
	selected := make([]*Match, 0, len(matches))
	for _, m := range matches {
		if m.IsHomeMatch() && m.Venue != "" && strings.Contains(m.Venue, venueSubstring) {
			selected = append(selected, m)
		}
	}
	return selected
}

// SplitScheduled partitions matches into those with a parsed kickoff and
// those without. Unscheduled matches cannot be placed on a calendar; callers
// must surface them to the operator rather than pass them to reconciliation.
func SplitScheduled(matches []*Match) (scheduled, unscheduled []*Match) {
	scheduled = make([]*Match, 0, len(matches))
	for _, m := range matches {
		if m.IsScheduled() {
			scheduled = append(scheduled, m)
		} else {
			unscheduled = append(unscheduled, m)
		}
	}
	return scheduled, unscheduled
}
