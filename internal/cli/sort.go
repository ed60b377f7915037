package cli

import (
	"sort"
	"strings"

	"github.com/baobabprince/no-parking-teddy/internal/fixture"
)

// SortOrder represents the available sorting options for fixture listings
type SortOrder string

const (
	SortByDate     SortOrder = "date"
	SortByOpponent SortOrder = "opponent"
	SortByVenue    SortOrder = "venue"
)

// sortMatches sorts a slice of fixtures based on the specified sort order
func sortMatches(matches []*fixture.Match, sortOrder SortOrder) {
	switch sortOrder {
	case SortByDate:
		sort.Slice(matches, func(i, j int) bool {
			return compareByKickoff(matches[i], matches[j])
		})
	case SortByOpponent:
		sort.Slice(matches, func(i, j int) bool {
			if matches[i].Away != matches[j].Away {
				return matches[i].Away < matches[j].Away
			}
			// If opponents are equal, sort by date
			return compareByKickoff(matches[i], matches[j])
		})
	case SortByVenue:
		sort.Slice(matches, func(i, j int) bool {
			if matches[i].Venue != matches[j].Venue {
				return strings.ToLower(matches[i].Venue) < strings.ToLower(matches[j].Venue)
			}
			// If venues are equal, sort by date
			return compareByKickoff(matches[i], matches[j])
		})
	}
}

// compareByKickoff compares two fixtures by kickoff time
// Returns true if fixture i should come before fixture j
func compareByKickoff(i, j *fixture.Match) bool {
	// If both kickoffs are known, compare them
	if i.IsScheduled() && j.IsScheduled() {
		return i.Kickoff.Before(j.Kickoff)
	}

	// If only one kickoff is known, put the scheduled one first
	if i.IsScheduled() {
		return true
	}
	if j.IsScheduled() {
		return false
	}

	// If neither is scheduled, sort by opponent
	return i.Away < j.Away
}
