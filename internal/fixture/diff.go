package fixture

import "sort"

// Snapshot represents the set of known fixtures at a point in time
type Snapshot struct {
	Matches   map[string]*Match `json:"matches"` // keyed by Match.ID
	UpdatedAt string            `json:"updated_at"`
}

// NewSnapshot creates an empty snapshot
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Matches: make(map[string]*Match),
	}
}

// CreateSnapshot creates a snapshot from a list of matches
func CreateSnapshot(matches []*Match, updatedAt string) *Snapshot {
	snap := NewSnapshot()
	snap.UpdatedAt = updatedAt
	for _, m := range matches {
		snap.Matches[m.ID] = m
	}
	return snap
}

// Diff returns matches from current that were not present in the previous
// snapshot, sorted by kickoff (unscheduled last, then by raw text for
// consistent output).
func Diff(previous *Snapshot, current []*Match) []*Match {
	if previous == nil {
		previous = NewSnapshot()
	}

	fresh := make([]*Match, 0)
	for _, m := range current {
		if _, exists := previous.Matches[m.ID]; !exists {
			fresh = append(fresh, m)
		}
	}

	sort.Slice(fresh, func(i, j int) bool {
		a, b := fresh[i], fresh[j]
		switch {
		case a.IsScheduled() && b.IsScheduled():
			return a.Kickoff.Before(b.Kickoff)
		case a.IsScheduled():
			return true
		case b.IsScheduled():
			return false
		default:
			return a.Summary() < b.Summary()
		}
	})

	return fresh
}
