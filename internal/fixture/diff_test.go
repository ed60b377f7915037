package fixture

import (
	"testing"
	"time"
)

func TestDiff(t *testing.T) {
	known := NewMatch(`בית"ר ירושלים`, "מכבי תל אביב", "אצטדיון טדי", "08/02/26 -> 20:00",
		"", time.Date(2026, time.February, 8, 20, 0, 0, 0, time.UTC))
	fresh := NewMatch(`בית"ר ירושלים`, "הפועל חיפה", "אצטדיון טדי", "15/02/26 -> 19:00",
		"", time.Date(2026, time.February, 15, 19, 0, 0, 0, time.UTC))

	previous := CreateSnapshot([]*Match{known}, "2026-01-01T00:00:00Z")

	got := Diff(previous, []*Match{known, fresh})
	if len(got) != 1 {
		t.Fatalf("diff returned %d matches, want 1", len(got))
	}
	if got[0].ID != fresh.ID {
		t.Errorf("diff returned %s, want %s", got[0].Summary(), fresh.Summary())
	}
}

func TestDiffNilPrevious(t *testing.T) {
	m := NewMatch(`בית"ר ירושלים`, "מכבי תל אביב", "אצטדיון טדי", "08/02/26 -> 20:00",
		"", time.Date(2026, time.February, 8, 20, 0, 0, 0, time.UTC))

	got := Diff(nil, []*Match{m})
	if len(got) != 1 {
		t.Fatalf("diff with nil previous returned %d matches, want 1", len(got))
	}
}

func TestDiffSortsByKickoff(t *testing.T) {
	later := NewMatch(`בית"ר ירושלים`, "ב", "טדי", "15/03/26 -> 20:00",
		"", time.Date(2026, time.March, 15, 20, 0, 0, 0, time.UTC))
	earlier := NewMatch(`בית"ר ירושלים`, "א", "טדי", "01/03/26 -> 20:00",
		"", time.Date(2026, time.March, 1, 20, 0, 0, 0, time.UTC))
	unscheduled := NewMatch(`בית"ר ירושלים`, "ג", "טדי", "", "", time.Time{})

	got := Diff(nil, []*Match{later, unscheduled, earlier})
	if len(got) != 3 {
		t.Fatalf("diff returned %d matches, want 3", len(got))
	}
	if got[0].ID != earlier.ID || got[1].ID != later.ID || got[2].ID != unscheduled.ID {
		t.Errorf("unexpected order: %s, %s, %s", got[0].Away, got[1].Away, got[2].Away)
	}
}
