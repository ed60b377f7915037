package fixture

import (
	"testing"
	"time"
)

func TestNewMatch(t *testing.T) {
	kickoff := time.Date(2026, time.February, 8, 1, 59, 0, 0, time.UTC)

	m := NewMatch(`בית"ר ירושלים`, "מכבי תל אביב", "אצטדיון טדי", "08/02/26 -> 01:59", "מחזור 5", kickoff)
	if m == nil {
		t.Fatal("expected match, got nil")
	}

	if m.ID == "" {
		t.Error("match ID should not be empty")
	}
	if m.Home != `בית"ר ירושלים` {
		t.Errorf("home = %q", m.Home)
	}
	if m.Away != "מכבי תל אביב" {
		t.Errorf("away = %q", m.Away)
	}
	if !m.Kickoff.Equal(kickoff) {
		t.Errorf("kickoff = %v, want %v", m.Kickoff, kickoff)
	}
	if !m.IsScheduled() {
		t.Error("match with kickoff should be scheduled")
	}
	if m.FirstSeen.IsZero() {
		t.Error("FirstSeen should be set")
	}
}

func TestNewMatchMissingTeams(t *testing.T) {
	tests := []struct {
		name string
		home string
		away string
	}{
		{"Missing home", "", "מכבי תל אביב"},
		{"Missing away", `בית"ר ירושלים`, ""},
		{"Both missing", "", ""},
		{"Whitespace only home", "   ", "מכבי תל אביב"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if m := NewMatch(tt.home, tt.away, "", "", "", time.Time{}); m != nil {
				t.Errorf("NewMatch(%q, %q) = %+v, want nil", tt.home, tt.away, m)
			}
		})
	}
}

func TestIsHomeMatch(t *testing.T) {
	tests := []struct {
		name string
		home string
		want bool
	}{
		{"Exact canonical name", `בית"ר ירושלים`, true},
		{"Decorated name", `מועדון בית"ר ירושלים`, true},
		{"Other club", "מכבי תל אביב", false},
		{"Tracked team away", "הפועל באר שבע", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMatch(tt.home, "יריבה", "", "", "", time.Time{})
			if m == nil {
				t.Fatal("unexpected nil match")
			}
			if got := m.IsHomeMatch(); got != tt.want {
				t.Errorf("IsHomeMatch() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGenerateIDDeterministic(t *testing.T) {
	a := GenerateID("home", "away", "08/02/26 -> 01:59")
	b := GenerateID("home", "away", "08/02/26 -> 01:59")
	if a != b {
		t.Errorf("same inputs produced different IDs: %s vs %s", a, b)
	}

	c := GenerateID("home", "away", "09/02/26 -> 01:59")
	if a == c {
		t.Error("different date text should produce a different ID")
	}
}

func TestUnscheduledMatch(t *testing.T) {
	m := NewMatch(`בית"ר ירושלים`, "מכבי חיפה", "אצטדיון טדי", "טרם נקבע", "", time.Time{})
	if m == nil {
		t.Fatal("unexpected nil match")
	}
	if m.IsScheduled() {
		t.Error("match without kickoff should not be scheduled")
	}
}
