package sync

import (
	"context"
	"fmt"

	"github.com/baobabprince/no-parking-teddy/internal/calendar"
	"github.com/baobabprince/no-parking-teddy/internal/fixture"
	"github.com/baobabprince/no-parking-teddy/internal/logger"
)

// SimulatedEventID is the placeholder recorded for events that a dry run
// would have created.
const SimulatedEventID = "dry-run"

// CalendarPort is the calendar capability the reconciler consumes. Both the
// Google Calendar client and the in-memory test fake implement it; the
// destructive bulk delete lives outside this port because it is never part
// of the sync path.
type CalendarPort interface {
	// FindCandidate returns an existing event for the match, or nil if the
	// calendar has none on the match's day.
	FindCandidate(ctx context.Context, m *fixture.Match) (*calendar.Event, error)

	// CreateEvent inserts a new event for the match.
	CreateEvent(ctx context.Context, m *fixture.Match) (*calendar.Event, error)
}

// Outcome records what happened to a single match during a run.
type Outcome struct {
	Match   *fixture.Match `json:"match"`
	EventID string         `json:"event_id,omitempty"`
	Link    string         `json:"link,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Result is the per-run report: three outcome lists in input order, plus
// whether the run was simulated. Built fresh per run and never persisted.
type Result struct {
	Created  []Outcome `json:"created"`
	Existing []Outcome `json:"existing"`
	Failed   []Outcome `json:"failed"`

	Simulated bool `json:"simulated"`
}

// PartialFailure reports whether any match failed to sync.
func (r *Result) PartialFailure() bool {
	return len(r.Failed) > 0
}

// Reconciler drives one sync run against a calendar port.
type Reconciler struct {
	port      CalendarPort
	simulated bool
}

// New creates a Reconciler. With simulated set, the run reports intended
// creations without performing any calendar write.
func New(port CalendarPort, simulated bool) *Reconciler {
	return &Reconciler{
		port:      port,
		simulated: simulated,
	}
}

// Reconcile processes matches sequentially, in input order. Every match must
// be scheduled: a match without a kickoff is a caller bug, rejected before
// any calendar operation is attempted so the gap is visible to the operator
// instead of silently dropped.
//
// Per-match calendar failures go into Result.Failed and processing
// continues; the returned error is reserved for the precondition violation.
func (r *Reconciler) Reconcile(ctx context.Context, matches []*fixture.Match) (*Result, error) {
	for _, m := range matches {
		if !m.IsScheduled() {
			return nil, fmt.Errorf("unscheduled match %s: no kickoff time parsed from %q", m.Summary(), m.RawDateText)
		}
	}

	result := &Result{
		Created:   make([]Outcome, 0, len(matches)),
		Existing:  make([]Outcome, 0),
		Failed:    make([]Outcome, 0),
		Simulated: r.simulated,
	}

	for _, m := range matches {
		r.reconcileOne(ctx, m, result)
	}

	return result, nil
}

func (r *Reconciler) reconcileOne(ctx context.Context, m *fixture.Match, result *Result) {
	existing, err := r.port.FindCandidate(ctx, m)
	if err != nil {
		logger.Error("Duplicate check failed", logger.Fields{"match": m.Summary()}, err)
		result.Failed = append(result.Failed, Outcome{Match: m, Error: err.Error()})
		return
	}

	if existing != nil {
		logger.Info("Event already exists", logger.Fields{
			"match":    m.Summary(),
			"event_id": existing.ID,
		})
		result.Existing = append(result.Existing, Outcome{Match: m, EventID: existing.ID, Link: existing.Link})
		return
	}

	if r.simulated {
		logger.Info("Dry run, would create event", logger.Fields{"match": m.Summary()})
		result.Created = append(result.Created, Outcome{Match: m, EventID: SimulatedEventID})
		return
	}

	created, err := r.port.CreateEvent(ctx, m)
	if err != nil {
		logger.Error("Event creation failed", logger.Fields{"match": m.Summary()}, err)
		result.Failed = append(result.Failed, Outcome{Match: m, Error: err.Error()})
		return
	}

	logger.Info("Event created", logger.Fields{
		"match":    m.Summary(),
		"event_id": created.ID,
	})
	result.Created = append(result.Created, Outcome{Match: m, EventID: created.ID, Link: created.Link})
}
