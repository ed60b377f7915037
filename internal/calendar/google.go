package calendar

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/baobabprince/no-parking-teddy/internal/fixture"
)

// GoogleClient performs match event operations against a Google Calendar.
type GoogleClient struct {
	service    *gcal.Service
	calendarID string
	loc        *time.Location
}

// NewGoogleClient builds an authorized Google Calendar client. Credentials
// are taken from the GOOGLE_CREDENTIALS environment variable (JSON content,
// as used in CI) or from credentialsPath. Failure here is fatal to a live
// run: without an authorized handle no calendar operation can proceed.
func NewGoogleClient(ctx context.Context, calendarID, credentialsPath string, loc *time.Location) (*GoogleClient, error) {
	data := []byte(os.Getenv("GOOGLE_CREDENTIALS"))
	if len(data) == 0 {
		b, err := os.ReadFile(credentialsPath)
		if err != nil {
			return nil, fmt.Errorf("reading credentials: %w", err)
		}
		data = b
	}

	creds, err := google.CredentialsFromJSON(ctx, data, gcal.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("parsing credentials: %w", err)
	}

	service, err := gcal.NewService(ctx, option.WithTokenSource(creds.TokenSource))
	if err != nil {
		return nil, fmt.Errorf("building calendar service: %w", err)
	}

	if calendarID == "" {
		calendarID = "primary"
	}

	return &GoogleClient{
		service:    service,
		calendarID: calendarID,
		loc:        loc,
	}, nil
}

// FindCandidate searches the calendar day of the match's kickoff for an event
// whose title contains both the tracked team and the away team. Substring
// matching is deliberate: event titles carry decoration (emoji, branding)
// around the substantive team names.
func (c *GoogleClient) FindCandidate(ctx context.Context, m *fixture.Match) (*Event, error) {
	k := m.Kickoff.In(c.loc)
	dayStart := time.Date(k.Year(), k.Month(), k.Day(), 0, 0, 0, 0, c.loc)
	dayEnd := dayStart.Add(24 * time.Hour)

	result, err := c.service.Events.List(c.calendarID).
		TimeMin(dayStart.Format(time.RFC3339)).
		TimeMax(dayEnd.Format(time.RFC3339)).
		Q(fixture.TrackedTeam).
		SingleEvents(true).
		OrderBy("startTime").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	for _, item := range result.Items {
		if strings.Contains(item.Summary, fixture.TrackedTeam) &&
			strings.Contains(item.Summary, m.Away) {
			return fromGoogleEvent(item), nil
		}
	}

	return nil, nil
}

// CreateEvent inserts a new event for the match: fixed game duration, a
// popup reminder one day before kickoff, red, public, with the parking
// advisory in the body.
func (c *GoogleClient) CreateEvent(ctx context.Context, m *fixture.Match) (*Event, error) {
	start := m.Kickoff.In(c.loc)
	end := start.Add(GameDuration)

	body := &gcal.Event{
		Summary:     EventTitle(m),
		Location:    EventLocation,
		Description: EventDescription,
		Start: &gcal.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: fixture.Timezone,
		},
		End: &gcal.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: fixture.Timezone,
		},
		Reminders: &gcal.EventReminders{
			UseDefault: false,
			Overrides: []*gcal.EventReminder{
				{Method: "popup", Minutes: int64(ReminderLead.Minutes())},
			},
			ForceSendFields: []string{"UseDefault"},
		},
		ColorId:    "11", // red
		Visibility: "public",
	}

	created, err := c.service.Events.Insert(c.calendarID, body).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("inserting event: %w", err)
	}

	return fromGoogleEvent(created), nil
}

// DeleteAllMatching removes every event matching the free-text query and
// returns how many were deleted. Destructive and operator-invoked only; the
// CLI guards it behind an explicit confirmation flag.
func (c *GoogleClient) DeleteAllMatching(ctx context.Context, query string) (int, error) {
	deleted := 0
	pageToken := ""

	for {
		call := c.service.Events.List(c.calendarID).
			Q(query).
			SingleEvents(true).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		result, err := call.Do()
		if err != nil {
			return deleted, fmt.Errorf("listing events: %w", err)
		}

		for _, item := range result.Items {
			if err := c.service.Events.Delete(c.calendarID, item.Id).Context(ctx).Do(); err != nil {
				return deleted, fmt.Errorf("deleting event %s: %w", item.Id, err)
			}
			deleted++
		}

		pageToken = result.NextPageToken
		if pageToken == "" {
			return deleted, nil
		}
	}
}

// fromGoogleEvent converts an API event into this package's Event value.
func fromGoogleEvent(item *gcal.Event) *Event {
	evt := &Event{
		ID:    item.Id,
		Title: item.Summary,
		Link:  item.HtmlLink,
	}
	if item.Start != nil {
		evt.Start, _ = time.Parse(time.RFC3339, item.Start.DateTime)
	}
	if item.End != nil {
		evt.End, _ = time.Parse(time.RFC3339, item.End.DateTime)
	}
	return evt
}
