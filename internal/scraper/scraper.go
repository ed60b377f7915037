package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/cenkalti/backoff/v4"

	"github.com/baobabprince/no-parking-teddy/internal/fixture"
)

const (
	ScheduleURL = "https://www.beitarfc.co.il/%D7%9E%D7%A9%D7%97%D7%A7%D7%99%D7%9D/"
	UserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	Timeout     = 30 * time.Second

	maxFetchRetries = 3
)

// Scraper handles fetching and parsing the Beitar Jerusalem schedule page
type Scraper struct {
	client *http.Client
	url    string
	loc    *time.Location
}

// New creates a new Scraper instance for the given schedule URL. An empty url
// falls back to ScheduleURL.
func New(url string, loc *time.Location) *Scraper {
	if url == "" {
		url = ScheduleURL
	}
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		url: url,
		loc: loc,
	}
}

// FetchMatches fetches and parses all fixtures from the schedule page.
// Transient HTTP failures are retried with exponential backoff; the calendar
// side of the system stays retry-free, but losing a whole run to a flaky
// fetch is avoidable here.
func (s *Scraper) FetchMatches(ctx context.Context) ([]*fixture.Match, error) {
	var body []byte

	operation := func() error {
		b, err := s.fetch(ctx)
		if err != nil {
			return err
		}
		body = b
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxFetchRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}

	return s.parseMatches(strings.NewReader(string(body)))
}

func (s *Scraper) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("creating request: %w", err))
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	return io.ReadAll(resp.Body)
}

// parseMatches extracts fixtures from schedule HTML
func (s *Scraper) parseMatches(r io.Reader) ([]*fixture.Match, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	matches := make([]*fixture.Match, 0)

	doc.Find("div.game_list_item").Each(func(i int, sel *goquery.Selection) {
		if m := s.parseMatch(sel); m != nil {
			matches = append(matches, m)
		}
	})

	return matches, nil
}

// parseMatch extracts a single fixture from one game listing. Returns nil
// when either team name is missing.
func (s *Scraper) parseMatch(sel *goquery.Selection) *fixture.Match {
	teams := sel.Find("div.teams_names")
	if teams.Length() == 0 {
		return nil
	}

	home := strings.TrimSpace(teams.Find("div.home").First().Text())
	away := strings.TrimSpace(teams.Find("div.away").First().Text())

	var venue, dateText, round string
	if info := sel.Find("div.game_info"); info.Length() > 0 {
		venue = strings.TrimSpace(info.Find("div.stadium").First().Text())
		dateText = strings.TrimSpace(info.Find("div.date").First().Text())
		round = strings.TrimSpace(info.Find("div.round").First().Text())
	}

	kickoff := fixture.ParseKickoff(dateText, s.loc)

	return fixture.NewMatch(home, away, venue, dateText, round, kickoff)
}
