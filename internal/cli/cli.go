package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/baobabprince/no-parking-teddy/internal/calendar"
	"github.com/baobabprince/no-parking-teddy/internal/config"
	"github.com/baobabprince/no-parking-teddy/internal/fixture"
	"github.com/baobabprince/no-parking-teddy/internal/logger"
	"github.com/baobabprince/no-parking-teddy/internal/notify"
	"github.com/baobabprince/no-parking-teddy/internal/scraper"
	"github.com/baobabprince/no-parking-teddy/internal/storage"
	"github.com/baobabprince/no-parking-teddy/internal/sync"
)

const (
	ExitSuccess        = 0
	ExitError          = 1
	ExitPartialFailure = 2
)

var (
	flagConfig  string
	flagFormat  string
	flagVerbose bool
	flagDryRun  bool
	flagConfirm bool
	flagOutput  string
	flagSort    string
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "no-parking-teddy",
		Short: "Sync Beitar Jerusalem home games at Teddy Stadium to a calendar",
		Long: `Keeps a calendar in sync with Beitar Jerusalem home games at Teddy Stadium,
so you remember to move your car before the no-parking window starts.
Fetches the fixture list from beitarfc.co.il, picks home games at Teddy,
and creates one calendar event per game without duplicating on re-runs.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
			}
		},
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "config.yaml", "Path to config file")
	cmd.PersistentFlags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	cmd.AddCommand(newSyncCmd())
	cmd.AddCommand(newFixturesCmd())
	cmd.AddCommand(newCleanupCmd())
	cmd.AddCommand(newICSCmd())

	return cmd
}

func newSyncCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Sync home games at Teddy to the calendar",
		RunE:  runSync,
	}
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Report intended actions without writing to the calendar")
	return cmd
}

func newFixturesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "List all scraped fixtures",
		RunE:  runFixtures,
	}
	cmd.Flags().StringVar(&flagSort, "sort", "date", "Sort order: date, opponent or venue")
	return cmd
}

func newCleanupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete all synced events from the calendar",
		RunE:  runCleanup,
	}
	cmd.Flags().BoolVar(&flagConfirm, "confirm", false, "Actually delete (required)")
	return cmd
}

func newICSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export home games at Teddy as an iCalendar file",
		RunE:  runICS,
	}
	cmd.Flags().StringVar(&flagOutput, "output", "teddy-games.ics", "Output .ics file path")
	return cmd
}

// fetchMatches loads config and scrapes the full fixture list.
func fetchMatches(cmd *cobra.Command) (*config.Config, []*fixture.Match, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	loc, err := fixture.Location()
	if err != nil {
		return nil, nil, fmt.Errorf("loading timezone: %w", err)
	}

	sc := scraper.New(cfg.ScheduleURL, loc)

	logger.Debug("Fetching schedule", logger.Fields{"url": cfg.ScheduleURL})
	matches, err := sc.FetchMatches(cmd.Context())
	if err != nil {
		return nil, nil, fmt.Errorf("fetching fixtures: %w", err)
	}

	logger.Info("Fetched fixtures", logger.Fields{"total": len(matches)})
	return cfg, matches, nil
}

// runSync is the main reconciliation flow
func runSync(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	cfg, matches, err := fetchMatches(cmd)
	if err != nil {
		return err
	}

	teddy := fixture.HomeAtVenue(matches, fixture.TrackedVenue)
	logger.Info("Home games at Teddy", logger.Fields{"count": len(teddy)})

	reportNewFixtures(cfg, teddy)

	scheduled, unscheduled := fixture.SplitScheduled(teddy)
	for _, m := range unscheduled {
		logger.Warn("Skipping unscheduled match", logger.Fields{
			"match":     m.Summary(),
			"date_text": m.RawDateText,
		})
	}

	if len(scheduled) == 0 {
		fmt.Println("No home games at Teddy to sync.")
		return nil
	}

	loc, err := fixture.Location()
	if err != nil {
		return fmt.Errorf("loading timezone: %w", err)
	}

	client, err := calendar.NewGoogleClient(cmd.Context(), cfg.CalendarID, cfg.CredentialsPath, loc)
	if err != nil {
		return fmt.Errorf("initializing calendar: %w", err)
	}

	result, err := sync.New(client, flagDryRun).Reconcile(cmd.Context(), scheduled)
	if err != nil {
		return fmt.Errorf("reconciling: %w", err)
	}

	if err := WriteResult(os.Stdout, result, unscheduled, format); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	sendSummary(cfg, result)

	if result.PartialFailure() {
		os.Exit(ExitPartialFailure)
	}
	return nil
}

// reportNewFixtures diffs the relevant fixtures against the last run's
// snapshot and logs any newly announced games. Snapshot problems are logged
// and ignored: new-fixture detection is a convenience, not part of the sync
// contract.
func reportNewFixtures(cfg *config.Config, matches []*fixture.Match) {
	store, err := storage.New(cfg.DataDir)
	if err != nil {
		logger.Warn("Snapshot storage unavailable", logger.Fields{"error": err.Error()})
		return
	}

	previous, err := store.LoadSnapshot()
	if err != nil {
		logger.Warn("Could not load previous snapshot", logger.Fields{"error": err.Error()})
		previous = nil
	}

	for _, m := range fixture.Diff(previous, matches) {
		logger.Info("Newly announced home game", logger.Fields{
			"match":     m.Summary(),
			"date_text": m.RawDateText,
		})
	}

	if err := store.CreateSnapshotFromMatches(matches); err != nil {
		logger.Warn("Could not save snapshot", logger.Fields{"error": err.Error()})
	}
}

// sendSummary delivers the run summary over Telegram when configured.
// Best-effort: failures are logged, never fatal.
func sendSummary(cfg *config.Config, result *sync.Result) {
	if cfg.Telegram.BotToken == "" {
		return
	}

	var n notify.Notifier
	if flagDryRun {
		n = notify.NewDryRunNotifier()
	} else {
		tn, err := notify.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			logger.Warn("Telegram notifier unavailable", logger.Fields{"error": err.Error()})
			return
		}
		n = tn
	}

	if err := n.Notify(result); err != nil {
		logger.Warn("Sending summary failed", logger.Fields{"error": err.Error()})
	}
}

func runFixtures(cmd *cobra.Command, args []string) error {
	format, err := parseFormat(flagFormat)
	if err != nil {
		return err
	}

	_, matches, err := fetchMatches(cmd)
	if err != nil {
		return err
	}

	order := SortOrder(strings.ToLower(flagSort))
	if order != SortByDate && order != SortByOpponent && order != SortByVenue {
		return fmt.Errorf("invalid sort order: %s (must be 'date', 'opponent' or 'venue')", flagSort)
	}
	sortMatches(matches, order)

	return WriteFixtures(os.Stdout, matches, format)
}

func runCleanup(cmd *cobra.Command, args []string) error {
	if !flagConfirm {
		return fmt.Errorf("cleanup deletes every %s event on the calendar; re-run with --confirm", fixture.TrackedTeam)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	loc, err := fixture.Location()
	if err != nil {
		return fmt.Errorf("loading timezone: %w", err)
	}

	client, err := calendar.NewGoogleClient(cmd.Context(), cfg.CalendarID, cfg.CredentialsPath, loc)
	if err != nil {
		return fmt.Errorf("initializing calendar: %w", err)
	}

	count, err := client.DeleteAllMatching(cmd.Context(), fixture.TrackedTeam)
	if err != nil {
		return fmt.Errorf("deleting events: %w", err)
	}

	fmt.Printf("Deleted %d events.\n", count)
	return nil
}

func runICS(cmd *cobra.Command, args []string) error {
	_, matches, err := fetchMatches(cmd)
	if err != nil {
		return err
	}

	teddy := fixture.HomeAtVenue(matches, fixture.TrackedVenue)
	if len(teddy) == 0 {
		fmt.Println("No home games at Teddy to export.")
		return nil
	}

	name := fmt.Sprintf("%s - Teddy %d", fixture.TrackedTeam, time.Now().Year())
	ics := calendar.GenerateICS(teddy, name)

	if err := os.WriteFile(flagOutput, []byte(ics), 0600); err != nil {
		return fmt.Errorf("writing ICS file: %w", err)
	}

	fmt.Printf("Wrote %d games to %s\n", len(teddy), flagOutput)
	return nil
}

func parseFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	if format != FormatText && format != FormatJSON {
		return "", fmt.Errorf("invalid format: %s (must be 'text' or 'json')", s)
	}
	return format, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
