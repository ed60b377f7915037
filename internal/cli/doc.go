// Package cli implements the command-line interface for no-parking-teddy.
//
// The cli package provides the Cobra-based CLI with commands to sync home
// games to the calendar, list scraped fixtures, export an iCalendar file, and
// clean up synced events. It coordinates the scraper, fixture, sync, storage,
// and notify packages and renders results as text or JSON.
package cli
