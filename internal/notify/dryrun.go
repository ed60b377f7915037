package notify

import (
	"fmt"

	"github.com/baobabprince/no-parking-teddy/internal/sync"
)

// DryRunNotifier prints the summary that would be sent without posting it
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify prints the summary message
func (n *DryRunNotifier) Notify(result *sync.Result) error {
	msg := FormatSummary(result)
	fmt.Println("--- Notification ---")
	fmt.Println(msg)
	fmt.Printf("\n(Length: %d characters)\n", len(msg))
	return nil
}
