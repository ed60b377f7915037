package notify

import (
	"fmt"
	"strings"

	"github.com/baobabprince/no-parking-teddy/internal/sync"
)

// Notifier defines the interface for delivering a run summary
type Notifier interface {
	// Notify delivers a summary of the reconciliation result
	Notify(result *sync.Result) error
}

// FormatSummary renders a reconciliation result as a short plain-text
// message suitable for a chat notification.
func FormatSummary(result *sync.Result) string {
	var b strings.Builder

	if result.Simulated {
		b.WriteString("🔍 Teddy parking sync (dry run)\n")
	} else {
		b.WriteString("🏟️ Teddy parking sync\n")
	}

	fmt.Fprintf(&b, "✅ Created: %d\n", len(result.Created))
	fmt.Fprintf(&b, "⏭️ Already existed: %d\n", len(result.Existing))
	fmt.Fprintf(&b, "❌ Failed: %d\n", len(result.Failed))

	for _, o := range result.Created {
		fmt.Fprintf(&b, "\n⚽ %s\n📅 %s", o.Match.Summary(), o.Match.RawDateText)
		if o.Link != "" {
			fmt.Fprintf(&b, "\n🔗 %s", o.Link)
		}
	}

	for _, o := range result.Failed {
		fmt.Fprintf(&b, "\n⚠️ %s: %s", o.Match.Summary(), o.Error)
	}

	return b.String()
}
