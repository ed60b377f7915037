// Package notify delivers the run summary to the operator.
//
// The notify package supports sending a short sync report over Telegram,
// with a dry-run implementation that prints instead of posting. Notification
// is best-effort and optional: a run without a configured bot token simply
// skips it.
package notify
