// Package notify shows desktop notifications about report hand-off.
package notify

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Notification represents a notification to be displayed.
type Notification struct {
	Title   string
	Message string
}

// Notifier sends notifications to the OS notification system.
type Notifier interface {
	Send(ctx context.Context, notification Notification) error
}

// Config contains notification system configuration.
type Config struct {
	// Timeout for a single Send.
	Timeout time.Duration
}

// DefaultConfig returns default notification configuration.
func DefaultConfig() Config {
	return Config{
		Timeout: 5 * time.Second,
	}
}

// Sentinel errors returned by Send.
var (
	ErrNotificationFailed = errors.New("failed to send notification")
	ErrTimeout            = errors.New("notification timeout")
)

// New creates a notifier for the current platform.
func New(config Config) Notifier {
	return newBeeepNotifier(config)
}

// ReportOpened builds the notification for a successful hand-off.
func ReportOpened(title string) Notification {
	if title == "" {
		title = "Issue report"
	}
	return Notification{
		Title:   "Bug report opened",
		Message: fmt.Sprintf("%s is ready to submit in your browser.", title),
	}
}

// LaunchFailed builds the notification shown when the browser did not open.
func LaunchFailed() Notification {
	return Notification{
		Title:   "Could not open browser",
		Message: "The report link was printed to the terminal. Open it manually to submit the issue.",
	}
}
