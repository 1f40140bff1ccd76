package notify

import (
	"context"
	"fmt"

	"github.com/gen2brain/beeep"
)

// beeepNotifier implements Notifier using the cross-platform beeep library.
type beeepNotifier struct {
	config Config
	notify func(title, message string) error
}

func newBeeepNotifier(config Config) *beeepNotifier {
	if config.Timeout <= 0 {
		config.Timeout = DefaultConfig().Timeout
	}
	return &beeepNotifier{
		config: config,
		notify: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

// Send shows the notification, giving up after the configured timeout.
func (n *beeepNotifier) Send(ctx context.Context, notification Notification) error {
	ctx, cancel := context.WithTimeout(ctx, n.config.Timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- n.notify(notification.Title, notification.Message)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
		}
		return nil
	case <-ctx.Done():
		return ErrTimeout
	}
}
