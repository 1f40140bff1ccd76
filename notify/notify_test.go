package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendDelivers(t *testing.T) {
	var gotTitle, gotMessage string
	n := newBeeepNotifier(DefaultConfig())
	n.notify = func(title, message string) error {
		gotTitle, gotMessage = title, message
		return nil
	}

	require.NoError(t, n.Send(context.Background(), ReportOpened("[Crash Report]")))
	assert.Equal(t, "Bug report opened", gotTitle)
	assert.Contains(t, gotMessage, "[Crash Report]")
}

func TestSendWrapsFailure(t *testing.T) {
	cause := errors.New("dbus unavailable")
	n := newBeeepNotifier(Config{})
	n.notify = func(string, string) error { return cause }

	err := n.Send(context.Background(), LaunchFailed())
	assert.ErrorIs(t, err, ErrNotificationFailed)
	assert.ErrorIs(t, err, cause)
}

func TestSendTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	n := newBeeepNotifier(Config{Timeout: 10 * time.Millisecond})
	n.notify = func(string, string) error {
		<-release
		return nil
	}

	assert.ErrorIs(t, n.Send(context.Background(), LaunchFailed()), ErrTimeout)
}

func TestNotificationBuilders(t *testing.T) {
	assert.Contains(t, ReportOpened("").Message, "Issue report")
	assert.Equal(t, "Could not open browser", LaunchFailed().Title)
	assert.NotNil(t, New(DefaultConfig()))
}
