package browser

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reportURL = "https://github.com/SapuSeven/BetterUntis/issues/new?title=%5BBug%20Report%5D&body=x&labels=bug"

func TestIsValid(t *testing.T) {
	tests := []struct {
		target string
		want   bool
	}{
		{"default", true},
		{"system", true},
		{"none", true},
		{"chrome", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValid(tt.target); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.target, got, tt.want)
		}
	}
}

func TestResolveTarget(t *testing.T) {
	assert.Equal(t, TargetNone, ResolveTarget(TargetNone))
	assert.Equal(t, TargetSystem, ResolveTarget(TargetDefault))
	assert.Equal(t, TargetSystem, ResolveTarget(TargetSystem))
	assert.Equal(t, TargetSystem, ResolveTarget(Target("")))
}

func TestGetTargetDisplayName(t *testing.T) {
	assert.Equal(t, "default browser", GetTargetDisplayName(TargetDefault))
	assert.Equal(t, "default browser", GetTargetDisplayName(TargetSystem))
	assert.Equal(t, "none", GetTargetDisplayName(TargetNone))
	assert.Equal(t, "default, system, none", FormatValidTargets())
}

func TestSystemLauncherOpensURL(t *testing.T) {
	var opened string
	l := NewSystemLauncher(TargetDefault)
	l.open = func(url string) error {
		opened = url
		return nil
	}

	require.NoError(t, l.Launch(context.Background(), reportURL))
	assert.Equal(t, reportURL, opened)
}

func TestSystemLauncherRejectsInvalidURLs(t *testing.T) {
	urls := []string{
		"",
		"file:///etc/passwd",
		"javascript:alert(1)",
		"ftp://example.com/file",
	}

	for _, u := range urls {
		l := NewSystemLauncher(TargetSystem)
		l.open = func(string) error {
			t.Errorf("opener called for %q", u)
			return nil
		}
		assert.Error(t, l.Launch(context.Background(), u), "url %q", u)
	}
}

func TestSystemLauncherTargetNone(t *testing.T) {
	l := NewSystemLauncher(TargetNone)
	l.open = func(string) error {
		t.Error("opener must not run for TargetNone")
		return nil
	}

	assert.ErrorIs(t, l.Launch(context.Background(), reportURL), ErrLaunchDisabled)
	assert.ErrorContains(t, l.Launch(context.Background(), "file:///etc/passwd"), "invalid URL")
}

func TestSystemLauncherReturnsOpenError(t *testing.T) {
	openErr := errors.New("exec: \"xdg-open\": executable file not found in $PATH")
	l := NewSystemLauncher(TargetDefault)
	l.open = func(string) error { return openErr }

	err := l.Launch(context.Background(), reportURL)
	require.Error(t, err)
	assert.ErrorIs(t, err, openErr)
	assert.Contains(t, err.Error(), "default browser")
}

func TestSystemLauncherTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	l := &SystemLauncher{
		Target:  TargetDefault,
		Timeout: 20 * time.Millisecond,
		open: func(string) error {
			<-release
			return nil
		},
	}

	err := l.Launch(context.Background(), reportURL)
	assert.ErrorIs(t, err, ErrLaunchTimeout)
}

func TestSystemLauncherCanceledContext(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	l := NewSystemLauncher(TargetDefault)
	l.open = func(string) error {
		<-release
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, l.Launch(ctx, reportURL), context.Canceled)
}

func TestLauncherFunc(t *testing.T) {
	var got string
	var l Launcher = LauncherFunc(func(_ context.Context, url string) error {
		got = url
		return nil
	})

	require.NoError(t, l.Launch(context.Background(), reportURL))
	assert.Equal(t, reportURL, got)
}
