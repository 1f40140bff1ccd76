package browser

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	pkgbrowser "github.com/pkg/browser"

	"github.com/sapuseven/issuereport/logutil"
	"github.com/sapuseven/issuereport/urlutil"
)

func init() {
	// xdg-open and friends print to stdout, which carries command output.
	pkgbrowser.Stdout = io.Discard
}

// DefaultTimeout bounds how long Launch waits for the platform opener.
const DefaultTimeout = 5 * time.Second

// ErrLaunchTimeout is returned when the platform opener does not return
// within the launcher's timeout.
var ErrLaunchTimeout = errors.New("browser launch timed out")

// ErrLaunchDisabled is returned by a launcher configured with TargetNone.
// Callers should show the URL instead.
var ErrLaunchDisabled = errors.New("browser launch disabled")

// Target represents the browser target for launching URLs.
type Target string

const (
	// TargetDefault uses the system default browser
	TargetDefault Target = "default"
	// TargetSystem uses the system default browser (alias for TargetDefault)
	TargetSystem Target = "system"
	// TargetNone disables browser launching
	TargetNone Target = "none"
)

// ValidTargets returns all valid browser target values.
func ValidTargets() []Target {
	return []Target{TargetDefault, TargetSystem, TargetNone}
}

// IsValid checks if a target string is valid.
func IsValid(target string) bool {
	for _, valid := range ValidTargets() {
		if Target(target) == valid {
			return true
		}
	}
	return false
}

// ResolveTarget converts "default" to "system" and keeps "none".
func ResolveTarget(target Target) Target {
	if target == TargetNone {
		return TargetNone
	}
	return TargetSystem
}

// GetTargetDisplayName returns a human-readable name for the browser target.
func GetTargetDisplayName(target Target) string {
	if ResolveTarget(target) == TargetNone {
		return "none"
	}
	return "default browser"
}

// FormatValidTargets returns a comma-separated list of valid targets.
func FormatValidTargets() string {
	targets := ValidTargets()
	strs := make([]string, len(targets))
	for i, t := range targets {
		strs[i] = string(t)
	}
	return strings.Join(strs, ", ")
}

// Launcher hands a URL to something that can display it.
type Launcher interface {
	Launch(ctx context.Context, url string) error
}

// LauncherFunc adapts a function to the Launcher interface.
type LauncherFunc func(ctx context.Context, url string) error

// Launch calls f(ctx, url).
func (f LauncherFunc) Launch(ctx context.Context, url string) error {
	return f(ctx, url)
}

// SystemLauncher opens URLs with the platform's default browser.
type SystemLauncher struct {
	Target  Target
	Timeout time.Duration

	// open performs the platform launch; nil means pkg/browser.OpenURL.
	open func(url string) error
}

// NewSystemLauncher returns a launcher for target with DefaultTimeout.
func NewSystemLauncher(target Target) *SystemLauncher {
	return &SystemLauncher{Target: target, Timeout: DefaultTimeout}
}

// Launch validates url and opens it. Only http and https URLs are accepted.
// With TargetNone it returns ErrLaunchDisabled without opening anything.
// Launch failures are returned to the caller.
func (l *SystemLauncher) Launch(ctx context.Context, url string) error {
	if err := urlutil.ValidateLaunchable(url); err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	log := logutil.NewLogger("browser").WithOperation("launch")
	if ResolveTarget(l.Target) == TargetNone {
		log.Debug("browser launch disabled", "target", l.Target)
		return ErrLaunchDisabled
	}

	timeout := l.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	open := l.open
	if open == nil {
		open = pkgbrowser.OpenURL
	}

	// Buffered so the opener goroutine can finish after a timeout.
	done := make(chan error, 1)
	go func() {
		done <- open(url)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", GetTargetDisplayName(l.Target), err)
		}
		log.Debug("opened URL", "length", len(url))
		return nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("%w after %s", ErrLaunchTimeout, timeout)
		}
		return ctx.Err()
	}
}
