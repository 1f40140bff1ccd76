package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sapuseven/issuereport/browser"
	"github.com/sapuseven/issuereport/cliout"
	"github.com/sapuseven/issuereport/logutil"
	"github.com/sapuseven/issuereport/notify"
	"github.com/sapuseven/issuereport/urlutil"
)

// openResult is the JSON output of the open command.
type openResult struct {
	*report
	Opened bool   `json:"opened"`
	Error  string `json:"error,omitempty"`
}

func newOpenCommand(opts *rootOptions, deps Deps) *cobra.Command {
	var (
		rf        reportFlags
		notifyArg bool
	)

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Build the report link and open it in the browser",
		Example: `  issuereport open --category crash --log-file crash.log
  adb logcat -d | issuereport open --category exception`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			r, err := rf.build(ctx, cmd, opts.cfg, deps)
			if err != nil {
				return err
			}

			log := logutil.NewLogger("cli").WithOperation("open").WithFields("category", r.Category)
			warnIfLong(r.URL)

			launchErr := deps.Launcher(opts.cfg).Launch(ctx, r.URL)
			disabled := errors.Is(launchErr, browser.ErrLaunchDisabled)
			switch {
			case disabled:
				log.Info("browser launch disabled; printing link", "length", len(r.URL))
				launchErr = nil
			case launchErr != nil:
				log.Warn("browser launch failed", "error", launchErr)
			default:
				log.Info("report opened", "length", len(r.URL))
			}

			if (notifyArg || opts.cfg.Notify) && !disabled {
				sendNotification(ctx, deps.Notifier, r.Title, launchErr)
			}

			result := openResult{report: r, Opened: launchErr == nil && !disabled}
			if launchErr != nil {
				result.Error = launchErr.Error()
			}
			if err := cliout.Print(result, func() {
				switch {
				case disabled:
					cliout.Info("Browser launching is disabled in the configuration")
					cliout.Hint("Open this link to submit the issue:")
					cliout.Plain(cliout.URL(r.URL))
				case launchErr != nil:
					cliout.Error("Could not open the report in your browser: %v", launchErr)
					cliout.Hint("Open this link manually to submit the issue:")
					cliout.Plain(cliout.URL(r.URL))
				default:
					cliout.Success("Opened %s in your browser", displayTitle(r.Title))
				}
			}); err != nil {
				return err
			}

			if launchErr != nil {
				return fmt.Errorf("open report: %w", launchErr)
			}
			return nil
		},
	}

	rf.register(cmd.Flags())
	cmd.Flags().BoolVar(&notifyArg, "notify", false, "Show a desktop notification when done")
	return cmd
}

func newURLCommand(opts *rootOptions, deps Deps) *cobra.Command {
	var rf reportFlags

	cmd := &cobra.Command{
		Use:     "url",
		Short:   "Print the report link without opening it",
		Example: `  issuereport url --category exception --log "IllegalStateException: no timetable"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rf.build(cmd.Context(), cmd, opts.cfg, deps)
			if err != nil {
				return err
			}
			warnIfLong(r.URL)

			return cliout.Print(r, func() {
				cliout.Plain(r.URL)
			})
		},
	}

	rf.register(cmd.Flags())
	return cmd
}

func newPreviewCommand(opts *rootOptions, deps Deps) *cobra.Command {
	var rf reportFlags

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print the report title and body",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := rf.build(cmd.Context(), cmd, opts.cfg, deps)
			if err != nil {
				return err
			}

			return cliout.Print(r, func() {
				cliout.Header(displayTitle(r.Title))
				cliout.Plain(r.Body)
			})
		},
	}

	rf.register(cmd.Flags())
	return cmd
}

// warnIfLong logs when a link is longer than the tracker reliably accepts.
// The link is still produced unchanged.
func warnIfLong(link string) {
	if len(link) > urlutil.MaxBrowserURLLength {
		logutil.Warn("report link exceeds tracker limit; the log may be cut off",
			"length", len(link), "limit", urlutil.MaxBrowserURLLength)
	}
}

func sendNotification(ctx context.Context, n notify.Notifier, title string, launchErr error) {
	if n == nil {
		return
	}

	msg := notify.ReportOpened(title)
	if launchErr != nil {
		msg = notify.LaunchFailed()
	}
	if err := n.Send(ctx, msg); err != nil {
		level := logutil.Warn
		if errors.Is(err, notify.ErrTimeout) {
			level = logutil.Debug
		}
		level("desktop notification failed", "error", err)
	}
}

func displayTitle(title string) string {
	if title == "" {
		return "Issue report"
	}
	return title
}
