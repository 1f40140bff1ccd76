// Package cli implements the issuereport command tree.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sapuseven/issuereport/browser"
	"github.com/sapuseven/issuereport/cliout"
	"github.com/sapuseven/issuereport/config"
	"github.com/sapuseven/issuereport/envinfo"
	"github.com/sapuseven/issuereport/logutil"
	"github.com/sapuseven/issuereport/notify"
	"github.com/sapuseven/issuereport/version"
)

// Deps are the platform collaborators used by the commands.
type Deps struct {
	Stdin    io.Reader
	Launcher func(cfg *config.Config) browser.Launcher
	Provider func(cfg *config.Config) envinfo.Provider
	Notifier notify.Notifier
}

// DefaultDeps wires the real browser, host environment and desktop
// notifications.
func DefaultDeps(build *version.Info) Deps {
	return Deps{
		Stdin: os.Stdin,
		Launcher: func(cfg *config.Config) browser.Launcher {
			return browser.NewSystemLauncher(browser.Target(cfg.Browser))
		},
		Provider: func(cfg *config.Config) envinfo.Provider {
			return envinfo.NewSystemProvider(cfg.EnvApp(), build)
		},
		Notifier: notify.New(notify.DefaultConfig()),
	}
}

type rootOptions struct {
	configPath string
	debug      bool
	structured bool
	output     string
	noColor    bool

	cfg *config.Config
}

// NewRootCommand builds the issuereport command tree.
func NewRootCommand(build *version.Info, deps Deps) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "issuereport",
		Short: "Create pre-filled bug reports from crash and exception logs",
		Long: `issuereport turns a crash or exception log into a "new issue" link for the
project's issue tracker, with the log and environment details already filled in,
and opens it in your browser.`,
		Version:       build.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file (env: "+config.EnvConfigPath+")")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging (env: "+logutil.EnvDebug+")")
	flags.BoolVar(&opts.structured, "structured-logs", false, "Write logs as JSON")
	flags.StringVarP(&opts.output, "output", "o", "default", "Output format: default or json")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		newOpenCommand(opts, deps),
		newURLCommand(opts, deps),
		newPreviewCommand(opts, deps),
		version.NewCommand(build),
	)
	return cmd
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	logutil.SetupLoggerWithWriter(cmd.ErrOrStderr(), o.debug, o.structured)

	if err := cliout.SetFormat(o.output); err != nil {
		return err
	}
	if o.noColor {
		cliout.NoColor()
	}

	path := o.configPath
	if path == "" {
		path = os.Getenv(config.EnvConfigPath)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	o.cfg = cfg

	logutil.Debug("configuration loaded",
		"path", path,
		"tracker", cfg.Tracker.Host+cfg.Tracker.NewIssuePath(),
		"browser", cfg.Browser)
	return nil
}
