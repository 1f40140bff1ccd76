package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/sapuseven/issuereport/config"
	"github.com/sapuseven/issuereport/issues"
)

// categoryValue is a pflag.Value for --category.
type categoryValue issues.Category

var _ pflag.Value = (*categoryValue)(nil)

func (c *categoryValue) String() string { return issues.Category(*c).String() }
func (c *categoryValue) Type() string { return "category" }

func (c *categoryValue) Set(s string) error {
	parsed, err := issues.ParseCategory(s)
	if err != nil {
		return err
	}
	*c = categoryValue(parsed)
	return nil
}

// reportFlags are shared by the commands that build a report.
type reportFlags struct {
	category categoryValue
	logFile  string
	logText  string

	platformVersion    string
	appVersion         string
	appVersionCode     int64
	installationSource string
}

func (f *reportFlags) register(flags *pflag.FlagSet) {
	f.category = categoryValue(issues.CrashReport)
	flags.Var(&f.category, "category", "Report category: crash, exception or other")
	flags.StringVarP(&f.logFile, "log-file", "f", "", "Read the log from a file ('-' for stdin)")
	flags.StringVar(&f.logText, "log", "", "Use the given text as the log")
	flags.StringVar(&f.platformVersion, "platform-version", "", "Override the detected platform version")
	flags.StringVar(&f.appVersion, "app-version", "", "Override the application version name")
	flags.Int64Var(&f.appVersionCode, "app-version-code", 0, "Override the application version code")
	flags.StringVar(&f.installationSource, "installation-source", "", "Override the installation source")
}

// report is a fully resolved report ready for output.
type report struct {
	Category    string             `json:"category"`
	Title       string             `json:"title"`
	Body        string             `json:"body"`
	URL         string             `json:"url"`
	Environment issues.Environment `json:"environment"`
}

// build resolves the log and environment and renders the report.
func (f *reportFlags) build(ctx context.Context, cmd *cobra.Command, cfg *config.Config, deps Deps) (*report, error) {
	logText, err := f.readLog(deps.Stdin)
	if err != nil {
		return nil, err
	}

	env := deps.Provider(cfg).Environment(ctx)
	flags := cmd.Flags()
	if flags.Changed("platform-version") {
		env.PlatformVersion = f.platformVersion
	}
	if flags.Changed("app-version") {
		env.AppVersionName = f.appVersion
	}
	if flags.Changed("app-version-code") {
		env.AppVersionCode = f.appVersionCode
	}
	if flags.Changed("installation-source") {
		env.InstallationSource = f.installationSource
	}

	category := issues.Category(f.category)
	formatter := cfg.Formatter()
	r := formatter.Report(category, logText, env)
	return &report{
		Category:    category.String(),
		Title:       r.Title,
		Body:        r.Body,
		URL:         formatter.Tracker.NewIssueURL(r),
		Environment: env,
	}, nil
}

// readLog returns the log text from --log, --log-file or stdin, without its
// trailing line break.
func (f *reportFlags) readLog(stdin io.Reader) (string, error) {
	if f.logText != "" {
		if f.logFile != "" {
			return "", fmt.Errorf("--log and --log-file cannot be used together")
		}
		return f.logText, nil
	}

	var (
		data []byte
		err  error
	)
	switch f.logFile {
	case "", "-":
		if file, ok := stdin.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
			return "", fmt.Errorf("no log given: use --log-file, --log, or pipe the log to stdin")
		}
		data, err = io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read log from stdin: %w", err)
		}
	default:
		// #nosec G304 -- path is supplied by the user running the command
		data, err = os.ReadFile(f.logFile)
		if err != nil {
			return "", fmt.Errorf("failed to read log file: %w", err)
		}
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
