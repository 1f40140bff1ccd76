package issues

import (
	"fmt"
	"strings"
)

// Default labels used in the "Additional information" section.
const (
	DefaultPlatformLabel = "Android"
	DefaultAppLabel      = "BetterUntis"
)

// Environment is the host platform and application metadata attached to a
// report. Any field may be empty when it could not be determined.
type Environment struct {
	PlatformVersion    string `json:"platformVersion"`
	AppVersionName     string `json:"appVersionName"`
	AppVersionCode     int64  `json:"appVersionCode"`
	InstallationSource string `json:"installationSource"`
}

// AppVersion renders the application version as "<name> (<code>)".
// It returns "" when neither part is known.
func (e Environment) AppVersion() string {
	if e.AppVersionName == "" && e.AppVersionCode == 0 {
		return ""
	}
	return fmt.Sprintf("%s (%d)", e.AppVersionName, e.AppVersionCode)
}

// Report is a generated issue title and body.
type Report struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Formatter renders reports and tracker URLs. A Formatter holds no mutable
// state and may be shared between goroutines.
type Formatter struct {
	Tracker Tracker

	// PlatformLabel and AppLabel name the platform and application in the
	// body, e.g. "- Android version: _14_".
	PlatformLabel string
	AppLabel      string
}

// NewFormatter returns a Formatter for tracker with the default labels.
func NewFormatter(tracker Tracker) *Formatter {
	return &Formatter{
		Tracker:       tracker,
		PlatformLabel: DefaultPlatformLabel,
		AppLabel:      DefaultAppLabel,
	}
}

// Body renders the Markdown issue body: the log in a collapsible fenced
// block, then the environment metadata. Every metadata line is written even
// when its value is empty.
func (f *Formatter) Body(logText string, env Environment) string {
	var b strings.Builder

	b.WriteString("<details>\n")
	b.WriteString("<summary>Logs</summary>\n")
	b.WriteString("\n")
	b.WriteString("```\n")
	b.WriteString(logText)
	b.WriteString("\n```\n")
	b.WriteString("</details>\n")
	b.WriteString("\n")
	b.WriteString("**Additional information**\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "- %s version: _%s_\n", f.PlatformLabel, env.PlatformVersion)
	fmt.Fprintf(&b, "- %s version: _%s_\n", f.AppLabel, env.AppVersion())
	fmt.Fprintf(&b, "- Installation source: _%s_", env.InstallationSource)

	return b.String()
}

// Report returns the title and body for a category and log.
func (f *Formatter) Report(c Category, logText string, env Environment) Report {
	return Report{
		Title: Title(c),
		Body:  f.Body(logText, env),
	}
}

// URL returns the tracker's pre-filled "new issue" URL for the report.
func (f *Formatter) URL(c Category, logText string, env Environment) string {
	return f.Tracker.NewIssueURL(f.Report(c, logText, env))
}
