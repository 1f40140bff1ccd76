// Package version holds build information for the issuereport binary and a
// reusable version command.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Info holds version information for a build.
type Info struct {
	Version     string `json:"version"`
	BuildNumber string `json:"buildNumber"`
	BuildDate   string `json:"buildDate"`
	GitCommit   string `json:"gitCommit"`
	Name        string `json:"name"`
}

// New creates a new Info with default values. Version, BuildNumber,
// BuildDate and GitCommit are expected to be set via ldflags at build time.
func New(name string) *Info {
	return &Info{
		Version:     "0.0.0-dev",
		BuildNumber: "0",
		BuildDate:   "unknown",
		GitCommit:   "unknown",
		Name:        name,
	}
}

// Code returns BuildNumber as an integer version code, or 0 when it is not
// a number.
func (i *Info) Code() int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(i.BuildNumber), 10, 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// String returns a human-readable version string.
func (i *Info) String() string {
	return fmt.Sprintf("%s version %s (build %d, commit: %s, built: %s)", i.Name, i.Version, i.Code(), i.GitCommit, i.BuildDate)
}
