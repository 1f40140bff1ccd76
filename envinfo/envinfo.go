// Package envinfo resolves the platform and application metadata attached to
// issue reports.
//
// Resolution never fails: anything that cannot be determined is left empty
// (or zero) so the report still renders every line.
package envinfo

import (
	"context"
	"os"
	"strings"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/sapuseven/issuereport/issues"
	"github.com/sapuseven/issuereport/logutil"
	"github.com/sapuseven/issuereport/version"
)

// EnvInstallationSource names the environment variable consulted for the
// installation source when none is configured.
const EnvInstallationSource = "ISSUEREPORT_INSTALL_SOURCE"

// Provider supplies the environment for a report.
type Provider interface {
	Environment(ctx context.Context) issues.Environment
}

// Static is a Provider that always returns the same, already resolved value.
type Static issues.Environment

// Environment returns s unchanged.
func (s Static) Environment(context.Context) issues.Environment {
	return issues.Environment(s)
}

// App describes the application being reported on. Zero fields are filled
// from the build's version.Info.
type App struct {
	VersionName        string
	VersionCode        int64
	InstallationSource string
}

// SystemProvider queries the host for the platform version and combines it
// with the configured application metadata.
type SystemProvider struct {
	App   App
	Build *version.Info

	// platformVersion returns the OS version; nil means gopsutil.
	platformVersion func(ctx context.Context) (string, error)
}

// NewSystemProvider returns a provider for app, falling back to build for the
// application version.
func NewSystemProvider(app App, build *version.Info) *SystemProvider {
	return &SystemProvider{App: app, Build: build}
}

// Environment resolves the report environment.
func (p *SystemProvider) Environment(ctx context.Context) issues.Environment {
	log := logutil.NewLogger("envinfo")

	env := issues.Environment{
		AppVersionName:     p.App.VersionName,
		AppVersionCode:     p.App.VersionCode,
		InstallationSource: p.App.InstallationSource,
	}

	lookup := p.platformVersion
	if lookup == nil {
		lookup = hostPlatformVersion
	}
	if v, err := lookup(ctx); err != nil {
		log.Debug("platform version unavailable", "error", err)
	} else {
		env.PlatformVersion = v
	}

	if env.AppVersionName == "" && env.AppVersionCode == 0 && p.Build != nil {
		env.AppVersionName = p.Build.Version
		env.AppVersionCode = p.Build.Code()
	}

	if env.InstallationSource == "" {
		env.InstallationSource = strings.TrimSpace(os.Getenv(EnvInstallationSource))
	}

	log.Debug("resolved environment",
		"platformVersion", env.PlatformVersion,
		"appVersion", env.AppVersion(),
		"installationSource", env.InstallationSource)
	return env
}

func hostPlatformVersion(ctx context.Context) (string, error) {
	_, _, v, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return "", err
	}
	return v, nil
}
