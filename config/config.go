// Package config loads issuereport settings from an optional YAML file.
//
// Every key is optional; missing keys keep the defaults, which target the
// BetterUntis tracker on github.com:
//
//	tracker:
//	  host: github.com
//	  owner: SapuSeven
//	  repo: BetterUntis
//	  labels: bug
//	app:
//	  name: BetterUntis
//	  platform: Android
//	  version_name: "9.2"
//	  version_code: 92
//	  installation_source: com.android.vending
//	browser: default
//	notify: false
package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/sapuseven/issuereport/browser"
	"github.com/sapuseven/issuereport/envinfo"
	"github.com/sapuseven/issuereport/issues"
	"github.com/sapuseven/issuereport/urlutil"
)

// EnvConfigPath names the environment variable used when no --config flag is given.
const EnvConfigPath = "ISSUEREPORT_CONFIG"

// segmentPattern matches a GitHub owner or repository name.
var segmentPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]*$`)

// App describes the application whose reports are filed.
type App struct {
	Name               string `yaml:"name"`
	Platform           string `yaml:"platform"`
	VersionName        string `yaml:"version_name"`
	VersionCode        int64  `yaml:"version_code"`
	InstallationSource string `yaml:"installation_source"`
}

// Config is the complete issuereport configuration.
type Config struct {
	Tracker issues.Tracker `yaml:"tracker"`
	App     App            `yaml:"app"`
	Browser string         `yaml:"browser"`
	Notify  bool           `yaml:"notify"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Tracker: issues.DefaultTracker(),
		App: App{
			Name:     issues.DefaultAppLabel,
			Platform: issues.DefaultPlatformLabel,
		},
		Browser: string(browser.TargetDefault),
	}
}

// Load reads path over the defaults and validates the result. An empty path
// returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	// #nosec G304 -- path is supplied by the user running the command
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the tracker coordinates and browser target.
func (c *Config) Validate() error {
	var errs []error

	if err := urlutil.ValidateDomain(c.Tracker.Host); err != nil {
		errs = append(errs, fmt.Errorf("tracker.host: %w", err))
	} else if err := urlutil.ValidateHTTPSOnly("https://" + c.Tracker.Host); err != nil {
		errs = append(errs, fmt.Errorf("tracker.host: %w", err))
	}
	if !segmentPattern.MatchString(c.Tracker.Owner) {
		errs = append(errs, fmt.Errorf("tracker.owner: invalid name %q", c.Tracker.Owner))
	}
	if !segmentPattern.MatchString(c.Tracker.Repo) {
		errs = append(errs, fmt.Errorf("tracker.repo: invalid name %q", c.Tracker.Repo))
	}
	if !browser.IsValid(c.Browser) {
		errs = append(errs, fmt.Errorf("browser: %q is not one of %s", c.Browser, browser.FormatValidTargets()))
	}
	if c.App.VersionCode < 0 {
		errs = append(errs, fmt.Errorf("app.version_code: must not be negative"))
	}

	return errors.Join(errs...)
}

// Formatter returns a report formatter for the configured tracker and labels.
func (c *Config) Formatter() *issues.Formatter {
	f := issues.NewFormatter(c.Tracker)
	if c.App.Platform != "" {
		f.PlatformLabel = c.App.Platform
	}
	if c.App.Name != "" {
		f.AppLabel = c.App.Name
	}
	return f
}

// EnvApp returns the configured application metadata for environment resolution.
func (c *Config) EnvApp() envinfo.App {
	return envinfo.App{
		VersionName:        c.App.VersionName,
		VersionCode:        c.App.VersionCode,
		InstallationSource: c.App.InstallationSource,
	}
}
