// Package browser hands generated report URLs to the user's web browser.
//
// SystemLauncher delegates to github.com/pkg/browser, which uses
// "cmd /c start" on Windows, "open" on macOS and xdg-open on Linux, and adds
// URL validation, target selection and a launch timeout:
//
//	launcher := browser.NewSystemLauncher(browser.TargetDefault)
//	if err := launcher.Launch(ctx, link); err != nil {
//		// print the link so the user can open it manually
//	}
//
// # Security Considerations
//
// Only http:// and https:// URLs are launched. file:, javascript: and data:
// URLs are rejected before anything is passed to the platform opener.
//
// # Browser Targets
//
//   - TargetDefault: the system default browser (alias for TargetSystem)
//   - TargetSystem: the system default browser
//   - TargetNone: launching disabled; Launch returns nil
//
// # Error Handling
//
// Launch waits for the opener and returns its error, or ErrLaunchTimeout.
// It does not print or retry; deciding what to tell the user is the caller's
// job.
package browser
