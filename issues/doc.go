// Package issues builds pre-filled bug reports for an issue tracker.
//
// A report is derived from a Category, the raw log text and an Environment.
// Nothing is stored: the same inputs always produce the same title, body and
// URL.
//
//	f := issues.NewFormatter(issues.DefaultTracker())
//	link := f.URL(issues.CrashReport, log, env)
//	// https://github.com/SapuSeven/BetterUntis/issues/new?title=%5BCrash%20Report%5D&body=...&labels=bug
//
// Query values are fully percent-encoded, so log content cannot change the
// URL's scheme, host or path, or add query parameters.
package issues
