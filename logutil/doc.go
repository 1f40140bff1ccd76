// Package logutil provides structured logging for issuereport on top of slog.
//
// Logs go to stderr so that generated URLs and report bodies on stdout stay
// clean for piping.
//
//	logutil.SetupLogger(debug, structured)
//	logutil.Debug("resolved environment", "platform", env.PlatformVersion)
//
//	log := logutil.NewLogger("browser").WithOperation("launch")
//	log.Warn("launch failed", "error", err)
//
// Debug logging is enabled by passing debug=true to SetupLogger or by setting
// ISSUEREPORT_DEBUG=true. With structured=true the output is JSON:
//
//	{"time":"2024-01-15T10:30:00Z","level":"INFO","msg":"opened report","category":"crash"}
package logutil
