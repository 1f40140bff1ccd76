package logutil

import "log/slog"

// ComponentLogger provides component-scoped structured logging.
type ComponentLogger struct {
	slogger   *slog.Logger
	component string
}

// NewLogger creates a logger scoped to a named component, e.g. "browser".
// The logger captures the global handler at creation time.
func NewLogger(component string) *ComponentLogger {
	return &ComponentLogger{
		slogger:   Logger().With("component", component),
		component: component,
	}
}

// WithOperation returns a new logger with the operation context added.
func (l *ComponentLogger) WithOperation(name string) *ComponentLogger {
	return l.WithFields("operation", name)
}

// WithFields returns a new logger with additional alternating key-value fields.
func (l *ComponentLogger) WithFields(fields ...any) *ComponentLogger {
	return &ComponentLogger{
		slogger:   l.slogger.With(fields...),
		component: l.component,
	}
}

// Component returns the component name for this logger.
func (l *ComponentLogger) Component() string {
	return l.component
}

func (l *ComponentLogger) Debug(msg string, args ...any) { l.slogger.Debug(msg, args...) }
func (l *ComponentLogger) Info(msg string, args ...any) { l.slogger.Info(msg, args...) }
func (l *ComponentLogger) Warn(msg string, args ...any) { l.slogger.Warn(msg, args...) }
func (l *ComponentLogger) Error(msg string, args ...any) { l.slogger.Error(msg, args...) }
