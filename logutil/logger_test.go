package logutil

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLoggerCreatesWithComponent(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("browser")
	if logger.Component() != "browser" {
		t.Errorf("expected component 'browser', got %q", logger.Component())
	}

	logger.Info("hello")
	if !strings.Contains(buf.String(), "component=browser") {
		t.Errorf("expected output to contain component=browser, got: %s", buf.String())
	}
}

func TestChainingContexts(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerWithWriter(&buf, false, false)

	logger := NewLogger("cli").WithOperation("open").WithFields("category", "crash")
	logger.Warn("chain test")

	output := buf.String()
	for _, want := range []string{"component=cli", "operation=open", "category=crash", "level=WARN"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %s in output, got: %s", want, output)
		}
	}
	if logger.Component() != "cli" {
		t.Errorf("expected component 'cli' after chaining, got %q", logger.Component())
	}
}

func TestComponentLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		logFunc func(*ComponentLogger, string, ...any)
		level   string
	}{
		{"debug", (*ComponentLogger).Debug, "DEBUG"},
		{"info", (*ComponentLogger).Info, "INFO"},
		{"warn", (*ComponentLogger).Warn, "WARN"},
		{"error", (*ComponentLogger).Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLoggerWithWriter(&buf, true, true)

			tt.logFunc(NewLogger("lvl-test"), "level test msg", "k", "v")

			output := buf.String()
			if !strings.Contains(output, `"level":"`+tt.level+`"`) {
				t.Errorf("expected level %s in output, got: %s", tt.level, output)
			}
			if !strings.Contains(output, `"component":"lvl-test"`) {
				t.Errorf("expected component in output, got: %s", output)
			}
		})
	}
}
