// Package cliout provides structured output formatting for CLI commands.
// It supports human-readable text and JSON, with ANSI styling that is turned
// off automatically when stdout is not a terminal.
package cliout

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Format represents the output format.
type Format string

const (
	// FormatDefault is the default human-readable format.
	FormatDefault Format = "default"
	// FormatJSON is JSON format.
	FormatJSON Format = "json"
)

// ANSI color codes for consistent styling
const (
	Reset = "\033[0m"
	Bold  = "\033[1m"
	Dim   = "\033[2m"

	BrightRed   = "\033[91m"
	BrightGreen = "\033[92m"
	BrightBlue  = "\033[94m"
)

// Unicode symbols with ASCII fallbacks for legacy consoles
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
	SymbolInfo  = "ℹ"

	ASCIICheck = "[+]"
	ASCIICross = "[-]"
	ASCIIInfo  = "[i]"
)

var (
	// mu protects globalFormat and noColor
	mu           sync.RWMutex
	globalFormat = FormatDefault
	noColor      = !isTerminal(os.Stdout) || os.Getenv("NO_COLOR") != ""
)

// supportsUnicode detects if the terminal can display the status symbols
var supportsUnicode = detectUnicodeSupport()

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func detectUnicodeSupport() bool {
	if runtime.GOOS != "windows" {
		return true
	}
	// Windows Terminal, VS Code and PowerShell render Unicode; old conhost does not.
	for _, key := range []string{"WT_SESSION", "ConEmuPID", "PSModulePath", "TERM"} {
		if os.Getenv(key) != "" {
			return true
		}
	}
	return os.Getenv("TERM_PROGRAM") == "vscode"
}

func getIcon(unicode, ascii string) string {
	if supportsUnicode {
		return unicode
	}
	return ascii
}

// NoColor disables color output.
func NoColor() {
	mu.Lock()
	noColor = true
	mu.Unlock()
}

func paint(color, s string) string {
	mu.RLock()
	defer mu.RUnlock()
	if noColor {
		return s
	}
	return color + s + Reset
}

// SetFormat sets the global output format.
func SetFormat(format string) error {
	var f Format
	switch format {
	case "default", "":
		f = FormatDefault
	case "json":
		f = FormatJSON
	default:
		return fmt.Errorf("invalid output format: %s (valid options: default, json)", format)
	}

	mu.Lock()
	globalFormat = f
	mu.Unlock()
	return nil
}

// IsJSON returns true if the output format is JSON.
func IsJSON() bool {
	mu.RLock()
	defer mu.RUnlock()
	return globalFormat == FormatJSON
}

func printJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(data)
}

// Print outputs data in the configured format.
// For default format, uses the formatter function.
// For JSON format, marshals the data object.
func Print(data any, formatter func()) error {
	if IsJSON() {
		return printJSON(data)
	}
	formatter()
	return nil
}

// Header prints a bold header with a divider
func Header(text string) {
	fmt.Printf("\n%s\n", paint(Bold, text))
	fmt.Println(strings.Repeat("=", len(text)))
}

// Success prints a success message with green checkmark
func Success(format string, args ...any) {
	fmt.Printf("%s %s\n", paint(BrightGreen, getIcon(SymbolCheck, ASCIICheck)), fmt.Sprintf(format, args...))
}

// Error prints an error message with red X
func Error(format string, args ...any) {
	fmt.Printf("%s %s\n", paint(BrightRed, getIcon(SymbolCross, ASCIICross)), fmt.Sprintf(format, args...))
}

// Info prints an info message with blue info icon
func Info(format string, args ...any) {
	fmt.Printf("%s  %s\n", paint(BrightBlue, getIcon(SymbolInfo, ASCIIInfo)), fmt.Sprintf(format, args...))
}

// Hint prints compact hints on a single line with bullet separators.
func Hint(hints ...string) {
	if len(hints) == 0 {
		return
	}
	fmt.Println(paint(Dim, strings.Join(hints, " • ")))
}

// Label prints a label and value pair
func Label(label, value string) {
	fmt.Printf("   %s %s\n", paint(Dim, fmt.Sprintf("%-12s", label+":")), value)
}

// Plain prints text without any formatting, followed by a newline.
func Plain(text string) {
	fmt.Println(text)
}

// URL returns url styled for display.
func URL(url string) string {
	return paint(BrightBlue, url)
}
