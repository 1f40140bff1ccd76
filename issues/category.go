package issues

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the kind of report being filed.
type Category int

const (
	// CrashReport is filed after the application terminated unexpectedly.
	CrashReport Category = iota
	// ExceptionReport is filed for a caught exception the user chose to report.
	ExceptionReport
	// Other is any report that is neither a crash nor an exception.
	Other
)

// ErrUnknownCategory is returned by ParseCategory for unrecognized names.
var ErrUnknownCategory = errors.New("unknown report category")

// Categories returns all report categories in declaration order.
func Categories() []Category {
	return []Category{CrashReport, ExceptionReport, Other}
}

// String returns the category's command-line name.
func (c Category) String() string {
	switch c {
	case CrashReport:
		return "crash"
	case ExceptionReport:
		return "exception"
	case Other:
		return "other"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// ParseCategory converts a command-line name ("crash", "exception", "other")
// into a Category. Matching is case-insensitive.
func ParseCategory(s string) (Category, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories() {
		if c.String() == name {
			return c, nil
		}
	}
	return Other, fmt.Errorf("%w: %q (valid categories: crash, exception, other)", ErrUnknownCategory, s)
}

// Title returns the issue title for a category.
func Title(c Category) string {
	switch c {
	case CrashReport:
		return "[Crash Report]"
	case ExceptionReport:
		return "[Bug Report]"
	default:
		return ""
	}
}
