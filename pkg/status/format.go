// Package status formats and prints the user-facing console output:
// one line per updated file, plus validation results.
package status

import (
	"fmt"

	"github.com/fatih/color"
)

// FileFormatter defines how per-file progress lines are formatted
type FileFormatter interface {
	// FormatUpdated formats the line printed after a file is rewritten
	FormatUpdated(path string) string

	// FormatError formats an error message
	FormatError(err error) string
}

// DefaultFileFormatter provides a default implementation of FileFormatter
type DefaultFileFormatter struct{}

// NewDefaultFileFormatter creates a new DefaultFileFormatter
func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

// FormatUpdated renders "Updated: <path>". The text stays stable when
// colors are disabled, so scripted callers can match on it.
func (f *DefaultFileFormatter) FormatUpdated(path string) string {
	return fmt.Sprintf("%s %s", color.GreenString("Updated:"), path)
}

// FormatError formats an error message
func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%s %v", color.RedString("Error:"), err)
}
