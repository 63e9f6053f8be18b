// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Configuration
	OpConfigLoad Op = "load configuration"

	// History operations
	OpHistoryOpen   Op = "open notification history"
	OpHistoryRecord Op = "record notification"
	OpHistoryLoad   Op = "load notification history"
	OpHistoryClear  Op = "clear notification history"

	// Logging
	OpLogOpen Op = "open log file"

	// Desktop mirror
	OpDesktopNotify Op = "send desktop notification"

	// Initialization
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
